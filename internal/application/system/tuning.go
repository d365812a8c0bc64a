package system

import (
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// PlayerTuning holds the player constants already multiplied by the display scale
type PlayerTuning struct {
	Speed                   float64 // horizontal units per tick
	Gravity                 float64 // added to air speed per tick
	JumpSpeed               float64 // initial air speed, negative is up
	FallSpeedAfterCollision float64 // air speed after bumping a ceiling

	AnimationSpeed int // ticks per animation frame
	Frames         entity.FrameTable

	AttackOffsetX float64 // gap between hitbox and attack box
	AttackOffsetY float64

	HealthBarWidth int // full health bar width
}

// TuningFromConfig derives the player tuning from the loaded config
func TuningFromConfig(cfg *config.GameConfig) PlayerTuning {
	scale := cfg.Physics.Display.Scale
	player := cfg.Entities.Player

	frames := entity.DefaultFrameTable()
	for name, anim := range player.Sprite.Animations {
		action, ok := entity.ParseAction(name)
		if !ok || anim.Frames <= 0 {
			continue
		}
		frames[action] = anim.Frames
	}

	return PlayerTuning{
		Speed:                   cfg.Physics.Movement.Speed * scale,
		Gravity:                 cfg.Physics.Physics.Gravity * scale,
		JumpSpeed:               cfg.Physics.Jump.Speed * scale,
		FallSpeedAfterCollision: cfg.Physics.Jump.FallSpeedAfterCollision * scale,
		AnimationSpeed:          player.Sprite.AnimationSpeed,
		Frames:                  frames,
		AttackOffsetX:           float64(Scaled(player.AttackBox.OffsetX, scale)),
		AttackOffsetY:           float64(Scaled(player.AttackBox.OffsetY, scale)),
		HealthBarWidth:          Scaled(cfg.Entities.StatusBar.HealthWidth, scale),
	}
}

// Scaled converts an unscaled length to world units, truncating like the sprite layout does
func Scaled(v int, scale float64) int {
	return int(float64(v) * scale)
}
