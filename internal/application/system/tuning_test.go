package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display:  config.DisplayConfig{TileSize: 32, TilesInWidth: 26, TilesInHeight: 14, Scale: 2, Framerate: 200},
			Physics:  config.PhysicsSettings{Gravity: 0.04},
			Movement: config.MovementConfig{Speed: 1},
			Jump:     config.JumpConfig{Speed: -2.25, FallSpeedAfterCollision: 0.5},
			Combat:   config.CombatConfig{SpikeCooldown: 60},
		},
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{
				ID: "player",
				Sprite: config.SpriteConfig{
					FrameWidth:     64,
					FrameHeight:    40,
					DrawOffsetX:    21,
					DrawOffsetY:    4,
					AnimationSpeed: 25,
					Animations: map[string]config.AnimationConfig{
						"idle":   {Row: 0, Frames: 5},
						"attack": {Row: 4, Frames: 4},
						"bogus":  {Row: 9, Frames: 2},
					},
				},
				Hitbox:    config.Size{Width: 20, Height: 27},
				AttackBox: config.AttackBoxConfig{Width: 20, Height: 20, OffsetX: 10, OffsetY: 10},
				Stats:     config.PlayerStats{MaxHealth: 100, AttackDamage: 10},
			},
			Enemies: map[string]config.EnemyConfig{
				"crabby": {ID: "crabby", Hitbox: config.Rect{Width: 22, Height: 19}, Stats: config.EnemyStats{MaxHealth: 20}},
			},
			StatusBar: config.StatusBarConfig{X: 10, Y: 10, Width: 192, Height: 58, HealthX: 34, HealthY: 14, HealthWidth: 150, HealthHeight: 4},
		},
	}
}

func TestTuningFromConfig(t *testing.T) {
	tuning := TuningFromConfig(createTestGameConfig())

	assert.Equal(t, 2.0, tuning.Speed)
	assert.Equal(t, 0.08, tuning.Gravity)
	assert.Equal(t, -4.5, tuning.JumpSpeed)
	assert.Equal(t, 1.0, tuning.FallSpeedAfterCollision)
	assert.Equal(t, 25, tuning.AnimationSpeed)
	assert.Equal(t, 20.0, tuning.AttackOffsetX)
	assert.Equal(t, 20.0, tuning.AttackOffsetY)
	assert.Equal(t, 300, tuning.HealthBarWidth)

	t.Run("animation table overrides defaults", func(t *testing.T) {
		assert.Equal(t, 4, tuning.Frames.Frames(entity.ActionAttack))
		assert.Equal(t, 6, tuning.Frames.Frames(entity.ActionRunning))
	})
}

func TestScaled(t *testing.T) {
	assert.Equal(t, 30, Scaled(20, 1.5))
	assert.Equal(t, 40, Scaled(27, 1.5))
	assert.Equal(t, 0, Scaled(0, 2))
}

func TestSpawnPlayer(t *testing.T) {
	cfg := createTestGameConfig()
	stage := &entity.Stage{SpawnX: 128, SpawnY: 64}

	p := SpawnPlayer(cfg, stage)

	require.NotNil(t, p)
	assert.Equal(t, 128, p.Width)
	assert.Equal(t, 80, p.Height)
	assert.Equal(t, entity.Rect{X: 128, Y: 64, W: 40, H: 54}, p.Hitbox)
	assert.Equal(t, 40.0, p.AttackBox.W)
	assert.Equal(t, 100, p.Health.Max)
}
