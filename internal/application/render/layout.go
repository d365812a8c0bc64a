// Package render turns player and level state into draw geometry and
// draws it with ebiten. Geometry is computed by pure functions so it can
// be tested without a graphics context.
package render

import (
	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/config"
)

// SpriteLayout places the player sprite relative to its hitbox.
// Offsets are in world units, frame size in sheet pixels.
type SpriteLayout struct {
	DrawOffsetX float64
	DrawOffsetY float64
	FrameW      int
	FrameH      int
	Rows        [entity.ActionCount]int // atlas row of each action
}

// StatusBarLayout is the HUD geometry in screen units.
// The health bar position is relative to the status bar.
type StatusBarLayout struct {
	X, Y          int
	Width, Height int
	HealthX       int
	HealthY       int
	HealthWidth   int
	HealthHeight  int
}

// LayoutFromConfig scales the sprite and HUD layout from config
func LayoutFromConfig(cfg *config.GameConfig) (SpriteLayout, StatusBarLayout) {
	scale := cfg.Physics.Display.Scale
	sprite := cfg.Entities.Player.Sprite

	sl := SpriteLayout{
		DrawOffsetX: float64(sprite.DrawOffsetX) * scale,
		DrawOffsetY: float64(sprite.DrawOffsetY) * scale,
		FrameW:      sprite.FrameWidth,
		FrameH:      sprite.FrameHeight,
	}
	for a := range sl.Rows {
		sl.Rows[a] = a
	}
	for name, anim := range sprite.Animations {
		if action, ok := entity.ParseAction(name); ok {
			sl.Rows[action] = anim.Row
		}
	}

	sb := cfg.Entities.StatusBar
	s := func(v int) int { return int(float64(v) * scale) }

	return sl, StatusBarLayout{
		X:            s(sb.X),
		Y:            s(sb.Y),
		Width:        s(sb.Width),
		Height:       s(sb.Height),
		HealthX:      s(sb.HealthX),
		HealthY:      s(sb.HealthY),
		HealthWidth:  s(sb.HealthWidth),
		HealthHeight: s(sb.HealthHeight),
	}
}
