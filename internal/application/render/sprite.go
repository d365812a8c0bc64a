package render

import (
	"image"

	"github.com/younwookim/redemption/internal/domain/entity"
)

// SpriteDraw is one player sprite draw. W is negative when mirrored;
// X already includes the flip offset so the sprite covers the same box
// either way.
type SpriteDraw struct {
	Action entity.Action
	Row    int
	Frame  int
	X, Y   int
	W, H   int
}

// Bounds returns the screen box the sprite covers
func (s SpriteDraw) Bounds() image.Rectangle {
	x, w := s.X, s.W
	if w < 0 {
		x += w
		w = -w
	}
	return image.Rect(x, s.Y, x+w, s.Y+s.H)
}

// PlayerSprite computes where and which frame of the player to draw.
// lvlOffset is the horizontal camera offset.
func PlayerSprite(p *entity.Player, layout SpriteLayout, lvlOffset int) SpriteDraw {
	row := 0
	if p.Action >= 0 && int(p.Action) < len(layout.Rows) {
		row = layout.Rows[p.Action]
	}

	return SpriteDraw{
		Action: p.Action,
		Row:    row,
		Frame:  p.Animation.Index,
		X:      int(p.Hitbox.X-layout.DrawOffsetX) - lvlOffset + p.Facing.FlipX,
		Y:      int(p.Hitbox.Y - layout.DrawOffsetY),
		W:      p.Width * p.Facing.FlipW,
		H:      p.Height,
	}
}
