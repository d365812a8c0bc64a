package render

import (
	"image"

	"github.com/younwookim/redemption/internal/domain/entity"
)

// HUD is the status bar background and the health fill
type HUD struct {
	Bar    image.Rectangle
	Health image.Rectangle
}

// StatusBar computes the HUD rectangles for the player's current health bar width
func StatusBar(layout StatusBarLayout, p *entity.Player) HUD {
	hx := layout.X + layout.HealthX
	hy := layout.Y + layout.HealthY

	return HUD{
		Bar:    image.Rect(layout.X, layout.Y, layout.X+layout.Width, layout.Y+layout.Height),
		Health: image.Rect(hx, hy, hx+p.HealthWidth, hy+layout.HealthHeight),
	}
}

// HealthWidth is the fill of a barWidth wide bar at current/max health
func HealthWidth(current, max, barWidth int) int {
	if max <= 0 || current <= 0 {
		return 0
	}
	if current > max {
		current = max
	}
	return int(float64(current) / float64(max) * float64(barWidth))
}
