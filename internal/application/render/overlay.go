package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var overlayFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

const overlayLineSpacing = 18

// OverlayLines splits the message and measures its block in pixels
func OverlayLines(msg string) (lines []string, w, h float64) {
	lines = strings.Split(msg, "\n")
	for _, line := range lines {
		lw, _ := ebtext.Measure(line, overlayFace, overlayLineSpacing)
		if lw > w {
			w = lw
		}
	}
	return lines, w, float64(len(lines) * overlayLineSpacing)
}

// DrawOverlay tints the whole screen and centres msg on it
func DrawOverlay(screen *ebiten.Image, msg string, tint color.Color) {
	b := screen.Bounds()
	ebitenutil.DrawRect(screen, 0, 0, float64(b.Dx()), float64(b.Dy()), tint)

	lines, w, h := OverlayLines(msg)
	y := (float64(b.Dy()) - h) / 2
	for _, line := range lines {
		lw, _ := ebtext.Measure(line, overlayFace, overlayLineSpacing)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate((float64(b.Dx())-w)/2+(w-lw)/2, y)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, overlayFace, op)
		y += overlayLineSpacing
	}
}
