package asset

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas is a sprite sheet laid out as rows of equally sized frames.
// Each row holds one animation.
type Atlas struct {
	frames [][]*ebiten.Image
	frameW int
	frameH int
}

// FrameRect returns the source rectangle of the frame at (row, col)
func FrameRect(row, col, frameW, frameH int) image.Rectangle {
	x := col * frameW
	y := row * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}

// GridSize returns how many whole frames fit in a sheet of the given size
func GridSize(sheet image.Rectangle, frameW, frameH int) (rows, cols int) {
	if frameW <= 0 || frameH <= 0 {
		return 0, 0
	}
	return sheet.Dy() / frameH, sheet.Dx() / frameW
}

// SliceAtlas cuts the sheet into frameW x frameH frames
func SliceAtlas(sheet *ebiten.Image, frameW, frameH int) (*Atlas, error) {
	rows, cols := GridSize(sheet.Bounds(), frameW, frameH)
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("sheet %v too small for %dx%d frames", sheet.Bounds().Size(), frameW, frameH)
	}

	frames := make([][]*ebiten.Image, rows)
	for r := range frames {
		frames[r] = make([]*ebiten.Image, cols)
		for c := range frames[r] {
			frames[r][c] = sheet.SubImage(FrameRect(r, c, frameW, frameH)).(*ebiten.Image)
		}
	}

	return &Atlas{frames: frames, frameW: frameW, frameH: frameH}, nil
}

// Frame returns the frame at (row, col), or nil when out of range
func (a *Atlas) Frame(row, col int) *ebiten.Image {
	if row < 0 || row >= len(a.frames) || col < 0 || col >= len(a.frames[row]) {
		return nil
	}
	return a.frames[row][col]
}

// FrameSize returns the size of a single frame in sheet pixels
func (a *Atlas) FrameSize() (w, h int) {
	return a.frameW, a.frameH
}
