// Package asset loads sprite sheets and slices them into animation frames.
package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// DecodeImage reads and decodes an image file from fsys
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage decodes an image file from fsys into an ebiten image
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	img, err := DecodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
