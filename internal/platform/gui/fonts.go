package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// faces holds the font faces used by the window.
type faces struct {
	small font.Face
	bold  font.Face
	tile  font.Face
	title font.Face
}

// loadFaces builds all faces from the bundled M+ font. Tile text scales
// with the tile size.
func loadFaces(tileSize int) (faces, error) {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return faces{}, fmt.Errorf("gui: parse font: %w", err)
	}

	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var f faces
	for _, spec := range []struct {
		dst  *font.Face
		size float64
	}{
		{&f.small, 12},
		{&f.bold, 16},
		{&f.tile, float64(tileSize) * 0.32},
		{&f.title, 32},
	} {
		face, err := newFace(spec.size)
		if err != nil {
			return faces{}, fmt.Errorf("gui: create font face: %w", err)
		}
		*spec.dst = face
	}
	return f, nil
}

// textWidth measures s in face.
func textWidth(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil()
}

// textHeight measures the ink height of s in face.
func textHeight(face font.Face, s string) int {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.Y - bounds.Min.Y).Ceil()
}
