package gui

import "image/color"

var (
	backgroundColor = color.RGBA{250, 248, 239, 255}
	boardColor      = color.RGBA{187, 173, 160, 255}
	emptyTileColor  = color.RGBA{205, 193, 180, 255}
	textColor       = color.RGBA{119, 110, 101, 255}
	textColorLight  = color.RGBA{249, 246, 242, 255}
	overlayColor    = color.RGBA{0, 0, 0, 180}
	bigTileColor    = color.RGBA{60, 58, 50, 255}
	lostColor       = color.RGBA{200, 60, 40, 255}
	buttonColor     = color.RGBA{143, 122, 102, 255}

	tileColors = map[int]color.RGBA{
		2:    {238, 228, 218, 255},
		4:    {237, 224, 200, 255},
		8:    {242, 177, 121, 255},
		16:   {245, 149, 99, 255},
		32:   {246, 124, 95, 255},
		64:   {246, 94, 59, 255},
		128:  {237, 207, 114, 255},
		256:  {237, 204, 97, 255},
		512:  {237, 200, 80, 255},
		1024: {237, 197, 63, 255},
		2048: {237, 194, 46, 255},
		4096: {238, 203, 47, 255},
		8192: {57, 188, 120, 255},
	}
)

// tileColor returns the background for a tile value.
func tileColor(v int) color.RGBA {
	if v == 0 {
		return emptyTileColor
	}
	if c, ok := tileColors[v]; ok {
		return c
	}
	return bigTileColor
}

// tileTextColor returns dark text for the pale small tiles and light text
// for everything else.
func tileTextColor(v int) color.RGBA {
	if v <= 4 {
		return textColor
	}
	return textColorLight
}

// lighten blends c toward white by t in [0, 1].
func lighten(c color.RGBA, t float64) color.RGBA {
	mix := func(a uint8) uint8 {
		return uint8(float64(a) + (255-float64(a))*t)
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}
