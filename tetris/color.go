package tetris

import "image/color"

var (
	Black  = color.RGBA{0, 0, 0, 255}
	Gray   = color.RGBA{128, 128, 128, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
	Purple = color.RGBA{160, 32, 240, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Orange = color.RGBA{255, 165, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}

	// Background is the color of an empty cell.
	Background = Black
)

// Palette holds the colors a piece can be drawn with.
// A piece's color is not tied to its shape.
var Palette = []color.RGBA{Cyan, Purple, Yellow, Green, Red, Orange, Blue}

// RGB packs a color as 0xRRGGBB. The background packs to 0.
func RGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromRGB is the inverse of RGB.
func FromRGB(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255} //nolint:gosec
}
