// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by f, clamped to 255. Alpha is kept.
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			return 255
		}
		if s < 0 {
			return 0
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// VertexColor converts c to the normalized floats vertex colors use.
func VertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// ContrastText picks black or white, whichever reads better on bg.
func ContrastText(bg color.RGBA) color.RGBA {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma > 150 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
