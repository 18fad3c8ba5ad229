package overlay

import (
	"image"
	"image/color"

	"github.com/segmentio/fasthash/fnv1a"
)

// Image paints the atlas with cell×cell pixels per sprite. Block textures get a flat
// colour derived from their name with a darker rim, the indicator sprite is opaque
// white so the vertex tint shows through unchanged, and the missing sprite is the
// usual magenta and black checkerboard.
func (a *Atlas) Image(cell int) *image.RGBA {
	if cell < 2 {
		cell = 2
	}
	img := image.NewRGBA(image.Rect(0, 0, a.cols*cell, a.rows*cell))
	for i, name := range a.names {
		x0, y0 := (i%a.cols)*cell, (i/a.cols)*cell
		for y := range cell {
			for x := range cell {
				img.SetRGBA(x0+x, y0+y, texel(name, x, y, cell))
			}
		}
	}
	return img
}

func texel(name string, x, y, cell int) color.RGBA {
	switch name {
	case IndicatorSprite:
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	case MissingSprite:
		half := cell / 2
		if (x < half) != (y < half) {
			return color.RGBA{0, 0, 0, 0xFF}
		}
		return color.RGBA{0xF8, 0x00, 0xF8, 0xFF}
	}

	sum := fnv1a.HashString32(name)
	c := color.RGBA{uint8(sum>>16) | 0x40, uint8(sum>>8) | 0x40, uint8(sum) | 0x40, 0xFF}
	if x == 0 || y == 0 || x == cell-1 || y == cell-1 {
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}
