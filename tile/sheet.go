package tile

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// indexed returns m as is when it already uses at most 16 indexed colors,
// otherwise a copy reduced to that many.
func indexed(m image.Image) *image.Paletted {
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= colorsPerPalette {
		return pm
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, colorsPerPalette), m))
	draw.Draw(pm, pm.Rect, m, m.Bounds().Min, draw.Src)
	return pm
}

// Slice cuts m into 8 by 8 tiles, row by row. Each tile is a copy with its
// top-left corner at (0, 0). Partial tiles at the right or bottom edge are
// padded with color index 0.
func Slice(m image.Image) []*image.Paletted {
	pm := indexed(m)
	b := pm.Bounds()

	var tiles []*image.Paletted
	for y := b.Min.Y; y < b.Max.Y; y += tileHeight {
		for x := b.Min.X; x < b.Max.X; x += tileWidth {
			t := image.NewPaletted(image.Rect(0, 0, tileWidth, tileHeight), pm.Palette)
			for dy := 0; dy < tileHeight; dy++ {
				for dx := 0; dx < tileWidth; dx++ {
					t.SetColorIndex(dx, dy, pm.ColorIndexAt(x+dx, y+dy))
				}
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}
