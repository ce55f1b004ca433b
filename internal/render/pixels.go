package render

import "image/color"

// fillPaletteRGBA converts palette-indexed cells into RGBA pixels in buf. It
// reports false, leaving the rest of buf untouched, when a cell indexes past
// the palette; callers treat that as a corrupted grid.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) bool {
	if len(buf) < 4*len(cells) {
		return false
	}
	for i, c := range cells {
		idx := int(c)
		if idx >= len(palette) {
			return false
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return true
}
