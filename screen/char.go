package screen

import "image"

const (
	glyphSize = 8
	// SheetSize is the minimum width and height of a character sheet:
	// sixteen rows of sixteen 8x8 glyphs.
	SheetSize = 16 * glyphSize
)

// DrawChar draws glyph code from sheet with its top-left corner at (x, y),
// each sheet pixel becoming a scale x scale block.
//
// The glyph may be clipped at the top of the screen so the console can
// scroll off smoothly. Rows past the bottom are dropped in whole glyph
// rows. Columns outside the surface are skipped pixel by pixel.
func DrawChar(dst *Buffer, dmg Damager, sheet *Bitmap, x, y, code, scale int) error {
	if scale < 1 {
		return nil
	}

	code &= 255
	if code&127 == ' ' {
		return nil
	}

	// totally off screen
	if y <= -glyphSize {
		return nil
	}

	if !sheet.valid() || sheet.Width < SheetSize || sheet.Height < SheetSize {
		return ErrBadBitmap
	}

	sy := (code >> 4) * glyphSize
	sx := (code & 15) * glyphSize

	lines := glyphSize
	if y < 0 {
		lines += y
		sy -= y
		y = 0
	}

	width, height := dst.Width(), dst.Height()
	if y+scale*(lines+1) > height {
		lines = (height - y) / scale
	}
	if lines <= 0 {
		return nil
	}

	dmg.Damage(image.Pt(x, y), image.Pt(x+scale*glyphSize, y+scale*lines))

	dy := y
	for l := 0; l < lines; l++ {
		o := (sy+l)*sheet.Width + sx
		src := sheet.Pix[o : o+glyphSize]
		for r := 0; r < scale; r++ {
			row := dst.span(dy, 0, width)
			for u, c := range src {
				if c == TransparentColor {
					continue
				}
				for dx, end := x+u*scale, x+(u+1)*scale; dx < end; dx++ {
					if dx >= 0 && dx < width {
						row[dx] = c
					}
				}
			}
			dy++
		}
	}
	return nil
}
