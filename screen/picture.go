package screen

import "image"

// DrawScaled draws pic at (x, y) enlarged by the integer part of scale.
//
// The picture must fit horizontally and must not pass the bottom edge;
// only a negative y is clipped, by skipping -y source rows.
func DrawScaled(dst *Buffer, dmg Damager, x, y int, pic *Bitmap, scale float32) error {
	if !pic.valid() {
		return ErrBadBitmap
	}

	iscale := int(scale)
	if iscale < 1 {
		return nil
	}

	width, height := dst.Width(), dst.Height()
	if x < 0 ||
		float64(x)+float64(pic.Width)*float64(scale) > float64(width) ||
		float64(y)+float64(pic.Height)*float64(scale) > float64(height) {
		return ErrBadCoordinates
	}

	rows, sy := pic.Height, 0
	if y < 0 {
		rows += y
		sy = -y
		y = 0
	}
	if rows <= 0 {
		return nil
	}

	dmg.Damage(image.Pt(x, y), image.Pt(x+iscale*pic.Width, y+iscale*pic.Height))

	x2 := x + iscale*pic.Width
	dy := y
	for v := sy; v < sy+rows; v++ {
		src := pic.row(v)
		for r := 0; r < iscale; r++ {
			row := dst.span(dy, x, x2)
			if iscale == 1 && !pic.Transparent {
				copy(row, src)
			} else {
				replicate(row, src, iscale, pic.Transparent)
			}
			dy++
		}
	}
	return nil
}

// replicate widens every pixel of src into scale pixels of dst, leaving
// dst untouched under transparent source pixels when transparent is set.
func replicate(dst, src []uint8, scale int, transparent bool) {
	for u, c := range src {
		if transparent && c == TransparentColor {
			continue
		}
		block := dst[u*scale : (u+1)*scale]
		for i := range block {
			block[i] = c
		}
	}
}
