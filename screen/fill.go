package screen

import "image"

const (
	tileSize = 64
	tileMask = tileSize - 1
)

// Fill sets every pixel of the rectangle to c. The rectangle is clipped
// against all four edges of dst.
func Fill(dst *Buffer, dmg Damager, x, y, w, h int, c uint8) {
	width, height := dst.Width(), dst.Height()

	if x+w > width {
		w = width - x
	}
	if y+h > height {
		h = height - y
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}

	if w < 0 || h < 0 {
		return
	}

	dmg.Damage(image.Pt(x, y), image.Pt(x+w, y+h))

	for v := 0; v < h; v++ {
		row := dst.span(y+v, x, x+w)
		for i := range row {
			row[i] = c
		}
	}
}

// TileClear repeats the top-left 64x64 pixels of tile over the rectangle.
// The pattern phase follows screen coordinates, not the rectangle origin.
func TileClear(dst *Buffer, dmg Damager, x, y, w, h int, tile *Bitmap) error {
	width, height := dst.Width(), dst.Height()

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > width {
		w = width - x
	}
	if y+h > height {
		h = height - y
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	if !tile.valid() {
		return ErrBadBitmap
	}
	if tile.Width < tileSize || tile.Height < tileSize {
		return ErrTileTooSmall
	}

	dmg.Damage(image.Pt(x, y), image.Pt(x+w, y+h))

	x2 := x + w
	for i := 0; i < h; i++ {
		src := tile.row((i + y) & tileMask)
		row := dst.span(y+i, 0, x2)
		for j := x; j < x2; j++ {
			row[j] = src[j&tileMask]
		}
	}
	return nil
}

// Fade darkens the whole surface with an ordered dither: every pixel off
// the diagonal (x&3) == (y&1)<<1 becomes index 0.
func Fade(dst *Buffer, dmg Damager) {
	width, height := dst.Width(), dst.Height()

	dmg.Damage(image.Pt(0, 0), image.Pt(width, height))

	for y := 0; y < height; y++ {
		row := dst.span(y, 0, width)
		t := (y & 1) << 1
		for x := range row {
			if x&3 != t {
				row[x] = 0
			}
		}
	}
}
