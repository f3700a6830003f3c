package screen

import (
	"image"

	"github.com/32bitkid/swdraw/filter"
)

// Stretch resizes pic into the w x h rectangle at (x, y) using nearest
// neighbour sampling. Only a negative y is clipped; any other overflow is
// rejected.
//
// When retexture is set and the widths differ, pic is first enlarged with
// Scale3x, or Scale2x when it already covers a third of the surface in
// both directions.
func Stretch(dst *Buffer, dmg Damager, x, y, w, h int, pic *Bitmap, retexture bool) error {
	width, height := dst.Width(), dst.Height()
	if x < 0 || x+w > width || y+h > height || w <= 0 || h <= 0 {
		return ErrBadCoordinates
	}
	if !pic.valid() {
		return ErrBadBitmap
	}

	rows, skip := h, 0
	if y < 0 {
		skip = -y
		rows += y
	}
	if rows <= 0 {
		return nil
	}

	dmg.Damage(image.Pt(x, y), image.Pt(x+w, y+h))
	y += skip

	if w == pic.Width {
		for v := 0; v < rows; v++ {
			sv := (skip + v) * pic.Height / h
			copy(dst.span(y+v, x, x+w), pic.row(sv))
		}
		return nil
	}

	src, sw, sh := pic.Pix, pic.Width, pic.Height
	if retexture {
		src, sw, sh = retextured(pic, width, height)
	}

	step := (sw << 16) / w
	for v := 0; v < rows; {
		sv := (skip + v) * sh / h
		line := src[sv*sw : (sv+1)*sw]
		row := dst.span(y+v, x, x+w)
		for u, f := 0, 0; u < w; u, f = u+1, f+step {
			row[u] = line[f>>16]
		}
		v++

		// rows sampling the same source line are copies of the first
		for v < rows && (skip+v)*sh/h == sv {
			copy(dst.span(y+v, x, x+w), row)
			v++
		}
	}
	return nil
}

func retextured(pic *Bitmap, width, height int) ([]uint8, int, int) {
	w, h := pic.Width, pic.Height
	s := filter.X2
	if w < width/3 || h < height/3 {
		s = filter.X3
	}
	scaled := make([]uint8, w*h*s.Factor*s.Factor)
	s.Scale(pic.Pix[:w*h], scaled, w, h)
	return scaled, w * s.Factor, h * s.Factor
}
