package screen

import (
	"image"
	"math/rand"
)

type damageLog struct {
	rects []image.Rectangle
}

func (d *damageLog) Damage(min, max image.Point) {
	d.rects = append(d.rects, image.Rectangle{Min: min, Max: max})
}

func newTestBuffer(w, h int, c uint8) *Buffer {
	buf := NewBuffer(w, h, nil)
	buf.Clear(c)
	return buf
}

func randomBitmap(rnd *rand.Rand, w, h int, transparent bool) *Bitmap {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = uint8(rnd.Intn(8)) + 1
		if transparent && rnd.Intn(4) == 0 {
			pix[i] = TransparentColor
		}
	}
	return &Bitmap{Width: w, Height: h, Pix: pix, Transparent: transparent}
}

// countOutside counts pixels outside r that differ from c.
func countOutside(buf *Buffer, r image.Rectangle, c uint8) int {
	n := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if image.Pt(x, y).In(r) {
				continue
			}
			if buf.ColorIndexAt(x, y) != c {
				n++
			}
		}
	}
	return n
}
