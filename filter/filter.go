/*
Package filter implements the Scale2x and Scale3x (AdvMAME2x/AdvMAME3x)
pixel-art enlargement filters for palette-indexed images.

Both filters compare palette indices only, so no colour is ever invented:
every output pixel is a copy of the centre pixel or one of its four
neighbours. Pixels outside the image are treated as copies of the nearest
edge pixel.
*/
package filter

// Scaler enlarges a w x h image in src into dst, which must hold exactly
// Factor*w by Factor*h pixels.
type Scaler struct {
	Factor int
	Scale  func(src, dst []uint8, w, h int)
}

var (
	X2 = Scaler{Factor: 2, Scale: Scale2x}
	X3 = Scaler{Factor: 3, Scale: Scale3x}
)

type neighbourhood struct {
	a, b, c uint8
	d, e, f uint8
	g, h, i uint8
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i >= max {
		return max - 1
	}
	return i
}

func around(src []uint8, w, h, x, y int) neighbourhood {
	at := func(dx, dy int) uint8 {
		return src[clampIndex(y+dy, h)*w+clampIndex(x+dx, w)]
	}
	return neighbourhood{
		a: at(-1, -1), b: at(0, -1), c: at(1, -1),
		d: at(-1, 0), e: at(0, 0), f: at(1, 0),
		g: at(-1, 1), h: at(0, 1), i: at(1, 1),
	}
}

// Scale2x writes a 2w x 2h copy of src into dst.
func Scale2x(src, dst []uint8, w, h int) {
	stride := w * 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := around(src, w, h, x, y)
			e0, e1, e2, e3 := n.e, n.e, n.e, n.e
			if n.b != n.h && n.d != n.f {
				if n.d == n.b {
					e0 = n.d
				}
				if n.b == n.f {
					e1 = n.f
				}
				if n.d == n.h {
					e2 = n.d
				}
				if n.h == n.f {
					e3 = n.f
				}
			}
			o := y*2*stride + x*2
			dst[o], dst[o+1] = e0, e1
			dst[o+stride], dst[o+stride+1] = e2, e3
		}
	}
}

// Scale3x writes a 3w x 3h copy of src into dst.
func Scale3x(src, dst []uint8, w, h int) {
	stride := w * 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := around(src, w, h, x, y)
			var out [9]uint8
			for i := range out {
				out[i] = n.e
			}
			if n.b != n.h && n.d != n.f {
				if n.d == n.b {
					out[0] = n.d
				}
				if (n.d == n.b && n.e != n.c) || (n.b == n.f && n.e != n.a) {
					out[1] = n.b
				}
				if n.b == n.f {
					out[2] = n.f
				}
				if (n.d == n.b && n.e != n.g) || (n.d == n.h && n.e != n.a) {
					out[3] = n.d
				}
				if (n.b == n.f && n.e != n.i) || (n.h == n.f && n.e != n.c) {
					out[5] = n.f
				}
				if n.d == n.h {
					out[6] = n.d
				}
				if (n.d == n.h && n.e != n.i) || (n.h == n.f && n.e != n.g) {
					out[7] = n.h
				}
				if n.h == n.f {
					out[8] = n.f
				}
			}
			o := y*3*stride + x*3
			copy(dst[o:o+3], out[0:3])
			copy(dst[o+stride:o+stride+3], out[3:6])
			copy(dst[o+2*stride:o+2*stride+3], out[6:9])
		}
	}
}
