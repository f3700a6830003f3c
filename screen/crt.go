package screen

import (
	"image"
	"image/color"
)

const crtCell = 6

var (
	red   = color.RGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xff}
	green = color.RGBA{G: 0xFF, R: 0x99, B: 0x99, A: 0xff}
	blue  = color.RGBA{B: 0xFF, R: 0x99, G: 0x99, A: 0xff}

	// bleed from the left (negative) or right (positive) neighbour per
	// column of a cell
	crtBleed = [crtCell]float64{-3.0 / 6.0, -4.0 / 6.0, -5.0 / 6.0, 0, 1.0 / 6.0, 2.0 / 6.0}

	// darkening per row of a cell
	crtScanline = [crtCell]float64{0.7, 0.2, 0, 0, 0.1, 0.4}

	// shadow mask for even and odd rows
	crtMask = [2][crtCell]color.RGBA{
		{red, red, green, green, blue, blue},
		{green, blue, blue, red, red, green},
	}
)

// RenderToCRT renders buf through its palette as a 6x enlarged true-colour
// image with colour bleed, scan-lines and a shadow mask.
func RenderToCRT(buf *Buffer) *image.RGBA {
	width, height := buf.Width(), buf.Height()
	dst := image.NewRGBA(image.Rect(0, 0, width*crtCell, height*crtCell))

	type pair struct {
		a, b uint8
		t    float64
	}
	mixes := make(map[pair]color.Color)
	mix := func(a, b uint8, t float64) color.Color {
		k := pair{a, b, t}
		if c, ok := mixes[k]; ok {
			return c
		}
		c := rgbMix(colorAt(buf.Palette, a), colorAt(buf.Palette, b), t)
		mixes[k] = c
		return c
	}

	for sy := 0; sy < height; sy++ {
		row := buf.span(sy, 0, width)
		for sx, c := range row {
			lc, rc := row[clamp(sx-1, 0, width-1)], row[clamp(sx+1, 0, width-1)]
			for i := 0; i < crtCell*crtCell; i++ {
				ix, iy := i%crtCell, i/crtCell

				var co color.Color
				switch t := crtBleed[ix]; {
				case t < 0:
					co = mix(lc, c, -t)
				case t > 0:
					co = mix(c, rc, t)
				default:
					co = colorAt(buf.Palette, c)
				}

				if p := crtScanline[iy]; p > 0 {
					co = darken(co, p)
				}
				co = rgbMul(co, crtMask[iy%2][ix])

				dst.Set(sx*crtCell+ix, sy*crtCell+iy, co)
			}
		}
	}

	return dst
}

func clamp(i int, min int, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}

func colorAt(p color.Palette, i uint8) color.Color {
	if int(i) < len(p) {
		return p[i]
	}
	return color.Black
}
