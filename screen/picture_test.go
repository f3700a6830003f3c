package screen

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveScaled draws pic pixel by pixel, testing transparency on every pixel.
func naiveScaled(buf *Buffer, x, y int, pic *Bitmap, scale int) {
	for v := 0; v < pic.Height; v++ {
		for u := 0; u < pic.Width; u++ {
			c := pic.Pix[v*pic.Width+u]
			if pic.Transparent && c == TransparentColor {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					buf.SetColorIndex(x+u*scale+dx, y+v*scale+dy, c)
				}
			}
		}
	}
}

func TestDrawScaledOpaqueIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	pic := randomBitmap(rnd, 13, 9, false)
	buf := newTestBuffer(40, 30, 0)
	var dmg damageLog

	require.NoError(t, DrawScaled(buf, &dmg, 5, 7, pic, 1))

	for v := 0; v < pic.Height; v++ {
		assert.Equal(t, pic.row(v), buf.span(7+v, 5, 5+pic.Width))
	}
	r := image.Rect(5, 7, 18, 16)
	assert.Zero(t, countOutside(buf, r, 0))
	assert.Equal(t, []image.Rectangle{r}, dmg.rects)
}

func TestDrawScaledMatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, transparent := range []bool{false, true} {
		for scale := 1; scale <= 4; scale++ {
			pic := randomBitmap(rnd, 1+rnd.Intn(12), 1+rnd.Intn(12), transparent)
			x, y := rnd.Intn(10), rnd.Intn(10)

			got, want := newTestBuffer(64, 64, 9), newTestBuffer(64, 64, 9)
			var dmg damageLog
			require.NoError(t, DrawScaled(got, &dmg, x, y, pic, float32(scale)))
			naiveScaled(want, x, y, pic, scale)

			require.Equal(t, want.Pix, got.Pix, "transparent=%v scale=%d", transparent, scale)
		}
	}
}

func TestDrawScaledTruncatesScale(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	pic := randomBitmap(rnd, 5, 5, true)
	got, want := newTestBuffer(32, 32, 0), newTestBuffer(32, 32, 0)
	var dmg damageLog

	require.NoError(t, DrawScaled(got, &dmg, 1, 1, pic, 2.7))
	naiveScaled(want, 1, 1, pic, 2)

	assert.Equal(t, want.Pix, got.Pix)
}

func TestDrawScaledClipsTop(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	pic := randomBitmap(rnd, 4, 6, false)
	buf := newTestBuffer(16, 16, 0)
	var dmg damageLog

	require.NoError(t, DrawScaled(buf, &dmg, 2, -2, pic, 2))

	// the two skipped source rows are not scaled with the picture
	for v := 0; v < 4; v++ {
		for u := 0; u < 4; u++ {
			c := pic.Pix[(v+2)*4+u]
			for d := 0; d < 4; d++ {
				require.Equal(t, c, buf.ColorIndexAt(2+u*2+d%2, v*2+d/2))
			}
		}
	}
	assert.Zero(t, countOutside(buf, image.Rect(2, 0, 10, 8), 0))
	assert.Equal(t, []image.Rectangle{image.Rect(2, 0, 10, 12)}, dmg.rects)
}

func TestDrawScaledRejectsOverflow(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	pic := randomBitmap(rnd, 8, 8, false)
	buf := newTestBuffer(32, 32, 0)
	var dmg damageLog

	for _, pt := range []image.Point{{-1, 0}, {25, 0}, {0, 25}, {17, 0}} {
		scale := float32(1)
		if pt.X == 17 {
			scale = 2
		}
		assert.Equal(t, ErrBadCoordinates, DrawScaled(buf, &dmg, pt.X, pt.Y, pic, scale), "%v", pt)
	}
	assert.Empty(t, dmg.rects)
	assert.Zero(t, countOutside(buf, image.Rectangle{}, 0))
}
