package screen

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillInside(t *testing.T) {
	buf := newTestBuffer(64, 48, 0)
	var dmg damageLog

	Fill(buf, &dmg, 10, 5, 20, 7, 9)

	r := image.Rect(10, 5, 30, 12)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			require.Equal(t, uint8(9), buf.ColorIndexAt(x, y), "pixel %d,%d", x, y)
		}
	}
	assert.Zero(t, countOutside(buf, r, 0))
	assert.Equal(t, []image.Rectangle{r}, dmg.rects)
}

func TestFillClipsTopLeft(t *testing.T) {
	buf := newTestBuffer(320, 240, 0)
	var dmg damageLog

	Fill(buf, &dmg, -5, -5, 20, 20, 1)

	r := image.Rect(0, 0, 15, 15)
	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			require.Equal(t, uint8(1), buf.ColorIndexAt(x, y))
		}
	}
	assert.Zero(t, countOutside(buf, r, 0))
	assert.Equal(t, []image.Rectangle{r}, dmg.rects)
}

func TestFillClipsBottomRight(t *testing.T) {
	buf := newTestBuffer(32, 32, 0)
	var dmg damageLog

	Fill(buf, &dmg, 30, 28, 10, 10, 4)

	assert.Zero(t, countOutside(buf, image.Rect(30, 28, 32, 32), 0))
	assert.Equal(t, uint8(4), buf.ColorIndexAt(31, 31))
	assert.Equal(t, []image.Rectangle{image.Rect(30, 28, 32, 32)}, dmg.rects)
}

func TestFillNegativeExtentIsNoop(t *testing.T) {
	buf := newTestBuffer(16, 16, 3)
	var dmg damageLog

	Fill(buf, &dmg, -10, 0, 5, 5, 1)
	Fill(buf, &dmg, 20, 0, 5, 5, 1)

	assert.Zero(t, countOutside(buf, image.Rectangle{}, 3))
	assert.Empty(t, dmg.rects)
}

func TestFillAndTileNeverEscapeBuffer(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tile := randomBitmap(rnd, 64, 64, false)

	for i := 0; i < 2000; i++ {
		x, y := rnd.Intn(2001)-1000, rnd.Intn(2001)-1000
		w, h := rnd.Intn(2001), rnd.Intn(2001)

		buf := newTestBuffer(40, 30, 0)
		var dmg damageLog
		require.NotPanics(t, func() { Fill(buf, &dmg, x, y, w, h, 7) }, "fill %d,%d %dx%d", x, y, w, h)
		visible := image.Rect(x, y, x+w, y+h).Intersect(buf.Rect)
		require.Zero(t, countOutside(buf, visible, 0), "fill %d,%d %dx%d", x, y, w, h)

		buf = newTestBuffer(40, 30, 0)
		require.NotPanics(t, func() {
			require.NoError(t, TileClear(buf, &dmg, x, y, w, h, tile))
		}, "tile %d,%d %dx%d", x, y, w, h)
		require.Zero(t, countOutside(buf, visible, 0), "tile %d,%d %dx%d", x, y, w, h)
	}
}

func TestTileClearPeriodic(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	tile := randomBitmap(rnd, 80, 70, false)
	buf := newTestBuffer(200, 150, 0)
	var dmg damageLog

	require.NoError(t, TileClear(buf, &dmg, 3, 5, 190, 140, tile))

	for y := 5; y < 145-64; y++ {
		for x := 3; x < 193-64; x++ {
			c := buf.ColorIndexAt(x, y)
			require.Equal(t, c, buf.ColorIndexAt(x+64, y))
			require.Equal(t, c, buf.ColorIndexAt(x, y+64))
			require.Equal(t, tile.Pix[(y&63)*tile.Width+(x&63)], c)
		}
	}
	assert.Equal(t, []image.Rectangle{image.Rect(3, 5, 193, 145)}, dmg.rects)
}

func TestTileClearPhaseIgnoresRectangleOrigin(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	tile := randomBitmap(rnd, 64, 64, false)
	a, b := newTestBuffer(128, 128, 0), newTestBuffer(128, 128, 0)
	var dmg damageLog

	require.NoError(t, TileClear(a, &dmg, 0, 0, 128, 128, tile))
	require.NoError(t, TileClear(b, &dmg, -17, -9, 200, 200, tile))

	assert.Equal(t, a.Pix, b.Pix)
}

func TestTileClearRejectsSmallTile(t *testing.T) {
	buf := newTestBuffer(64, 64, 0)
	var dmg damageLog
	small := &Bitmap{Width: 32, Height: 64, Pix: make([]uint8, 32*64)}

	assert.Equal(t, ErrTileTooSmall, TileClear(buf, &dmg, 0, 0, 10, 10, small))
	assert.Empty(t, dmg.rects)

	// an empty rectangle never looks at the tile
	assert.NoError(t, TileClear(buf, &dmg, 0, 0, 0, 10, small))
}

func TestFade(t *testing.T) {
	buf := newTestBuffer(37, 23, 7)
	var dmg damageLog

	Fade(buf, &dmg)

	check := func() {
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				want := uint8(0)
				if x&3 == (y&1)<<1 {
					want = 7
				}
				require.Equal(t, want, buf.ColorIndexAt(x, y), "pixel %d,%d", x, y)
			}
		}
	}
	check()
	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 37, 23)}, dmg.rects)

	once := append([]uint8(nil), buf.Pix...)
	Fade(buf, &dmg)
	check()
	assert.Equal(t, once, buf.Pix)
}
