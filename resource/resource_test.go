package resource

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/32bitkid/swdraw/pcx"
	"github.com/32bitkid/swdraw/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePCX(t *testing.T, w, h int, fn func(x, y int) uint8) []byte {
	m := image.NewPaletted(image.Rect(0, 0, w, h), screen.DefaultPalettes.Game)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetColorIndex(x, y, fn(x, y))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, pcx.Encode(&buf, m))
	return buf.Bytes()
}

func encodePNG(t *testing.T, m image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, m))
	return buf.Bytes()
}

func TestCacheLoadsPCX(t *testing.T) {
	fsys := fstest.MapFS{
		"pics/conback.pcx": {Data: encodePCX(t, 6, 4, func(x, y int) uint8 { return uint8(x + y*6) })},
		"pics/cursor.pcx": {Data: encodePCX(t, 2, 2, func(x, y int) uint8 {
			if x == y {
				return screen.TransparentColor
			}
			return 3
		})},
	}
	c := NewCache(nil, nil, FS{fsys})

	b, err := c.Request("pics/conback.pcx", TypePic)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Width)
	assert.Equal(t, 4, b.Height)
	assert.Equal(t, uint8(13), b.Pix[2*6+1])
	assert.False(t, b.Transparent)

	again, err := c.Request(`pics\conback.pcx`, TypePic)
	require.NoError(t, err)
	assert.True(t, b == again, "expected the cached bitmap")

	cursor, err := c.Request("pics/cursor.pcx", TypePic)
	require.NoError(t, err)
	assert.True(t, cursor.Transparent)

	c.Flush()
	wall, err := c.Request("pics/cursor.pcx", TypeWall)
	require.NoError(t, err)
	assert.False(t, wall.Transparent)
}

func TestCacheMapsTrueColour(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	m.Set(0, 0, screen.DefaultPalettes.Game[0x18])
	m.Set(1, 0, color.NRGBA{})
	m.Set(2, 0, color.Black)

	c := NewCache(nil, nil, FS{fstest.MapFS{"a.png": {Data: encodePNG(t, m)}}})
	b, err := c.Request("a.png", TypePic)
	require.NoError(t, err)

	assert.Equal(t, []uint8{0x18, screen.TransparentColor, 0}, b.Pix)
	assert.True(t, b.Transparent)
}

func TestCacheMissAndBadData(t *testing.T) {
	c := NewCache(nil, nil, FS{fstest.MapFS{"bad.pcx": {Data: []byte("not an image")}}})

	_, err := c.Request("missing.pcx", TypePic)
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)

	_, err = c.Request("bad.pcx", TypePic)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = c.Request("../escape.pcx", TypePic)
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
}

func TestCacheSourceOrder(t *testing.T) {
	first := fstest.MapFS{"x.pcx": {Data: encodePCX(t, 1, 1, func(int, int) uint8 { return 1 })}}
	second := fstest.MapFS{
		"x.pcx": {Data: encodePCX(t, 1, 1, func(int, int) uint8 { return 2 })},
		"y.pcx": {Data: encodePCX(t, 1, 1, func(int, int) uint8 { return 3 })},
	}
	c := NewCache(nil, nil, FS{first}, FS{second})

	x, err := c.Request("x.pcx", TypePic)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), x.Pix[0])

	y, err := c.Request("y.pcx", TypePic)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), y.Pix[0])
}

func TestPack(t *testing.T) {
	p, err := OpenPack(filepath.Join(t.TempDir(), "assets.db"))
	require.NoError(t, err)
	defer p.Close()

	data := encodePCX(t, 64, 64, func(x, y int) uint8 { return uint8((x ^ y) & 7) })
	require.NoError(t, p.Import("pics/backtile.pcx", bytes.NewReader(data), MethodLZW))
	require.NoError(t, p.Import(`pics\raw.pcx`, bytes.NewReader(data), MethodNone))

	names, err := p.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"pics/backtile.pcx", "pics/raw.pcx"}, names)

	c := NewCache(nil, nil, p)
	b, err := c.Request("pics/backtile.pcx", TypePic)
	require.NoError(t, err)
	assert.Equal(t, 64, b.Width)
	assert.Equal(t, uint8((5^9)&7), b.Pix[9*64+5])

	_, err = p.Open("pics/none.pcx")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "%v", err)
}

func TestCompressionRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("conchars "), 50)
	for _, m := range []CompressionMethod{MethodNone, MethodLZW} {
		packed, err := compress(m, src)
		require.NoError(t, err)
		out, err := decompress(m, packed, len(src))
		require.NoError(t, err)
		assert.Equal(t, src, out)
	}

	_, err := compress(CompressionMethod(9), src)
	assert.Error(t, err)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Type(Pic)", TypePic.String())
	assert.Equal(t, "Type(UNKNOWN)", Type(42).String())
}
