/*
Package resource implements the image cache: named assets are opened from
a list of sources, decoded and kept as palette-indexed bitmaps.

Paletted images (PCX, GIF, paletted PNG) are assumed to share the game
palette and keep their indices. Any other image is mapped onto the cache
palette, with pixels that are less than half opaque becoming the
transparent colour.
*/
package resource

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io/fs"
	"io/ioutil"
	"log"

	_ "github.com/32bitkid/swdraw/pcx"
	"github.com/32bitkid/swdraw/screen"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

var ErrNotFound = errors.New("resource: not found")

type Cache struct {
	sources []Source
	palette color.Palette
	logger  *log.Logger
	images  map[string]*screen.Bitmap
}

// NewCache returns a cache reading from sources in order. A nil palette
// selects screen.DefaultPalettes.Game; a nil logger discards.
func NewCache(palette color.Palette, logger *log.Logger, sources ...Source) *Cache {
	if palette == nil {
		palette = screen.DefaultPalettes.Game
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Cache{
		sources: sources,
		palette: palette,
		logger:  logger,
		images:  make(map[string]*screen.Bitmap),
	}
}

// Request returns the bitmap stored as name, loading it on first use.
func (c *Cache) Request(name string, t Type) (*screen.Bitmap, error) {
	name = cleanName(name)
	if b, ok := c.images[name]; ok {
		return b, nil
	}

	for _, src := range c.sources {
		rc, err := src.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resource: %s: %w", name, err)
		}

		m, format, err := image.Decode(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("resource: decoding %s: %w", name, err)
		}

		b := c.bitmap(m)
		if !t.keyed() {
			b.Transparent = false
		}
		c.logger.Printf("loaded %s %s (%s %dx%d)", t, name, format, b.Width, b.Height)

		c.images[name] = b
		return b, nil
	}

	return nil, fmt.Errorf("%s %s: %w", t, name, ErrNotFound)
}

// Flush forgets every loaded bitmap.
func (c *Cache) Flush() {
	c.images = make(map[string]*screen.Bitmap)
}

func (c *Cache) bitmap(m image.Image) *screen.Bitmap {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	pm, ok := m.(*image.Paletted)
	if !ok {
		pm = image.NewPaletted(b, c.palette)
		draw.Draw(pm, b, m, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := m.At(x, y).RGBA(); a < 0x8000 {
					pm.SetColorIndex(x, y, screen.TransparentColor)
				}
			}
		}
	}

	pix := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		o := pm.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w:(y+1)*w], pm.Pix[o:o+w])
	}
	return screen.NewBitmap(w, h, pix)
}
