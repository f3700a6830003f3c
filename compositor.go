// Package swdraw implements a software compositor for palette-indexed
// screens.
//
// A Compositor draws console characters, pictures, tiled backgrounds,
// solid rectangles and full-screen fades into the surface of a Video,
// reporting the touched regions back to it for incremental redraw. Images
// are looked up by name in an ImageCache.
//
// Every entry point absorbs its own failures: a missing image or a bad
// rectangle is logged and the call returns without drawing. Only the
// character sheet, loaded once by InitCharset, is required.
package swdraw

import (
	"io/ioutil"
	"log"

	"github.com/32bitkid/swdraw/resource"
	"github.com/32bitkid/swdraw/screen"
)

// Video owns the destination surface. Surface is called before every
// draw, so the surface may be replaced between calls.
type Video interface {
	screen.Damager
	Surface() *screen.Buffer
}

// ImageCache resolves asset paths to decoded bitmaps.
type ImageCache interface {
	Request(name string, t resource.Type) (*screen.Bitmap, error)
}

type Options struct {
	Logger *log.Logger

	// Retexturing is consulted on every stretch; when it reports true,
	// stretched pictures are smoothed with Scale2x/Scale3x first.
	Retexturing func() bool
}

type Compositor struct {
	video   Video
	images  ImageCache
	logger  *log.Logger
	retex   func() bool
	charset *screen.Bitmap
}

func New(video Video, images ImageCache, opts Options) *Compositor {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Compositor{
		video:  video,
		images: images,
		logger: logger,
		retex:  opts.Retexturing,
	}
}

func (c *Compositor) retexturing() bool {
	return c.retex != nil && c.retex()
}
