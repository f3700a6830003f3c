package swdraw

import (
	"errors"
	"fmt"

	"github.com/32bitkid/swdraw/resource"
	"github.com/32bitkid/swdraw/screen"
)

const charsetName = "conchars"

var (
	ErrPictureNotFound = errors.New("swdraw: picture not found")
	ErrCharsetMissing  = errors.New("swdraw: character set missing")
)

// picturePath maps a picture name to an asset path. A name starting with
// a slash or backslash is a path already; anything else is a file in pics/.
func picturePath(name string) string {
	if name != "" && (name[0] == '/' || name[0] == '\\') {
		return name[1:]
	}
	return "pics/" + name + ".pcx"
}

// FindPicture resolves a picture name through the image cache.
func (c *Compositor) FindPicture(name string) (*screen.Bitmap, error) {
	b, err := c.images.Request(picturePath(name), resource.TypePic)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPictureNotFound, name, err)
	}
	return b, nil
}

// GetPictureSize returns the size of a picture, or -1, -1 when it cannot
// be found.
func (c *Compositor) GetPictureSize(name string) (w, h int) {
	b, err := c.FindPicture(name)
	if err != nil {
		return -1, -1
	}
	return b.Width, b.Height
}

// InitCharset loads the built-in character sheet. The compositor cannot
// draw text without it, so callers should treat an error as fatal.
func (c *Compositor) InitCharset() error {
	b, err := c.FindPicture(charsetName)
	if err != nil {
		return fmt.Errorf("%w: couldn't load %s: %v", ErrCharsetMissing, picturePath(charsetName), err)
	}
	if b.Width < screen.SheetSize || b.Height < screen.SheetSize {
		return fmt.Errorf("%w: %s is %dx%d, want at least %dx%d", ErrCharsetMissing,
			picturePath(charsetName), b.Width, b.Height, screen.SheetSize, screen.SheetSize)
	}
	c.charset = b
	return nil
}
