package screen

import (
	"errors"
	"image"
	"image/color"
)

// TransparentColor is the palette index that is left undrawn wherever a
// bitmap is blitted with transparency.
const TransparentColor uint8 = 255

var (
	ErrBadCoordinates = errors.New("screen: bad coordinates")
	ErrBadBitmap      = errors.New("screen: bitmap pixels do not match its size")
	ErrTileTooSmall   = errors.New("screen: tile is smaller than 64x64")
)

// Buffer is a palette-indexed drawing surface anchored at (0, 0).
type Buffer struct {
	*image.Paletted
}

func NewBuffer(width, height int, palette color.Palette) *Buffer {
	if palette == nil {
		palette = DefaultPalettes.Game
	}
	return &Buffer{
		Paletted: image.NewPaletted(image.Rect(0, 0, width, height), palette),
	}
}

// Wrap returns a Buffer sharing the pixels of p. The bounds are moved so
// that the top-left corner is at (0, 0).
func Wrap(p *image.Paletted) *Buffer {
	if p.Rect.Min != (image.Point{}) {
		dup := *p
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		p = &dup
	}
	return &Buffer{Paletted: p}
}

func (buf *Buffer) Width() int  { return buf.Rect.Dx() }
func (buf *Buffer) Height() int { return buf.Rect.Dy() }

func (buf *Buffer) Clear(c uint8) {
	for i, max := 0, len(buf.Pix); i < max; i++ {
		buf.Pix[i] = c
	}
}

func (buf *Buffer) Image() *image.Paletted {
	return buf.Paletted
}

// span returns the pixels of row y from column x0 up to, not including, x1.
func (buf *Buffer) span(y, x0, x1 int) []uint8 {
	o := y * buf.Stride
	return buf.Pix[o+x0 : o+x1]
}

// Bitmap is an indexed image borrowed from the image cache for the
// duration of one draw call.
type Bitmap struct {
	Width       int
	Height      int
	Pix         []uint8
	Transparent bool
}

// NewBitmap wraps pix, flagging the bitmap as transparent when any pixel
// uses TransparentColor.
func NewBitmap(width, height int, pix []uint8) *Bitmap {
	b := &Bitmap{Width: width, Height: height, Pix: pix}
	for _, c := range pix {
		if c == TransparentColor {
			b.Transparent = true
			break
		}
	}
	return b
}

func (b *Bitmap) valid() bool {
	return b != nil && b.Width > 0 && b.Height > 0 && len(b.Pix) >= b.Width*b.Height
}

func (b *Bitmap) row(y int) []uint8 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Paletted returns a copy of the bitmap as an image using palette p.
func (b *Bitmap) Paletted(p color.Palette) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, b.Width, b.Height), p)
	copy(m.Pix, b.Pix[:b.Width*b.Height])
	return m
}
