package swdraw

import (
	"github.com/32bitkid/swdraw/charset"
	"github.com/32bitkid/swdraw/screen"
)

// DrawCharScaled draws one 8x8 character enlarged by the integer part of
// scale. It can be clipped at the top of the screen so the console can
// scroll off smoothly.
func (c *Compositor) DrawCharScaled(x, y, code int, scale float32) {
	if c.charset == nil {
		c.logger.Printf("DrawCharScaled: character set not loaded")
		return
	}
	if err := screen.DrawChar(c.video.Surface(), c.video, c.charset, x, y, code, int(scale)); err != nil {
		c.logger.Printf("DrawCharScaled: %v", err)
	}
}

// DrawString draws s as a row of characters. Runes the character sheet
// cannot show are drawn as '?'. With alt set the alternate half of the
// sheet is used.
func (c *Compositor) DrawString(x, y int, s string, scale float32, alt bool) {
	step := 8 * int(scale)
	for _, code := range charset.Encode(s) {
		if alt {
			code |= 0x80
		}
		c.DrawCharScaled(x, y, int(code), scale)
		x += step
	}
}

func (c *Compositor) StretchPicture(x, y, w, h int, name string) {
	pic, err := c.FindPicture(name)
	if err != nil {
		c.logger.Printf("Can't find pic: %s", name)
		return
	}
	c.stretch("StretchPicture", x, y, w, h, pic)
}

// StretchRaw stretches an opaque cols x rows image, such as a decoded
// video frame, into the rectangle.
func (c *Compositor) StretchRaw(x, y, w, h, cols, rows int, data []uint8) {
	if cols <= 0 || rows <= 0 || len(data) < cols*rows {
		c.logger.Printf("StretchRaw: bad frame %dx%d with %d bytes", cols, rows, len(data))
		return
	}
	c.stretch("StretchRaw", x, y, w, h, &screen.Bitmap{Width: cols, Height: rows, Pix: data})
}

func (c *Compositor) stretch(fn string, x, y, w, h int, pic *screen.Bitmap) {
	err := screen.Stretch(c.video.Surface(), c.video, x, y, w, h, pic, c.retexturing())
	if err != nil {
		c.logger.Printf("%s: %v %dx%d[%dx%d]", fn, err, x, y, w, h)
	}
}

func (c *Compositor) DrawPictureScaled(x, y int, name string, scale float32) {
	pic, err := c.FindPicture(name)
	if err != nil {
		c.logger.Printf("Can't find pic: %s", name)
		return
	}
	if err := screen.DrawScaled(c.video.Surface(), c.video, x, y, pic, scale); err != nil {
		c.logger.Printf("DrawPictureScaled: %v %dx%d %s", err, x, y, name)
	}
}

// TileClear repeats a 64x64 tile picture over the rectangle, typically to
// fill the screen around a shrunken view.
func (c *Compositor) TileClear(x, y, w, h int, name string) {
	pic, err := c.FindPicture(name)
	if err != nil {
		c.logger.Printf("Can't find pic: %s", name)
		return
	}
	if err := screen.TileClear(c.video.Surface(), c.video, x, y, w, h, pic); err != nil {
		c.logger.Printf("TileClear: %v %s", err, name)
	}
}

// Fill fills a box of pixels with a single colour.
func (c *Compositor) Fill(x, y, w, h int, color uint8) {
	screen.Fill(c.video.Surface(), c.video, x, y, w, h, color)
}

func (c *Compositor) FadeScreen() {
	screen.Fade(c.video.Surface(), c.video)
}
