/*
Package charset renders the built-in console character sheet from a
TrueType font.

The sheet is 128x128 pixels: sixteen rows of sixteen 8x8 cells, code c in
column c&15 of row c>>4. Codes map to runes through ISO 8859-1. Background
pixels use the transparent colour so glyphs can be drawn over anything.
*/
package charset

import (
	"image"
	"io/ioutil"

	"github.com/32bitkid/swdraw/screen"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/text/encoding/charmap"
)

const (
	cell = 8
	size = 16 * cell
)

type Options struct {
	// Color is the palette index of glyph pixels.
	Color uint8

	// AltColor, when not zero, fills the upper half of the sheet with the
	// lower half redrawn in this colour instead of the Latin-1 glyphs.
	AltColor uint8

	// Threshold is the minimum coverage, 0-255, for a pixel to be inked.
	Threshold uint8
}

// LoadFont parses the TrueType font in file, or the Go Mono font when file
// is empty.
func LoadFont(file string) (*truetype.Font, error) {
	b := gomono.TTF
	if file != "" {
		var err error
		if b, err = ioutil.ReadFile(file); err != nil {
			return nil, err
		}
	}
	return freetype.ParseFont(b)
}

// Build renders all 256 codes of ft into a character sheet.
func Build(ft *truetype.Font, opts Options) *image.Paletted {
	if opts.Threshold == 0 {
		opts.Threshold = 64
	}

	sheet := image.NewPaletted(image.Rect(0, 0, size, size), screen.DefaultPalettes.Game)
	for i := range sheet.Pix {
		sheet.Pix[i] = screen.TransparentColor
	}

	face := truetype.NewFace(ft, &truetype.Options{
		Size:    cell,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baseline := (cell + ascent - descent) / 2

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ft)
	ctx.SetFontSize(cell)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	for code := 0; code < 256; code++ {
		r := charmap.ISO8859_1.DecodeByte(byte(code))
		c := opts.Color
		if opts.AltColor != 0 && code >= 128 {
			r = charmap.ISO8859_1.DecodeByte(byte(code & 127))
			c = opts.AltColor
		}
		if r < 0x20 || (r >= 0x7f && r < 0xa0) {
			continue
		}

		glyph := image.NewAlpha(image.Rect(0, 0, cell, cell))
		ctx.SetClip(glyph.Bounds())
		ctx.SetDst(glyph)
		if _, err := ctx.DrawString(string(r), freetype.Pt(0, baseline)); err != nil {
			continue
		}

		ox, oy := (code&15)*cell, (code>>4)*cell
		for y := 0; y < cell; y++ {
			for x := 0; x < cell; x++ {
				if glyph.AlphaAt(x, y).A > opts.Threshold {
					sheet.SetColorIndex(ox+x, oy+y, c)
				}
			}
		}
	}

	return sheet
}

// Encode maps s onto sheet codes. Runes outside ISO 8859-1 become '?'.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
