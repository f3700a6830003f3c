package pcx

import (
	"bufio"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// Transparent is the palette index Encode gives to pixels that are less
// than half opaque when it has to build its own palette.
const Transparent = 255

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) writeScanline(row []byte, bpl int) error {
	line := make([]byte, bpl)
	copy(line, row)
	for i := 0; i < len(line); {
		v := line[i]
		n := 1
		for i+n < len(line) && line[i+n] == v && n < maxRun {
			n++
		}
		if n > 1 || v&runFlag == runFlag {
			if err := e.w.WriteByte(runFlag | byte(n)); err != nil {
				return err
			}
		}
		if err := e.w.WriteByte(v); err != nil {
			return err
		}
		i += n
	}
	return nil
}

func (e *encoder) encode(m *image.Paletted) error {
	b := m.Bounds()
	bpl := b.Dx() + b.Dx()&1

	h := header{
		Manufacturer: manufacturer,
		Version:      5,
		Encoding:     encodingRLE,
		BitsPerPixel: 8,
		XMax:         uint16(b.Dx() - 1),
		YMax:         uint16(b.Dy() - 1),
		HDPI:         72,
		VDPI:         72,
		Planes:       1,
		BytesPerLine: uint16(bpl),
		PaletteInfo:  1,
	}
	if err := binary.Write(e.w, binary.LittleEndian, &h); err != nil {
		return err
	}

	for y := 0; y < b.Dy(); y++ {
		o := y * m.Stride
		if err := e.writeScanline(m.Pix[o:o+b.Dx()], bpl); err != nil {
			return err
		}
	}

	var tmp [1 + 256*3]byte
	tmp[0] = paletteMarker
	for i, c := range m.Palette {
		if i == 256 {
			break
		}
		r, g, b, _ := c.RGBA()
		tmp[1+i*3], tmp[2+i*3], tmp[3+i*3] = byte(r>>8), byte(g>>8), byte(b>>8)
	}
	if _, err := e.w.Write(tmp[:]); err != nil {
		return err
	}
	return e.w.Flush()
}

// Encode writes the Image m to w as an 8 bit PCX image.
//
// Paletted images are written as they are. Anything else is reduced to 255
// colours with a median cut quantizer; pixels that are less than half
// opaque are written as index Transparent.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > 0xffff || b.Dy() > 0xffff {
		return errors.New("pcx: image is wrong size")
	}

	pm, _ := m.(*image.Paletted)
	if pm != nil && len(pm.Palette) > 256 {
		pm = nil
	}
	if pm == nil {
		q := quantize.MedianCutQuantizer{}
		p := q.Quantize(make(color.Palette, 0, Transparent), m)
		for len(p) < 256 {
			p = append(p, color.Black)
		}
		p[Transparent] = color.RGBA{}

		pm = image.NewPaletted(b, p)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := m.At(x, y)
				if _, _, _, a := c.RGBA(); a < 0x8000 {
					pm.SetColorIndex(x, y, Transparent)
					continue
				}
				pm.SetColorIndex(x, y, uint8(p[:Transparent].Index(c)))
			}
		}
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(pm)
}
