package pcx

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/swdraw/screen"
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r *bufio.Reader
	h header

	image   *image.Paletted
	palette color.Palette
}

func (d *decoder) readHeader() error {
	if err := binary.Read(d.r, binary.LittleEndian, &d.h); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	h := &d.h
	if h.Manufacturer != manufacturer || h.Encoding != encodingRLE {
		return ErrFormat
	}
	if h.XMax < h.XMin || h.YMax < h.YMin {
		return ErrFormat
	}
	switch {
	case h.Planes == 1 && (h.BitsPerPixel == 1 || h.BitsPerPixel == 2 || h.BitsPerPixel == 4 || h.BitsPerPixel == 8):
	case h.BitsPerPixel == 1 && h.Planes >= 2 && h.Planes <= 4:
	default:
		return ErrUnsupported
	}
	if int(h.BytesPerLine)*8 < d.h.width()*int(h.BitsPerPixel) {
		return ErrFormat
	}
	return nil
}

func (d *decoder) colors() int {
	return 1 << (uint(d.h.BitsPerPixel) * uint(d.h.Planes))
}

// headerPalette returns the 16 colour map of the header, cut down to the
// colours the layout can address. Version 3 files carry no colour map and
// use the EGA colours.
func (d *decoder) headerPalette() color.Palette {
	n := d.colors()
	if n == 2 && d.h.Version < 5 {
		return color.Palette{color.Black, color.White}
	}
	if d.h.Version == versionNoPalette {
		return append(color.Palette(nil), screen.DefaultPalettes.EGA[:n]...)
	}
	p := make(color.Palette, n)
	for i := range p {
		c := d.h.Colormap[i*3 : i*3+3]
		p[i] = color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
	}
	return p
}

// readScanline expands one RLE scanline into line.
func (d *decoder) readScanline(line []byte) error {
	for i := 0; i < len(line); {
		b, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		if b&runFlag != runFlag {
			line[i] = b
			i++
			continue
		}
		n := int(b & maxRun)
		v, err := d.r.ReadByte()
		if err != nil {
			return err
		}
		// runs may spill over the end of a scanline in sloppy encoders
		for ; n > 0 && i < len(line); n-- {
			line[i] = v
			i++
		}
	}
	return nil
}

func (d *decoder) unpack(line []byte, y int) error {
	w := d.h.width()
	bpl := int(d.h.BytesPerLine)
	row := d.image.Pix[y*d.image.Stride : y*d.image.Stride+w]

	switch {
	case d.h.BitsPerPixel == 8:
		copy(row, line[:w])
	case d.h.Planes == 1:
		br := bitreader.NewReader(bytes.NewReader(line))
		for x := range row {
			v, err := br.Read8(uint(d.h.BitsPerPixel))
			if err != nil {
				return err
			}
			row[x] = v
		}
	default:
		for x := range row {
			row[x] = 0
		}
		for p := 0; p < int(d.h.Planes); p++ {
			br := bitreader.NewReader(bytes.NewReader(line[p*bpl : (p+1)*bpl]))
			for x := range row {
				set, err := br.Read1()
				if err != nil {
					return err
				}
				if set {
					row[x] |= 1 << uint(p)
				}
			}
		}
	}
	return nil
}

// readPalette reads the trailing 256 colour palette, falling back to grey
// shades when the file has none.
func (d *decoder) readPalette() error {
	var tmp [1 + 256*3]byte
	if err := readFull(d.r, tmp[:]); err != nil || tmp[0] != paletteMarker {
		if err != nil && err != io.ErrUnexpectedEOF {
			return err
		}
		d.palette = append(color.Palette(nil), screen.DefaultPalettes.Gray...)
		return nil
	}
	d.palette = make(color.Palette, 256)
	for i := range d.palette {
		c := tmp[1+i*3 : 4+i*3]
		d.palette[i] = color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = bufio.NewReader(r)

	if err := d.readHeader(); err != nil {
		return err
	}

	if d.h.BitsPerPixel != 8 {
		d.palette = d.headerPalette()
		if configOnly {
			return nil
		}
	}

	w, h := d.h.width(), d.h.height()
	d.image = image.NewPaletted(image.Rect(0, 0, w, h), nil)

	line := make([]byte, int(d.h.BytesPerLine)*int(d.h.Planes))
	for y := 0; y < h; y++ {
		if err := d.readScanline(line); err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		if err := d.unpack(line, y); err != nil {
			return err
		}
	}

	if d.h.BitsPerPixel == 8 {
		if err := d.readPalette(); err != nil {
			return err
		}
	}
	d.image.Palette = d.palette

	return nil
}

// Decode reads a PCX image from r and returns it as an *image.Paletted.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a PCX image. The
// pixel data of an 8 bit image is skipped to reach its palette.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.palette,
		Width:      d.h.width(),
		Height:     d.h.height(),
	}, nil
}
