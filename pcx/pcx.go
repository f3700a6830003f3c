/*
Package pcx implements a ZSoft PCX image decoder and encoder.

A file starts with a 128 byte header followed by run-length encoded
scanlines. Each scanline holds Planes runs of BytesPerLine bytes. A byte
with its two top bits set repeats the following byte (its low six bits
times); any other byte is a literal.

Eight bit single plane images carry a 256 colour palette after the pixel
data, introduced by the byte 0x0c. Images with fewer colours use the 16
colour map stored in the header.
*/
package pcx

import (
	"errors"
	"image"
)

const (
	manufacturer  = 0x0a
	encodingRLE   = 1
	headerSize    = 128
	paletteMarker = 0x0c
	runFlag       = 0xc0
	maxRun        = 0x3f

	// Paintbrush 2.8 without colour map information
	versionNoPalette = 3
)

var (
	ErrFormat      = errors.New("pcx: invalid format")
	ErrUnsupported = errors.New("pcx: unsupported pixel layout")
)

type header struct {
	Manufacturer uint8
	Version      uint8
	Encoding     uint8
	BitsPerPixel uint8
	XMin, YMin   uint16
	XMax, YMax   uint16
	HDPI, VDPI   uint16
	Colormap     [48]uint8
	_            uint8
	Planes       uint8
	BytesPerLine uint16
	PaletteInfo  uint16
	HScreen      uint16
	VScreen      uint16
	_            [54]uint8
}

func (h *header) width() int  { return int(h.XMax) - int(h.XMin) + 1 }
func (h *header) height() int { return int(h.YMax) - int(h.YMin) + 1 }

func init() {
	image.RegisterFormat("pcx", "\x0a", Decode, DecodeConfig)
}
