package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

var DefaultPalettes = struct {
	Gray color.Palette
	EGA  color.Palette
	Game color.Palette
}{
	Gray: grayPalette(),
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000AA),
		rgb24Color(0x00AA00),
		rgb24Color(0x00AAAA),
		rgb24Color(0xAA0000),
		rgb24Color(0xAA00AA),
		rgb24Color(0xAA5500),
		rgb24Color(0xAAAAAA),

		rgb24Color(0x555555),
		rgb24Color(0x5555FF),
		rgb24Color(0x55FF55),
		rgb24Color(0x55FFFF),
		rgb24Color(0xFF5555),
		rgb24Color(0xFF55FF),
		rgb24Color(0xFFFF55),
		rgb24Color(0xFFFFFF),
	},
	Game: gamePalette(),
}

func grayPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}

// gamePalette lays out sixteen ramps of sixteen shades, dark to light. The
// first ramp is grey, so index 0 is black. Index 255 is transparent.
func gamePalette() color.Palette {
	p := make(color.Palette, 256)
	for ramp := 0; ramp < 16; ramp++ {
		hue := float64(ramp-1) * (360.0 / 15)
		chroma := 0.45
		if ramp == 0 {
			chroma = 0
		}
		for shade := 0; shade < 16; shade++ {
			l := float64(shade) / 15
			p[ramp*16+shade] = clr.Hcl(hue, chroma*l, l).Clamped()
		}
	}
	p[TransparentColor] = color.RGBA{}
	return p
}
