package main

import "image/color"

// ega16 is the standard 16-color EGA palette the picture plane's color
// indices are defined against.
var ega16 = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // 0 black
	color.RGBA{0x00, 0x00, 0xaa, 0xff}, // 1 blue
	color.RGBA{0x00, 0xaa, 0x00, 0xff}, // 2 green
	color.RGBA{0x00, 0xaa, 0xaa, 0xff}, // 3 cyan
	color.RGBA{0xaa, 0x00, 0x00, 0xff}, // 4 red
	color.RGBA{0xaa, 0x00, 0xaa, 0xff}, // 5 magenta
	color.RGBA{0xaa, 0x55, 0x00, 0xff}, // 6 brown
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff}, // 7 light gray
	color.RGBA{0x55, 0x55, 0x55, 0xff}, // 8 dark gray
	color.RGBA{0x55, 0x55, 0xff, 0xff}, // 9 light blue
	color.RGBA{0x55, 0xff, 0x55, 0xff}, // 10 light green
	color.RGBA{0x55, 0xff, 0xff, 0xff}, // 11 light cyan
	color.RGBA{0xff, 0x55, 0x55, 0xff}, // 12 light red
	color.RGBA{0xff, 0x55, 0xff, 0xff}, // 13 light magenta
	color.RGBA{0xff, 0xff, 0x55, 0xff}, // 14 yellow
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // 15 white
}

// priorityPalette renders the priority plane's 4 reserved bands plus 11
// drawable priority levels as a grayscale ramp for the debug view.
var priorityPalette = func() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		v := uint8(i * 17)
		p[i] = color.RGBA{v, v, v, 0xff}
	}
	return p
}()
