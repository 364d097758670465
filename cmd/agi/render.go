package main

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/flga/agi/agi"
)

// paletteImage converts the framebuffer's doubled-width 320x200 color plane
// into a paletted image against ega16.
func paletteImage(fb *agi.Framebuffer) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, agi.PictureWidth*2, agi.PictureHeight), ega16)
	copy(img.Pix, fb.Picture())
	return img
}

// priorityImage converts the framebuffer's 160x200 priority plane into a
// paletted grayscale image for the debug view, doubled in width to match
// paletteImage's aspect ratio.
func priorityImage(fb *agi.Framebuffer) *image.Paletted {
	src := fb.Priority()
	img := image.NewPaletted(image.Rect(0, 0, agi.PictureWidth*2, agi.PictureHeight), priorityPalette)
	for y := 0; y < agi.PictureHeight; y++ {
		for x := 0; x < agi.PictureWidth; x++ {
			v := src[y*agi.PictureWidth+x]
			i := y*img.Stride + x*2
			img.Pix[i] = v
			img.Pix[i+1] = v
		}
	}
	return img
}

// scaleUp nearest-neighbor scales src by zoom and converts it to RGBA, the
// format an SDL streaming texture in ABGR8888 byte order expects.
func scaleUp(src *image.Paletted, zoom int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
