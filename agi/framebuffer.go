package agi

const (
	// PictureWidth is the framebuffer's logical picture-plane width; each
	// logical pixel is stored twice, so the plane's byte width is 320.
	PictureWidth  = 160
	PictureHeight = 200
	planeWidth    = PictureWidth * 2

	colorWhite byte = 15
	colorRed   byte = 4
)

// Framebuffer holds the two planes the picture decoder and sprite
// compositor paint into: a 320x200 color plane (each logical pixel stored
// twice) and a 160x200 priority plane.
type Framebuffer struct {
	picture  [planeWidth * PictureHeight]byte
	priority [PictureWidth * PictureHeight]byte

	pictureColor byte
	pictureOn    bool
	priorityColor byte
	priorityOn   bool
}

// Picture returns the raw 320x200 color plane.
func (f *Framebuffer) Picture() []byte { return f.picture[:] }

// Priority returns the raw 160x200 priority plane.
func (f *Framebuffer) Priority() []byte { return f.priority[:] }

// Clear resets both planes to black/zero and disables both draw colors,
// used by draw.pic before decoding a new picture.
func (f *Framebuffer) Clear() {
	for i := range f.picture {
		f.picture[i] = 0
	}
	for i := range f.priority {
		f.priority[i] = 0
	}
	f.pictureOn = false
	f.priorityOn = false
}

func (f *Framebuffer) setPictureColor(c byte) { f.pictureColor = c; f.pictureOn = true }
func (f *Framebuffer) disablePicture()        { f.pictureOn = false }
func (f *Framebuffer) setPriorityColor(c byte) { f.priorityColor = c; f.priorityOn = true }
func (f *Framebuffer) disablePriority()       { f.priorityOn = false }

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < PictureWidth && y >= 0 && y < PictureHeight
}

// GetPicturePixel returns the logical-pixel color at (x,y), or colorRed as
// an out-of-bounds sentinel (mirroring the "4" sentinel the original
// framebuffer returns for out-of-range reads).
func (f *Framebuffer) GetPicturePixel(x, y int) byte {
	if !f.inBounds(x, y) {
		return colorRed
	}
	return f.picture[y*planeWidth+x*2]
}

// GetPriorityPixel returns the priority-plane value at (x,y), or colorRed
// as an out-of-bounds sentinel.
func (f *Framebuffer) GetPriorityPixel(x, y int) byte {
	if !f.inBounds(x, y) {
		return colorRed
	}
	return f.priority[y*PictureWidth+x]
}

// setHiDPIPixel writes a raw doubled-width picture-plane pixel, used
// internally by the line/fill drawing routines; it does not touch the
// priority plane and ignores enable flags (callers check those first).
func (f *Framebuffer) setHiDPIPixel(x, y int, color byte) {
	if !f.inBounds(x, y) {
		return
	}
	i := y*planeWidth + x*2
	f.picture[i] = color
	f.picture[i+1] = color
}

func (f *Framebuffer) setPriorityPixel(x, y int, p byte) {
	if !f.inBounds(x, y) {
		return
	}
	f.priority[y*PictureWidth+x] = p
}

// setPixel is the picture-decoder's drawing primitive: writes the current
// picture/priority color into whichever plane(s) are enabled.
func (f *Framebuffer) setPixel(x, y int) {
	if f.pictureOn {
		f.setHiDPIPixel(x, y, f.pictureColor)
	}
	if f.priorityOn {
		f.setPriorityPixel(x, y, f.priorityColor)
	}
}

// SetPixelIfHigherPriority is the sprite compositor's write primitive: the
// write occurs iff the candidate priority is >= the current priority-plane
// value at (x,y); on success both picture-plane bytes and the
// priority-plane byte are updated.
func (f *Framebuffer) SetPixelIfHigherPriority(x, y int, color, priority byte) {
	if !f.inBounds(x, y) {
		return
	}
	if priority < f.GetPriorityPixel(x, y) {
		return
	}
	f.setHiDPIPixel(x, y, color)
	f.setPriorityPixel(x, y, priority)
}

// ClearLines fills picture rows [r1,r2] with color c, used by clear.lines.
func (f *Framebuffer) ClearLines(r1, r2 int, c byte) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for y := r1; y <= r2; y++ {
		if y < 0 || y >= PictureHeight {
			continue
		}
		for x := 0; x < PictureWidth; x++ {
			f.setHiDPIPixel(x, y, c)
		}
	}
}
