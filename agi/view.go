package agi

import "fmt"

// Cel is one animation frame: a width x height palettised image with a
// transparent color key.
type Cel struct {
	Width, Height byte
	ColorKey      byte
	Mirrored      bool
	MirrorLoop    byte // 3-bit source-loop id
	Pixels        []byte
}

// Loop is an ordered set of cels forming one animation cycle.
type Loop struct {
	Cels []Cel
}

// View is a sprite sheet: an ordered set of loops.
type View struct {
	Loops []Loop
}

// parseView parses a view resource payload per §4.5: two unused bytes, a
// loop count, a (here unused) description offset, then loopCount
// loop-start offsets relative to v.
func parseView(v []byte) (*View, error) {
	r := newByteReader(v)
	if err := r.skip(2); err != nil {
		return nil, fmt.Errorf("view: header: %w", ErrMalformedDirectory)
	}
	loopCount, err := r.u8()
	if err != nil {
		return nil, fmt.Errorf("view: loop count: %w", err)
	}
	if _, err := r.u16le(); err != nil { // descriptionOffset, unused by the renderer
		return nil, fmt.Errorf("view: description offset: %w", err)
	}

	offsets := make([]uint16, loopCount)
	for i := range offsets {
		off, err := r.u16le()
		if err != nil {
			return nil, fmt.Errorf("view: loop offset %d: %w", i, err)
		}
		offsets[i] = off
	}

	loops := make([]Loop, loopCount)
	for i, off := range offsets {
		if int(off) > len(v) {
			return nil, fmt.Errorf("view: loop %d offset %d out of range: %w", i, off, ErrInvalidOffset)
		}
		loop, err := parseLoop(v, int(off))
		if err != nil {
			return nil, fmt.Errorf("view: loop %d: %w", i, err)
		}
		loops[i] = loop
	}

	return &View{Loops: loops}, nil
}

func parseLoop(v []byte, loopStart int) (Loop, error) {
	r := newByteReader(v[loopStart:])
	celCount, err := r.u8()
	if err != nil {
		return Loop{}, fmt.Errorf("loop: cel count: %w", err)
	}

	offsets := make([]uint16, celCount)
	for i := range offsets {
		off, err := r.u16le()
		if err != nil {
			return Loop{}, fmt.Errorf("loop: cel offset %d: %w", i, err)
		}
		offsets[i] = off
	}

	cels := make([]Cel, celCount)
	for i, off := range offsets {
		abs := loopStart + int(off)
		if abs > len(v) {
			return Loop{}, fmt.Errorf("loop: cel %d offset %d out of range: %w", i, abs, ErrInvalidOffset)
		}
		cel, err := parseCel(v, abs)
		if err != nil {
			return Loop{}, fmt.Errorf("loop: cel %d: %w", i, err)
		}
		cels[i] = cel
	}

	return Loop{Cels: cels}, nil
}

func parseCel(v []byte, celStart int) (Cel, error) {
	r := newByteReader(v[celStart:])
	w, err := r.u8()
	if err != nil {
		return Cel{}, fmt.Errorf("cel: width: %w", err)
	}
	h, err := r.u8()
	if err != nil {
		return Cel{}, fmt.Errorf("cel: height: %w", err)
	}
	flags, err := r.u8()
	if err != nil {
		return Cel{}, fmt.Errorf("cel: flags: %w", err)
	}

	colorKey := flags & 0x0f
	mirrored := (flags>>7)&1 == 1
	mirrorLoop := (flags >> 4) & 0x07

	pixels := make([]byte, int(w)*int(h))
	for i := range pixels {
		pixels[i] = colorKey
	}

	x, y := 0, 0
	for y < int(h) {
		b, err := r.u8()
		if err != nil {
			return Cel{}, fmt.Errorf("cel: rle stream: %w", err)
		}
		if b == 0 {
			x = 0
			y++
			continue
		}
		count := int(b & 0x0f)
		color := b >> 4
		for i := 0; i < count && x < int(w); i++ {
			pixels[y*int(w)+x] = color
			x++
		}
	}

	return Cel{
		Width:      w,
		Height:     h,
		ColorKey:   colorKey,
		Mirrored:   mirrored,
		MirrorLoop: mirrorLoop,
		Pixels:     pixels,
	}, nil
}

// viewCache mirrors scriptCache's lazy-load-and-retain behavior for views.
type viewCache struct {
	dirs    []DirEntry
	volumes *volumeCache
	views   map[int]*View
}

func newViewCache(dirs []DirEntry, volumes *volumeCache) *viewCache {
	return &viewCache{dirs: dirs, volumes: volumes, views: make(map[int]*View)}
}

func (c *viewCache) get(index int) (*View, error) {
	if v, ok := c.views[index]; ok {
		return v, nil
	}
	if index < 0 || index >= len(c.dirs) {
		return nil, fmt.Errorf("view: index %d: %w", index, ErrNoSuchResource)
	}

	payload, err := c.volumes.loadResource(c.dirs[index])
	if err != nil {
		return nil, fmt.Errorf("view %d: %w", index, err)
	}

	v, err := parseView(payload)
	if err != nil {
		return nil, fmt.Errorf("view %d: %w", index, err)
	}

	c.views[index] = v
	return v, nil
}

// discard drops a cached view, used by discard.view; objects that already
// hold a pointer to it keep using it until their next set.view.
func (c *viewCache) discard(index int) {
	delete(c.views, index)
}
