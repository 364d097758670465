package agi

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
)

const resourceMagic uint16 = 0x1234

// volumeCache lazily loads and retains VOL.<n> files by id, 0..15.
type volumeCache struct {
	dir  string
	data [16][]byte
	have [16]bool
}

func newVolumeCache(dir string) *volumeCache {
	return &volumeCache{dir: dir}
}

// get returns the bytes of VOL.<id>, loading and retaining it on first
// reference. Volumes are immutable once loaded and shared by reference.
func (c *volumeCache) get(id byte) ([]byte, error) {
	if id > 15 {
		return nil, fmt.Errorf("volume: id %d out of range: %w", id, ErrNoSuchResource)
	}
	if c.have[id] {
		return c.data[id], nil
	}

	path := filepath.Join(c.dir, fmt.Sprintf("VOL.%d", id))
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("volume: unable to open %s: %w", path, ErrNoSuchResource)
	}

	c.data[id] = buf
	c.have[id] = true
	return buf, nil
}

// frameResource validates the 5-byte resource header at offset within vol
// and returns the inner payload slice of exactly `length` bytes.
func frameResource(vol []byte, offset uint32) ([]byte, error) {
	if int(offset)+5 > len(vol) {
		return nil, fmt.Errorf("resource: header at %d exceeds volume size %d: %w", offset, len(vol), ErrTruncatedResource)
	}

	r := newByteReader(vol[offset:])
	magic, err := r.u16be()
	if err != nil {
		return nil, err
	}
	if magic != resourceMagic {
		return nil, fmt.Errorf("resource: magic %#04x at offset %d: %w", magic, offset, ErrBadMagic)
	}

	if _, err := r.u8(); err != nil { // owning-volume byte, ignored for routing
		return nil, err
	}

	length, err := r.u16le()
	if err != nil {
		return nil, err
	}

	payload, err := r.sub(int(length))
	if err != nil {
		return nil, fmt.Errorf("resource: payload of %d bytes at offset %d: %w", length, offset, ErrTruncatedResource)
	}
	return payload.buf, nil
}

// loadResource resolves a directory entry through the volume cache and
// returns the framed inner payload.
func (c *volumeCache) loadResource(e DirEntry) ([]byte, error) {
	vol, err := c.get(e.Volume)
	if err != nil {
		return nil, err
	}
	return frameResource(vol, e.Offset)
}
