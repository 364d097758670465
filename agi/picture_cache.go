package agi

import "fmt"

// picCache lazily loads and retains raw picture resource payloads by
// index; unlike scripts and views, pictures are re-decoded into the
// framebuffer on every draw.pic/overlay.pic, so the cache only needs to
// hold the undecoded command stream.
type picCache struct {
	dirs    []DirEntry
	volumes *volumeCache
	data    map[int][]byte
}

func newPicCache(dirs []DirEntry, volumes *volumeCache) *picCache {
	return &picCache{dirs: dirs, volumes: volumes, data: make(map[int][]byte)}
}

func (c *picCache) get(index int) ([]byte, error) {
	if p, ok := c.data[index]; ok {
		return p, nil
	}
	if index < 0 || index >= len(c.dirs) {
		return nil, fmt.Errorf("picture: index %d: %w", index, ErrNoSuchResource)
	}

	payload, err := c.volumes.loadResource(c.dirs[index])
	if err != nil {
		return nil, fmt.Errorf("picture %d: %w", index, err)
	}

	c.data[index] = payload
	return payload, nil
}

// discard drops a cached picture payload, used by discard.pic; the next
// get re-reads it from the volume.
func (c *picCache) discard(index int) {
	delete(c.data, index)
}
