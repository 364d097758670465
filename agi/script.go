package agi

import "fmt"

const scriptKeystream = "Avis Durgan"

// Script is a compiled logic resource: a code slice, an owned decrypted
// string buffer, and a table of message pointers. Message index 0 is
// reserved as "no message"; absent messages are nil.
type Script struct {
	Code     []byte
	messages []*string // 1-based; messages[i-1] corresponds to message i
}

// Message returns message i (1-based), or nil if absent or i==0.
func (s *Script) Message(i int) *string {
	if i <= 0 || i > len(s.messages) {
		return nil
	}
	return s.messages[i-1]
}

// decryptMessages XORs buf in place against the repeating scriptKeystream.
// Applying it twice returns the original bytes.
func decryptMessages(buf []byte) {
	for i := range buf {
		buf[i] ^= scriptKeystream[i%len(scriptKeystream)]
	}
}

// parseScript parses a logic resource payload into a Script, per the
// message-table layout: a little-endian message-table offset at p[0..2],
// a message count byte, a table of little-endian per-message offsets, and a
// decrypted message-byte region.
func parseScript(p []byte) (*Script, error) {
	r := newByteReader(p)
	mstartRel, err := r.u16le()
	if err != nil {
		return nil, fmt.Errorf("script: message table offset: %w", ErrMalformedScript)
	}
	mstart := int(mstartRel) + 2
	if mstart < 2 || mstart >= len(p) {
		return nil, fmt.Errorf("script: message table start %d out of range: %w", mstart, ErrMalformedScript)
	}

	mc := int(p[mstart])

	if mstart+3 > len(p) {
		return nil, fmt.Errorf("script: message end field out of range: %w", ErrMalformedScript)
	}
	mendRel := uint16(p[mstart+1]) | uint16(p[mstart+2])<<8
	mend := int(mendRel) + mstart + 1
	if mend < mstart || mend > len(p) {
		return nil, fmt.Errorf("script: message end %d out of range: %w", mend, ErrMalformedScript)
	}

	mdata := mstart + 3 + mc*2
	if mdata > mend {
		return nil, fmt.Errorf("script: message data start %d exceeds end %d: %w", mdata, mend, ErrMalformedScript)
	}

	code := make([]byte, mstart-2)
	copy(code, p[2:mstart])

	msgBytes := make([]byte, mend-mdata)
	copy(msgBytes, p[mdata:mend])
	decryptMessages(msgBytes)

	messages := make([]*string, mc)
	offsetTableStart := mstart + 3
	for i := 0; i < mc; i++ {
		base := offsetTableStart + i*2
		if base+2 > len(p) {
			return nil, fmt.Errorf("script: message offset %d out of range: %w", i, ErrMalformedScript)
		}
		off := uint16(p[base]) | uint16(p[base+1])<<8
		pos := mstart + int(off) + 1

		if pos < mdata {
			messages[i] = nil
			continue
		}
		idx := pos - mdata
		if idx > len(msgBytes) {
			return nil, fmt.Errorf("script: message %d position out of range: %w", i, ErrMalformedScript)
		}
		s := nulTerminated(msgBytes[idx:])
		messages[i] = &s
	}

	return &Script{Code: code, messages: messages}, nil
}

// nulTerminated returns the substring of b up to (not including) the first
// NUL byte, or all of b if none is found.
func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// scriptCache maps logic index to a lazily-loaded, reused Script.
type scriptCache struct {
	dirs    []DirEntry
	volumes *volumeCache
	scripts map[int]*Script
}

func newScriptCache(dirs []DirEntry, volumes *volumeCache) *scriptCache {
	return &scriptCache{dirs: dirs, volumes: volumes, scripts: make(map[int]*Script)}
}

// get returns the cached script for index, loading it on first reference.
func (c *scriptCache) get(index int) (*Script, error) {
	if s, ok := c.scripts[index]; ok {
		return s, nil
	}
	if index < 0 || index >= len(c.dirs) {
		return nil, fmt.Errorf("script: index %d: %w", index, ErrNoSuchResource)
	}

	payload, err := c.volumes.loadResource(c.dirs[index])
	if err != nil {
		return nil, fmt.Errorf("script %d: %w", index, err)
	}

	s, err := parseScript(payload)
	if err != nil {
		return nil, fmt.Errorf("script %d: %w", index, err)
	}

	c.scripts[index] = s
	return s, nil
}

// forceLoad re-parses and replaces the cache entry for index, used by
// load.logic/load.logic.v which must force a (re)load regardless of cache
// state.
func (c *scriptCache) forceLoad(index int) error {
	delete(c.scripts, index)
	_, err := c.get(index)
	return err
}
