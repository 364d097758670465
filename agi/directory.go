package agi

import "fmt"

// DirEntry is one decoded directory record: the volume a resource lives in
// and its byte offset within that volume.
type DirEntry struct {
	Volume byte
	Offset uint32
}

// parseDirectory decodes a LOGDIR/PICDIR/VIEWDIR/SNDDIR-style file: a flat
// sequence of 3-byte records, volume = b0>>4, offset = (b0&0x0f)<<16 | b1<<8 | b2.
func parseDirectory(data []byte) ([]DirEntry, error) {
	if len(data)%3 != 0 {
		return nil, fmt.Errorf("directory: size %d not a multiple of 3: %w", len(data), ErrMalformedDirectory)
	}

	entries := make([]DirEntry, len(data)/3)
	for i := range entries {
		b0, b1, b2 := data[i*3], data[i*3+1], data[i*3+2]
		entries[i] = DirEntry{
			Volume: b0 >> 4,
			Offset: uint32(b0&0x0f)<<16 | uint32(b1)<<8 | uint32(b2),
		}
	}
	return entries, nil
}

// encode re-encodes an entry back into its 3-byte record, used by the
// directory round-trip test.
func (e DirEntry) encode() [3]byte {
	return [3]byte{
		(e.Volume << 4) | byte(e.Offset>>16&0x0f),
		byte(e.Offset >> 8),
		byte(e.Offset),
	}
}
