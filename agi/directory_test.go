package agi

import (
	"reflect"
	"testing"
)

func TestParseDirectory(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    []DirEntry
		wantErr bool
	}{
		{
			name: "empty",
			data: nil,
			want: []DirEntry{},
		},
		{
			name: "single entry",
			data: []byte{0x12, 0x34, 0x56},
			want: []DirEntry{{Volume: 1, Offset: 0x023456}},
		},
		{
			name: "two entries",
			data: []byte{0x00, 0x00, 0x00, 0xf0, 0x01, 0x02},
			want: []DirEntry{{Volume: 0, Offset: 0}, {Volume: 15, Offset: 0x000102}},
		},
		{
			name:    "misaligned size",
			data:    []byte{0x00, 0x00},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDirectory(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDirectory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDirectory() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDirEntryRoundTrip(t *testing.T) {
	entries := []DirEntry{
		{Volume: 0, Offset: 0},
		{Volume: 15, Offset: 0xfffff},
		{Volume: 7, Offset: 0x012345},
	}

	for _, e := range entries {
		b := e.encode()
		got, err := parseDirectory(b[:])
		if err != nil {
			t.Fatalf("parseDirectory(encode(%+v)): %v", e, err)
		}
		if len(got) != 1 || got[0] != e {
			t.Errorf("round trip for %+v got %+v", e, got)
		}
	}
}
