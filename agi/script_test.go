package agi

import "testing"

func TestDecryptMessagesIsInvolution(t *testing.T) {
	want := "Get the red key from the shelf."
	buf := []byte(want)

	decryptMessages(buf)
	if string(buf) == want {
		t.Fatalf("decryptMessages did not change plaintext")
	}

	decryptMessages(buf)
	if string(buf) != want {
		t.Fatalf("decryptMessages twice = %q, want %q", buf, want)
	}
}

func TestDecryptMessagesKeystream(t *testing.T) {
	// "Avis Durgan" XORed against itself is all zero.
	buf := []byte(scriptKeystream)
	decryptMessages(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestNulTerminated(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"terminated", []byte("hello\x00world"), "hello"},
		{"untermindated", []byte("hello"), "hello"},
		{"empty", nil, ""},
		{"leading nul", []byte("\x00hello"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nulTerminated(tt.in); got != tt.want {
				t.Errorf("nulTerminated(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseScriptMessages(t *testing.T) {
	// Build a minimal logic payload: empty code, one message "hi".
	msg := []byte("hi\x00")
	encrypted := make([]byte, len(msg))
	copy(encrypted, msg)
	decryptMessages(encrypted)

	mstart := 2 // immediately after the 2-byte header, no code bytes
	mc := 1
	mdata := mstart + 3 + mc*2
	mend := mdata + len(encrypted)

	p := make([]byte, mend)
	mstartRel := mstart - 2
	p[0] = byte(mstartRel)
	p[1] = byte(mstartRel >> 8)
	p[mstart] = byte(mc)
	mendRel := mend - mstart - 1
	p[mstart+1] = byte(mendRel)
	p[mstart+2] = byte(mendRel >> 8)

	// message 1's offset is relative to mstart, pointing 1 byte before mdata
	// (parseScript adds 1 back), i.e. offset = mdata-mstart-1.
	off := mdata - mstart - 1
	p[mstart+3] = byte(off)
	p[mstart+4] = byte(off >> 8)

	copy(p[mdata:], encrypted)

	s, err := parseScript(p)
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	got := s.Message(1)
	if got == nil || *got != "hi" {
		t.Fatalf("Message(1) = %v, want \"hi\"", got)
	}
	if s.Message(0) != nil {
		t.Errorf("Message(0) = %v, want nil", s.Message(0))
	}
	if s.Message(2) != nil {
		t.Errorf("Message(2) = %v, want nil", s.Message(2))
	}
}
