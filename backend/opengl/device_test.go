package opengl

import (
	"testing"
	"unsafe"
)

// fakeLogReader copies text into the driver buffer like glGet*InfoLog,
// writing at most n-1 bytes plus a NUL.
func fakeLogReader(text string) func(n int32, buf *uint8) {
	return func(n int32, buf *uint8) {
		dst := unsafe.Slice(buf, n)
		c := copy(dst[:n-1], text)
		dst[c] = 0
	}
}

func TestInfoLogEmpty(t *testing.T) {
	called := false
	got := infoLog(0, func(n int32, buf *uint8) { called = true })
	if got != "" {
		t.Errorf("infoLog(0) = %q, want empty", got)
	}
	if called {
		t.Error("reader should not be called for an empty log")
	}
}

func TestInfoLogReadsDriverText(t *testing.T) {
	const msg = "0:3: error: 'FragColr' : undeclared identifier"
	// INFO_LOG_LENGTH includes the terminating NUL.
	got := infoLog(int32(len(msg)+1), fakeLogReader(msg))
	if got != msg {
		t.Errorf("infoLog = %q, want %q", got, msg)
	}
}

func TestTrimLog(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"nul terminated", []byte("link failed\x00\x00"), "link failed"},
		{"embedded nul", []byte("first\x00garbage"), "first"},
		{"no nul", []byte("no terminator"), "no terminator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimLog(tt.in); got != tt.want {
				t.Errorf("trimLog(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
