package capture

import (
	"bytes"
	"testing"
)

func TestReorderPixel(t *testing.T) {
	tests := []struct {
		name  string
		times int
		want  []byte
	}{
		{name: "once", times: 1, want: []byte{'d', 'a', 'b', 'c'}},
		{name: "twice", times: 2, want: []byte{'c', 'd', 'a', 'b'}},
		{name: "three times", times: 3, want: []byte{'b', 'c', 'd', 'a'}},
		{name: "identity", times: 4, want: []byte{'a', 'b', 'c', 'd'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := []byte{'a', 'b', 'c', 'd'}
			for i := 0; i < tc.times; i++ {
				Reorder(buf)
			}
			if !bytes.Equal(buf, tc.want) {
				t.Fatalf("got %q, want %q", buf, tc.want)
			}
		})
	}
}

func TestReorderExhaustiveSingleByteMoves(t *testing.T) {
	for v := 0; v < 256; v++ {
		for pos := 0; pos < 4; pos++ {
			buf := make([]byte, 4)
			buf[pos] = byte(v)
			Reorder(buf)
			if got := buf[(pos+1)%4]; got != byte(v) {
				t.Fatalf("byte %#x at %d moved to %v", v, pos, buf)
			}
		}
	}
}

func TestReorderIgnoresTrailingBytes(t *testing.T) {
	for extra := 0; extra < 4; extra++ {
		buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
		tail := []byte{0xA1, 0xA2, 0xA3}[:extra]
		buf = append(buf, tail...)
		Reorder(buf)
		if want := []byte{4, 1, 2, 3, 8, 5, 6, 7}; !bytes.Equal(buf[:8], want) {
			t.Fatalf("extra=%d: pixels %v, want %v", extra, buf[:8], want)
		}
		if !bytes.Equal(buf[8:], tail) {
			t.Fatalf("extra=%d: trailing bytes changed to %v", extra, buf[8:])
		}
	}
}

func TestReorderDoesNotTouchBeyondLength(t *testing.T) {
	backing := []byte{1, 2, 3, 4, 5, 6, 0xFE, 0xFF}
	Reorder(backing[:6])
	if want := []byte{4, 1, 2, 3, 5, 6, 0xFE, 0xFF}; !bytes.Equal(backing, want) {
		t.Fatalf("got %v, want %v", backing, want)
	}
}

func TestReorderShortBuffers(t *testing.T) {
	Reorder(nil)
	buf := []byte{9, 8, 7}
	Reorder(buf)
	if !bytes.Equal(buf, []byte{9, 8, 7}) {
		t.Fatalf("short buffer modified: %v", buf)
	}
}
