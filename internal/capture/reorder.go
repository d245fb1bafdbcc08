package capture

// Reorder rewrites every 4-byte pixel of buf from the compositor's layout to
// RGBA by moving the last byte to the front: (a, b, c, d) becomes (d, a, b, c).
// Trailing bytes that do not form a whole pixel are left untouched.
func Reorder(buf []byte) {
	n := len(buf) - len(buf)%4
	for i := 0; i < n; i += 4 {
		p := buf[i : i+4 : i+4]
		p[0], p[1], p[2], p[3] = p[3], p[0], p[1], p[2]
	}
}
