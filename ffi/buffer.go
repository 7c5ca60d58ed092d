package ffi

// Fixed-capacity buffer boundary rules.
//
// Writes truncate at capacity and zero-fill the remainder. A string whose
// length equals the capacity fills the buffer completely with no terminator.
// Reads stop at the first zero byte or at the end of the buffer, whichever
// comes first, so a full buffer round-trips without any terminator present.

// PutString copies s into buf under the rules above and returns the number
// of content bytes written.
func PutString(buf []byte, s string) int {
	n := copy(buf, s)
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return n
}

// BufString returns the content of buf up to the first zero byte.
func BufString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
