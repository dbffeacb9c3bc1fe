package imlib

// utf8Len returns the sequence length announced by lead byte b, using the
// historical 1..6 byte form. It returns 0 for a continuation byte.
func utf8Len(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	case b < 0xFC:
		return 5
	default:
		return 6
	}
}

// DecodeUTF8 decodes the first code point of s and returns it with its
// length in bytes. Sequences of up to six bytes are accepted. A stray
// continuation byte, a bad continuation or a truncated sequence returns
// n == 0; callers must still advance past the offending byte.
//
// Unlike unicode/utf8, overlong forms and surrogates are not rejected:
// the renderer looks glyphs up by raw code point.
func DecodeUTF8[T ~string | ~[]byte](s T) (cp rune, n int) {
	if len(s) == 0 {
		return 0, 0
	}
	n = utf8Len(s[0])
	switch n {
	case 0:
		return 0, 0
	case 1:
		return rune(s[0]), 1
	}
	if len(s) < n {
		return 0, 0
	}

	// The lead byte keeps 7-n payload bits.
	cp = rune(s[0] & (0x7F >> n))
	for i := 1; i < n; i++ {
		if s[i]&0xC0 != 0x80 {
			return 0, 0
		}
		cp = cp<<6 | rune(s[i]&0x3F)
	}
	return cp, n
}
