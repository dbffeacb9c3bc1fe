package imlib

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cp   rune
		n    int
	}{
		{"empty", "", 0, 0},
		{"ascii", "A", 'A', 1},
		{"ascii with tail", "Az", 'A', 1},
		{"two bytes", "\xC3\xA9", 0xE9, 2},
		{"three bytes", "\xE4\xB8\xAD", 0x4E2D, 3},
		{"four bytes", "\xF0\x9F\x98\x80", 0x1F600, 4},
		{"five bytes", "\xF8\x88\x80\x80\x80", 0x200000, 5},
		{"six bytes", "\xFC\x84\x80\x80\x80\x80", 0x4000000, 6},
		{"stray continuation", "\x80A", 0, 0},
		{"bad continuation", "\xE4\x41\x42", 0, 0},
		{"truncated", "\xE4\xB8", 0, 0},
		{"truncated six", "\xFF", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, n := DecodeUTF8(tt.in)
			if cp != tt.cp || n != tt.n {
				t.Errorf("DecodeUTF8(%q) = (%#x, %d), want (%#x, %d)", tt.in, cp, n, tt.cp, tt.n)
			}
			bcp, bn := DecodeUTF8([]byte(tt.in))
			if bcp != cp || bn != n {
				t.Errorf("DecodeUTF8([]byte) = (%#x, %d), string form gave (%#x, %d)", bcp, bn, cp, n)
			}
		})
	}
}

func TestDecodeUTF8MatchesStandardForm(t *testing.T) {
	for _, r := range []rune{0, 'a', 0x7F, 0x80, 0x7FF, 0x800, 0x554A, 0xFFFD, 0xFFFF, 0x10000, 0x10FFFF} {
		s := string(r)
		cp, n := DecodeUTF8(s)
		want, wantN := utf8.DecodeRuneInString(s)
		if cp != want || n != wantN {
			t.Errorf("DecodeUTF8(%U) = (%U, %d), want (%U, %d)", r, cp, n, want, wantN)
		}
	}
}
