package imlib

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func newGoRegular(t *testing.T, size float64) font.Face {
	t.Helper()
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("opentype.Parse() = %v", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		t.Fatalf("opentype.NewFace() = %v", err)
	}
	return face
}

func TestDefaultFontRegistry(t *testing.T) {
	f, err := NewFontRegistry()
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	for _, r := range "AZaz09#~" {
		if !f.HasGlyph(r) {
			t.Errorf("HasGlyph(%q) = false, want true", r)
		}
	}
	if f.HasGlyph(' ') {
		t.Error("space should render blank")
	}
	if f.HasGlyph('中') || f.HasGlyph('\n') {
		t.Error("default registry should not carry wide or control glyphs")
	}
	if n := f.WideGlyphCount(); n != 0 {
		t.Errorf("WideGlyphCount() = %d, want 0", n)
	}
	if n := len(f.LatinTable()); n != 95*16 {
		t.Errorf("len(LatinTable()) = %d, want %d", n, 95*16)
	}
}

func TestFontRegistryErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  FontOption
		want error
	}{
		{"short latin table", WithLatinTable(make([]byte, 100)), ErrLatinTableSize},
		{"ragged wide plane", WithWidePlane(make([]byte, 33)), ErrWidePlaneSize},
		{"empty hzk", WithHZK16(bytes.NewReader(nil)), ErrEmptyFontData},
		{"ragged hzk", WithHZK16(bytes.NewReader(make([]byte, 40))), ErrWidePlaneSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontRegistry(tt.opt)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewFontRegistry() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWithLatinTable(t *testing.T) {
	table := make([]byte, 95*16)
	table[('A'-0x20)*16] = 0xFF
	f, err := NewFontRegistry(WithLatinTable(table))
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	table[('A'-0x20)*16] = 0 // registry keeps its own copy
	if !f.HasGlyph('A') || f.HasGlyph('B') {
		t.Error("custom table glyphs not honoured")
	}
}

func TestWithWidePlane(t *testing.T) {
	plane := make([]byte, (0x4E2D+1)*32)
	plane[0x4E2D*32+3] = 0x18
	f, err := NewFontRegistry(WithWidePlane(plane))
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	if !f.HasGlyph('中') {
		t.Error("HasGlyph('中') = false, want true")
	}
	if n := f.WideGlyphCount(); n != 1 {
		t.Errorf("WideGlyphCount() = %d, want 1", n)
	}
}

func TestWithWideFace(t *testing.T) {
	face := newGoRegular(t, 14)
	f, err := NewFontRegistry(WithWideFace(face,
		RuneRange{Lo: '€', Hi: '€'},
		RuneRange{Lo: '中', Hi: '中'},
		RuneRange{Lo: 'A', Hi: 'A'},
	))
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	if !f.HasGlyph('€') {
		t.Error("HasGlyph('€') = false, want a rendered cell")
	}
	if f.HasGlyph('中') {
		t.Error("a rune missing from the face should not get a .notdef cell")
	}
	if n := f.WideGlyphCount(); n != 1 {
		t.Errorf("WideGlyphCount() = %d, want 1", n)
	}
}

func TestWithLatinFace(t *testing.T) {
	f, err := NewFontRegistry(WithLatinFace(newGoRegular(t, 12)))
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	if !f.HasGlyph('g') || f.HasGlyph(' ') {
		t.Error("latin face cells not rendered as expected")
	}
}

func TestImportHZK16(t *testing.T) {
	// GB2312 0xB0A1 is zone 16, position 1.
	const index = (0xB0-0xA1)*94 + (0xA1 - 0xA1)
	blob := make([]byte, (index+1)*32)
	cell := blob[index*32:]
	for row := 0; row < 16; row++ {
		cell[2*row] = 0xF0
		cell[2*row+1] = 0x0F
	}

	f, err := NewFontRegistry(WithHZK16(bytes.NewReader(blob)))
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	var g glyph
	if !f.wideGlyph('啊', &g) {
		t.Fatal("U+554A missing from the wide plane")
	}
	for row := 0; row < 16; row++ {
		if g.data[row] != 0xF0 || g.data[16+row] != 0x0F {
			t.Fatalf("row %d = (%#02x, %#02x), want (0xf0, 0x0f)", row, g.data[row], g.data[16+row])
		}
	}
	if !g.bit(0, 0) || g.bit(4, 0) || g.bit(11, 0) || !g.bit(12, 15) {
		t.Error("planar cell bits do not match the interleaved source")
	}
	if n := f.WideGlyphCount(); n != 1 {
		t.Errorf("WideGlyphCount() = %d, want 1", n)
	}
}
