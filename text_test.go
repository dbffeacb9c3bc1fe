package imlib

import "testing"

func newTestRenderer(t *testing.T, opts ...FontOption) *TextRenderer {
	t.Helper()
	f, err := NewFontRegistry(opts...)
	if err != nil {
		t.Fatalf("NewFontRegistry() = %v", err)
	}
	return NewTextRenderer(f)
}

// widePlane returns a plane holding one cell for r.
func widePlane(r rune, cell [32]byte) []byte {
	plane := make([]byte, (int(r)+1)*32)
	copy(plane[int(r)*32:], cell[:])
	return plane
}

func TestQuarterTurn(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {89, 0}, {90, 90}, {179, 90}, {270, 270}, {359, 270},
		{360, 0}, {450, 90}, {-1, 270}, {-90, 270}, {-180, 180}, {-450, 270},
	}
	for _, tt := range tests {
		if got := quarterTurn(tt.in); got != tt.want {
			t.Errorf("quarterTurn(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRotateQuarter(t *testing.T) {
	tests := []struct {
		deg          int
		wantX, wantY int
	}{
		{0, 3, 0},
		{90, 0, 3},
		{180, -3, 0},
		{270, 0, -3},
	}
	for _, tt := range tests {
		x, y := rotateQuarter(3, 0, tt.deg, 0, 0)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("rotateQuarter(3, 0, %d) = (%d, %d), want (%d, %d)", tt.deg, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestDrawStringStaysInCell(t *testing.T) {
	r := newTestRenderer(t)
	img := NewImage(40, 24, Grayscale)
	r.DrawString(img, 2, 2, "A", 255, TextStyle{})
	if countSet(img) == 0 {
		t.Fatal("DrawString drew nothing")
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.GetPixel(x, y) != 0 && (x < 2 || x >= 10 || y < 2 || y >= 18) {
				t.Fatalf("pixel (%d, %d) outside the 8×16 cell", x, y)
			}
		}
	}
}

func TestDrawStringAdvance(t *testing.T) {
	r := newTestRenderer(t)
	draw := func(parts ...any) *Image {
		img := NewImage(120, 60, Grayscale)
		for i := 0; i < len(parts); i += 4 {
			r.DrawString(img, parts[i].(int), parts[i+1].(int), parts[i+2].(string), 255, parts[i+3].(TextStyle))
		}
		return img
	}

	mono := TextStyle{Monospace: true}
	mono2 := TextStyle{Monospace: true, Scale: 2, XSpacing: 3}

	var g glyph
	r.fonts.latinGlyph('A', &g)
	col, ok := g.inkExtent(false, false, false)
	if !ok {
		t.Fatal("'A' has no ink")
	}
	tight := col + 2

	tests := []struct {
		name string
		a, b *Image
	}{
		{"monospace", draw(4, 4, "AB", mono), draw(4, 4, "A", mono, 12, 4, "B", mono)},
		{"monospace scaled", draw(4, 4, "AB", mono2), draw(4, 4, "A", mono2, 4+16+3, 4, "B", mono2)},
		{"tight", draw(4, 4, "AB", TextStyle{}), draw(4, 4, "A", TextStyle{}, 4+tight, 4, "B", TextStyle{})},
		{"blank advances three", draw(4, 4, " A", TextStyle{}), draw(7, 4, "A", TextStyle{})},
		{"newline", draw(4, 4, "A\nB", TextStyle{YSpacing: 2}), draw(4, 4, "A", TextStyle{}, 4, 22, "B", TextStyle{})},
		{"crlf", draw(4, 4, "A\r\nB", TextStyle{}), draw(4, 4, "A\nB", TextStyle{})},
		{"invalid bytes skipped", draw(4, 4, "A\xffB\x80", TextStyle{}), draw(4, 4, "AB", TextStyle{})},
		{"missing wide glyph skipped", draw(4, 4, "中A", TextStyle{}), draw(4, 4, "A", TextStyle{})},
		{"control skipped", draw(4, 4, "A\tB", TextStyle{}), draw(4, 4, "AB", TextStyle{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !equalImages(tt.a, tt.b) {
				t.Error("images differ")
			}
		})
	}
}

func TestDrawStringWideGlyph(t *testing.T) {
	var block [32]byte
	for i := range block {
		block[i] = 0xFF
	}
	r := newTestRenderer(t, WithWidePlane(widePlane('中', block)))

	img := NewImage(40, 40, Grayscale)
	r.DrawString(img, 0, 0, "中", 255, TextStyle{})
	if n := countSet(img); n != 256 {
		t.Errorf("set pixels = %d, want 256", n)
	}

	img = NewImage(40, 40, Grayscale)
	r.DrawString(img, 0, 0, "中", 255, TextStyle{Scale: 2})
	if n := countSet(img); n != 32*32 {
		t.Errorf("scaled set pixels = %d, want 1024", n)
	}
}

func TestDrawStringTransforms(t *testing.T) {
	var corner [32]byte
	corner[0] = 0x40 // column 1, row 0
	r := newTestRenderer(t, WithWidePlane(widePlane('中', corner)))

	tests := []struct {
		name   string
		st     TextStyle
		wx, wy int
	}{
		{"plain", TextStyle{}, 11, 10},
		{"char hmirror", TextStyle{CharHMirror: true}, 24, 10},
		{"char vflip", TextStyle{CharVFlip: true}, 11, 25},
		{"char rotation 90", TextStyle{CharRotation: 90}, 26, 11},
		{"char rotation 180", TextStyle{CharRotation: 180}, 25, 26},
		{"string rotation 180", TextStyle{StringRotation: 180}, 9, 10},
		{"string rotation 270", TextStyle{StringRotation: -90}, 10, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(40, 40, Grayscale)
			r.DrawString(img, 10, 10, "中", 255, tt.st)
			if got := img.GetPixel(tt.wx, tt.wy); got != 255 {
				t.Errorf("pixel (%d, %d) = %d, want 255", tt.wx, tt.wy, got)
			}
			if n := countSet(img); n != 1 {
				t.Errorf("set pixels = %d, want 1", n)
			}
		})
	}
}

func TestDrawStringHMirrorRunsLeft(t *testing.T) {
	var block [32]byte
	for i := range block {
		block[i] = 0xFF
	}
	r := newTestRenderer(t, WithWidePlane(widePlane('中', block)))

	img := NewImage(64, 20, Grayscale)
	r.DrawString(img, 40, 0, "中中", 255, TextStyle{StringHMirror: true, Monospace: true})
	for _, tt := range []struct {
		x   int
		set bool
	}{{8, false}, {9, true}, {24, true}, {25, true}, {40, true}, {41, false}} {
		if got := img.GetPixel(tt.x, 5) != 0; got != tt.set {
			t.Errorf("pixel (%d, 5) set = %v, want %v", tt.x, got, tt.set)
		}
	}
}

func BenchmarkDrawString(b *testing.B) {
	f, err := NewFontRegistry()
	if err != nil {
		b.Fatal(err)
	}
	r := NewTextRenderer(f)
	img := NewImage(320, 240, RGB565)
	b.ReportAllocs()
	for b.Loop() {
		r.DrawString(img, 4, 4, "The quick brown fox jumps over the lazy dog", 0xFFFF, TextStyle{Scale: 1.5})
	}
}
