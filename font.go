package imlib

import (
	"fmt"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	latinFirst  = 0x20
	latinLast   = 0x7E
	latinCount  = latinLast - latinFirst + 1
	latinWidth  = 8
	latinHeight = 16
	latinBytes  = latinHeight

	wideWidth  = 16
	wideHeight = 16
	wideBytes  = 32

	// maxWideRune is the last code point reachable by a 3-byte sequence.
	maxWideRune = 0xFFFF
)

// RuneRange is an inclusive range of code points.
type RuneRange struct {
	Lo, Hi rune
}

// FontOption configures a FontRegistry during creation.
type FontOption func(*fontOptions)

type wideFace struct {
	face   font.Face
	ranges []RuneRange
}

type fontOptions struct {
	latin     []byte
	latinFace font.Face
	wide      []byte
	faces     []wideFace
	hzk       []io.Reader
}

// WithLatinTable uses a prebuilt 8×16 table for U+0020..U+007E: 95 cells
// of 16 bytes, one byte per row with the leftmost column in the MSB.
func WithLatinTable(table []byte) FontOption {
	return func(o *fontOptions) {
		o.latin = table
	}
}

// WithLatinFace renders the Latin table from face instead of the default
// basicfont.Face7x13.
func WithLatinFace(face font.Face) FontOption {
	return func(o *fontOptions) {
		o.latinFace = face
	}
}

// WithWidePlane uses a prebuilt 16×16 plane indexed by code point: cell
// cp*32 holds 16 bytes of left halves followed by 16 bytes of right halves.
func WithWidePlane(plane []byte) FontOption {
	return func(o *fontOptions) {
		o.wide = plane
	}
}

// WithWideFace renders 16×16 cells for the given ranges from face.
// Only code points in U+0800..U+FFFF are reachable by the renderer;
// ranges are clipped to that interval.
func WithWideFace(face font.Face, ranges ...RuneRange) FontOption {
	return func(o *fontOptions) {
		o.faces = append(o.faces, wideFace{face: face, ranges: ranges})
	}
}

// WithHZK16 imports a GB2312-ordered HZK16 bitmap font into the wide plane.
// The reader is consumed when the registry is built.
func WithHZK16(r io.Reader) FontOption {
	return func(o *fontOptions) {
		o.hzk = append(o.hzk, r)
	}
}

// FontRegistry holds the glyph tables used by TextRenderer.
// It is immutable once built and safe for concurrent use.
type FontRegistry struct {
	latin []byte
	wide  []byte
}

// NewFontRegistry builds a registry. Without options it carries the
// default Latin table and an empty wide plane.
//
// Wide sources are merged in order: the prebuilt plane, then HZK16 imports,
// then faces. Later sources overwrite earlier cells.
func NewFontRegistry(opts ...FontOption) (*FontRegistry, error) {
	var o fontOptions
	for _, opt := range opts {
		opt(&o)
	}

	f := &FontRegistry{}

	switch {
	case o.latin != nil:
		if len(o.latin) != latinCount*latinBytes {
			return nil, fmt.Errorf("imlib: latin table has %d bytes: %w", len(o.latin), ErrLatinTableSize)
		}
		f.latin = append([]byte(nil), o.latin...)
	default:
		face := o.latinFace
		if face == nil {
			face = basicfont.Face7x13
		}
		f.latin = renderLatinTable(face)
	}

	if o.wide != nil {
		if len(o.wide)%wideBytes != 0 {
			return nil, fmt.Errorf("imlib: wide plane has %d bytes: %w", len(o.wide), ErrWidePlaneSize)
		}
		f.wide = append([]byte(nil), o.wide...)
	}

	for _, r := range o.hzk {
		n, err := f.importHZK16(r)
		if err != nil {
			return nil, fmt.Errorf("imlib: import HZK16: %w", err)
		}
		Logger().Debug("imlib: HZK16 imported", "glyphs", n)
	}

	for _, wf := range o.faces {
		n := f.renderWideFace(wf.face, wf.ranges)
		Logger().Debug("imlib: wide face rendered", "glyphs", n)
	}

	Logger().Info("imlib: font registry ready",
		"latin", latinCount,
		"wide", f.WideGlyphCount())
	return f, nil
}

// HasGlyph reports whether r has a non-empty cell in the registry.
// Space and other blank Latin cells report false.
func (f *FontRegistry) HasGlyph(r rune) bool {
	var g glyph
	switch {
	case r >= latinFirst && r <= latinLast:
		f.latinGlyph(r, &g)
	case f.wideGlyph(r, &g):
	default:
		return false
	}
	for _, b := range g.data {
		if b != 0 {
			return true
		}
	}
	return false
}

// WideGlyphCount returns the number of non-empty wide cells.
func (f *FontRegistry) WideGlyphCount() int {
	n := 0
	for off := 0; off+wideBytes <= len(f.wide); off += wideBytes {
		for _, b := range f.wide[off : off+wideBytes] {
			if b != 0 {
				n++
				break
			}
		}
	}
	return n
}

// LatinTable returns a copy of the 8×16 Latin table.
func (f *FontRegistry) LatinTable() []byte {
	return append([]byte(nil), f.latin...)
}

// glyph is a view into one cell of a registry table.
type glyph struct {
	w, h int
	data []byte
}

// bit reports whether the cell pixel at column x, row y is set. Wide cells
// keep the left 8 columns in data[0:16] and the right 8 in data[16:32].
func (g *glyph) bit(x, y int) bool {
	if x >= 8 {
		return g.data[y+16]&(0x80>>(x-8)) != 0
	}
	return g.data[y]&(0x80>>x) != 0
}

func (f *FontRegistry) latinGlyph(r rune, g *glyph) bool {
	if r < latinFirst || r > latinLast {
		return false
	}
	off := int(r-latinFirst) * latinBytes
	g.w, g.h = latinWidth, latinHeight
	g.data = f.latin[off : off+latinBytes]
	return true
}

func (f *FontRegistry) wideGlyph(r rune, g *glyph) bool {
	off := int(r) * wideBytes
	if r < 0 || off+wideBytes > len(f.wide) {
		return false
	}
	g.w, g.h = wideWidth, wideHeight
	g.data = f.wide[off : off+wideBytes]
	return true
}

// wideCell returns the cell for r, growing the plane as needed.
func (f *FontRegistry) wideCell(r rune) []byte {
	end := (int(r) + 1) * wideBytes
	if end > len(f.wide) {
		f.wide = append(f.wide, make([]byte, end-len(f.wide))...)
	}
	return f.wide[end-wideBytes : end]
}
