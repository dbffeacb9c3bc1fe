package imlib

import (
	"bytes"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// renderLatinTable rasterises U+0020..U+007E from face into 8×16 cells.
func renderLatinTable(face font.Face) []byte {
	table := make([]byte, latinCount*latinBytes)
	for r := rune(latinFirst); r <= latinLast; r++ {
		off := int(r-latinFirst) * latinBytes
		renderCell(face, r, latinWidth, latinHeight, table[off:off+latinBytes])
	}
	return table
}

// renderWideFace rasterises every rune of ranges that face covers into
// the wide plane and returns the number of cells written.
//
// Outline faces report a .notdef glyph for runes they lack, so cells that
// match the rendering of the noncharacter U+FFFF are dropped.
func (f *FontRegistry) renderWideFace(face font.Face, ranges []RuneRange) int {
	notdef := make([]byte, wideBytes)
	hasNotdef := renderCell(face, 0xFFFF, wideWidth, wideHeight, notdef)

	n := 0
	cell := make([]byte, wideBytes)
	for _, rr := range ranges {
		lo := max(rr.Lo, 0x0800)
		hi := min(rr.Hi, maxWideRune)
		for r := lo; r <= hi; r++ {
			clear(cell)
			if !renderCell(face, r, wideWidth, wideHeight, cell) {
				continue
			}
			if hasNotdef && bytes.Equal(cell, notdef) {
				continue
			}
			copy(f.wideCell(r), cell)
			n++
		}
	}
	return n
}

// renderCell draws r into a w×h 1-bit cell. The face's ascent+descent box
// is centred vertically and the advance horizontally. Mask pixels at or
// above half coverage are set. It reports false when face has no glyph.
func renderCell(face font.Face, r rune, w, h int, dst []byte) bool {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return false
	}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := (h-(ascent+descent))/2 + ascent
	left := max((w-adv.Round())/2, 0)

	dr, mask, mp, _, ok := face.Glyph(fixed.P(left, baseline), r)
	if !ok {
		return false
	}
	for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, h); y++ {
		for x := max(dr.Min.X, 0); x < min(dr.Max.X, w); x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			if a >= 0x8000 {
				setCellBit(dst, w, x, y)
			}
		}
	}
	return true
}

// setCellBit sets column x of row y in an 8-wide or 16-wide cell.
func setCellBit(cell []byte, w, x, y int) {
	if w > 8 && x >= 8 {
		cell[y+16] |= 0x80 >> (x - 8)
		return
	}
	cell[y] |= 0x80 >> x
}
