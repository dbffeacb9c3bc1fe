package imlib

import "github.com/tab5ui/imlib/internal/fmath"

// nominalCell is the cell size used for string mirroring and line height.
const nominalCell = 16

// TextStyle controls how DrawString lays out and transforms glyphs.
// The zero value draws unscaled, tightly spaced, unrotated text.
type TextStyle struct {
	// Scale magnifies each glyph. Values <= 0 are treated as 1.
	Scale float32
	// XSpacing is added after every glyph; YSpacing after every line.
	XSpacing, YSpacing int
	// Monospace advances by the full cell width instead of the glyph's ink.
	Monospace bool

	// CharRotation turns each glyph about its own centre, in degrees.
	// It is truncated to a multiple of 90.
	CharRotation int
	CharHMirror  bool
	CharVFlip    bool

	// StringRotation turns the whole string about its origin, in degrees.
	// It is truncated to a multiple of 90.
	StringRotation int
	StringHMirror  bool
	StringVFlip    bool
}

// TextRenderer draws strings with the glyphs of a FontRegistry.
type TextRenderer struct {
	fonts *FontRegistry
}

// NewTextRenderer returns a renderer that draws with fonts.
func NewTextRenderer(fonts *FontRegistry) *TextRenderer {
	return &TextRenderer{fonts: fonts}
}

// quarterTurn normalises deg into [0, 360) and truncates it to a multiple
// of 90.
func quarterTurn(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg / 90 * 90
}

// rotateQuarter turns (x, y) about (cx, cy) by a multiple of 90 degrees.
func rotateQuarter(x, y, deg, cx, cy int) (int, int) {
	dx, dy := x-cx, y-cy
	switch deg {
	case 90:
		return cx - dy, cy + dx
	case 180:
		return cx - dx, cy - dy
	case 270:
		return cx + dy, cy - dx
	default:
		return x, y
	}
}

// DrawString draws text with its first cell anchored at (x, y) in color c.
//
// One-byte code points use the 8×16 Latin table and three-byte code points
// the 16×16 wide plane. Code points without a glyph and undecodable bytes
// are skipped. '\n' and "\r\n" return to the anchor column and move down
// one line.
func (r *TextRenderer) DrawString(img *Image, x, y int, text string, c int, st TextStyle) {
	scale := st.Scale
	if scale <= 0 {
		scale = 1
	}
	charRot := quarterTurn(st.CharRotation)
	strRot := quarterTurn(st.StringRotation)
	swapWH := charRot == 90 || charRot == 270
	upsideDown := charRot == 180 || charRot == 270

	cell := fmath.Floor(nominalCell * scale)
	if st.StringHMirror {
		x -= cell - 1
	}
	if st.StringVFlip {
		y -= cell - 1
	}
	orgX, orgY := x, y
	anchor := x

	dir := 1
	if st.StringHMirror {
		dir = -1
	}
	lineDir := 1
	if st.StringVFlip {
		lineDir = -1
	}

	var g glyph
	for i := 0; i < len(text); {
		cp, n := DecodeUTF8(text[i:])
		if n == 0 {
			i++
			continue
		}
		i += n

		switch n {
		case 1:
			if cp == '\r' || cp == '\n' {
				if cp == '\r' && i < len(text) && text[i] == '\n' {
					i++
				}
				x = anchor
				y += lineDir * (cell + st.YSpacing)
				continue
			}
			if !r.fonts.latinGlyph(cp, &g) {
				continue
			}
		case 3:
			if !r.fonts.wideGlyph(cp, &g) {
				continue
			}
		default:
			continue
		}

		r.drawGlyph(img, &g, x, y, orgX, orgY, c, scale, charRot, strRot, st)

		if st.Monospace {
			w := g.w
			if swapWH {
				w = g.h
			}
			x += dir * (fmath.Floor(float32(w)*scale) + st.XSpacing)
			continue
		}

		flipH := upsideDown != st.CharHMirror != st.StringHMirror
		flipV := upsideDown != st.CharVFlip
		if col, ok := g.inkExtent(swapWH, flipH, flipV); ok {
			x += dir * (fmath.Floor(float32(col+2)*scale) + st.XSpacing)
		} else {
			x += dir * fmath.Floor(scale*3)
		}
	}
}

// drawGlyph samples g at scale, mirrors it within its box, turns it about
// the box centre and then about the string origin.
func (r *TextRenderer) drawGlyph(img *Image, g *glyph, xOff, yOff, orgX, orgY, c int, scale float32, charRot, strRot int, st TextStyle) {
	xx := fmath.Floor(float32(g.w) * scale)
	yy := fmath.Floor(float32(g.h) * scale)
	cx, cy := xOff+xx/2, yOff+yy/2

	for y := 0; y < yy; y++ {
		gy := fmath.Floor(float32(y) / scale)
		for x := 0; x < xx; x++ {
			if !g.bit(fmath.Floor(float32(x)/scale), gy) {
				continue
			}
			px, py := xOff+x, yOff+y
			if st.CharHMirror {
				px = xOff + xx - x - 1
			}
			if st.CharVFlip {
				py = yOff + yy - y - 1
			}
			px, py = rotateQuarter(px, py, charRot, cx, cy)
			px, py = rotateQuarter(px, py, strRot, orgX, orgY)
			img.SetPixel(px, py, c)
		}
	}
}

// inkExtent finds the column of the glyph's last inked pixel in drawing
// order. Without swap it scans columns right to left; with swap it scans
// rows top to bottom and reports the distance from the bottom row.
func (g *glyph) inkExtent(swap, flipH, flipV bool) (int, bool) {
	set := func(x, y int) bool {
		if flipH {
			x = g.w - 1 - x
		}
		if flipV {
			y = g.h - 1 - y
		}
		return g.bit(x, y)
	}

	if !swap {
		for x := g.w - 1; x >= 0; x-- {
			for y := g.h - 1; y >= 0; y-- {
				if set(x, y) {
					return x, true
				}
			}
		}
		return 0, false
	}

	for y := 0; y < g.h; y++ {
		for x := g.w - 1; x >= 0; x-- {
			if set(x, y) {
				return g.h - 1 - y, true
			}
		}
	}
	return 0, false
}
