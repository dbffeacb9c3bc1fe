package imlib

import "errors"

var (
	// ErrLatinTableSize is returned when a Latin glyph table does not hold
	// exactly one 16-byte cell per printable ASCII character.
	ErrLatinTableSize = errors.New("imlib: latin table must hold 95 glyphs of 16 bytes")

	// ErrWidePlaneSize is returned when a wide glyph plane is not a whole
	// number of 32-byte cells.
	ErrWidePlaneSize = errors.New("imlib: wide plane size is not a multiple of 32")

	// ErrEmptyFontData is returned when a font source yields no bytes.
	ErrEmptyFontData = errors.New("imlib: empty font data")

	// ErrUnsupportedFormat is returned when an operation cannot work on the
	// image's pixel format.
	ErrUnsupportedFormat = errors.New("imlib: unsupported pixel format")

	// ErrNotCompressed is returned by Decompress on an image that does not
	// hold a JPEG stream.
	ErrNotCompressed = errors.New("imlib: image is not compressed")
)
