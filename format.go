package imlib

import (
	"encoding/binary"

	icolor "github.com/tab5ui/imlib/internal/color"
)

// PixelFormat identifies how an Image stores its pixels.
type PixelFormat uint8

const (
	// Binary packs 1 bit per pixel into 32-bit little-endian words.
	Binary PixelFormat = iota
	// Grayscale stores one 8-bit intensity per pixel.
	Grayscale
	// RGB565 stores one little-endian 16-bit 5/6/5 pixel per 2 bytes.
	RGB565
	// JPEG holds a compressed stream. Pixel accessors treat it as unknown.
	JPEG
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case Binary:
		return "binary"
	case Grayscale:
		return "grayscale"
	case RGB565:
		return "rgb565"
	case JPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// BytesPerRow returns the row stride for an image of width w, or 0 for
// formats without a fixed layout.
func (f PixelFormat) BytesPerRow(w int) int {
	switch f {
	case Binary:
		return ((w + 31) >> 5) * 4
	case Grayscale:
		return w
	case RGB565:
		return w * 2
	default:
		return 0
	}
}

// BufferSize returns the number of bytes a w×h image needs.
func (f PixelFormat) BufferSize(w, h int) int {
	return f.BytesPerRow(w) * h
}

// pixelCodec reads and writes one pixel format inside a row slice.
type pixelCodec interface {
	get(row []byte, x int) int
	put(row []byte, x, c int)
	// blend mixes c into the pixel; weight is the share of the old value
	// out of 256.
	blend(row []byte, x, weight, c int)
}

var (
	binaryPixels pixelCodec = binaryCodec{}
	grayPixels   pixelCodec = grayCodec{}
	rgb565Pixels pixelCodec = rgb565Codec{}
)

// codecFor returns the codec for f, or nil when f has no pixel layout.
func codecFor(f PixelFormat) pixelCodec {
	switch f {
	case Binary:
		return binaryPixels
	case Grayscale:
		return grayPixels
	case RGB565:
		return rgb565Pixels
	default:
		return nil
	}
}

// Bit x of a row of little-endian 32-bit words is bit x&7 of byte x>>3.
type binaryCodec struct{}

func (binaryCodec) get(row []byte, x int) int {
	return int(row[x>>3]>>(x&7)) & 1
}

func (binaryCodec) put(row []byte, x, c int) {
	if c != 0 {
		row[x>>3] |= 1 << (x & 7)
	} else {
		row[x>>3] &^= 1 << (x & 7)
	}
}

func (b binaryCodec) blend(row []byte, x, weight, c int) {
	old := b.get(row, x) * 255
	nc := 0
	if c != 0 {
		nc = 255
	}
	b.put(row, x, icolor.GrayToBinary((old*weight+nc*(256-weight))>>8))
}

type grayCodec struct{}

func (grayCodec) get(row []byte, x int) int { return int(row[x]) }

func (grayCodec) put(row []byte, x, c int) { row[x] = uint8(c) }

func (grayCodec) blend(row []byte, x, weight, c int) {
	old := int(row[x])
	row[x] = uint8((old*weight + (c&0xFF)*(256-weight)) >> 8)
}

type rgb565Codec struct{}

func (rgb565Codec) get(row []byte, x int) int {
	return int(binary.LittleEndian.Uint16(row[x*2:]))
}

func (rgb565Codec) put(row []byte, x, c int) {
	binary.LittleEndian.PutUint16(row[x*2:], uint16(c))
}

func (p rgb565Codec) blend(row []byte, x, weight, c int) {
	old := p.get(row, x)
	inv := 256 - weight
	r := (icolor.R5(old)*weight + icolor.R5(c)*inv) >> 8
	g := (icolor.G6(old)*weight + icolor.G6(c)*inv) >> 8
	b := (icolor.B5(old)*weight + icolor.B5(c)*inv) >> 8
	p.put(row, x, icolor.Pack565(r, g, b))
}
