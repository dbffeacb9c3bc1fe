// Package color provides the packed pixel conversions used by imlib.
//
// RGB565 pixels store red in bits 15..11, green in bits 10..5 and blue in
// bits 4..0. Grayscale values are 8-bit luma. Binary pixels are 0 or 1.
package color

// RGB888 is an unpacked 24-bit color.
type RGB888 struct {
	R, G, B uint8
}

// R5 extracts the 5-bit red channel of an RGB565 pixel.
func R5(p int) int { return (p >> 11) & 0x1F }

// G6 extracts the 6-bit green channel of an RGB565 pixel.
func G6(p int) int { return (p >> 5) & 0x3F }

// B5 extracts the 5-bit blue channel of an RGB565 pixel.
func B5(p int) int { return p & 0x1F }

// Pack565 assembles an RGB565 pixel from its channels. Channel values are
// masked to their bit width.
func Pack565(r5, g6, b5 int) int {
	return (r5&0x1F)<<11 | (g6&0x3F)<<5 | (b5 & 0x1F)
}

// RGB888To565 packs 8-bit channels into RGB565 by truncating the low bits.
func RGB888To565(r, g, b uint8) int {
	return Pack565(int(r>>3), int(g>>2), int(b>>3))
}

// RGB565To888 expands an RGB565 pixel to 8-bit channels.
func RGB565To888(p int) RGB888 {
	return RGB888{
		R: expand5[R5(p)],
		G: expand6[G6(p)],
		B: expand5[B5(p)],
	}
}

// Luma returns the 8-bit luma of an RGB888 color using the integer
// BT.601 weights 38/75/15 over 128.
func Luma(r, g, b uint8) int {
	return (int(r)*38 + int(g)*75 + int(b)*15) >> 7
}

// GrayToBinary thresholds an 8-bit intensity at the midpoint.
func GrayToBinary(y int) int {
	if y > 127 {
		return 1
	}
	return 0
}
