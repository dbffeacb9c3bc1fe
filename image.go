package imlib

import (
	"image"
	"image/color"

	icolor "github.com/tab5ui/imlib/internal/color"
)

// Image is a packed pixel buffer. Data is owned by the caller; drawing
// primitives mutate it in place.
type Image struct {
	Width  int
	Height int
	Format PixelFormat
	Data   []byte
}

// NewImage allocates a zeroed image of the given size and format.
// JPEG images are created empty; use NewJPEGImage to wrap a stream.
func NewImage(width, height int, f PixelFormat) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Format: f,
		Data:   make([]byte, f.BufferSize(width, height)),
	}
}

// WrapImage adopts an existing buffer such as a display framebuffer.
// The buffer is not copied and its length is not validated; it must hold
// at least f.BufferSize(width, height) bytes.
func WrapImage(width, height int, f PixelFormat, data []byte) *Image {
	return &Image{Width: width, Height: height, Format: f, Data: data}
}

// RGB returns the RGB565 value of an 8-bit color.
func RGB(r, g, b uint8) int {
	return icolor.RGB888To565(r, g, b)
}

// ColorFor converts c to the native pixel value of format f.
// It returns 0 for formats without a pixel layout.
func ColorFor(f PixelFormat, c color.Color) int {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	switch f {
	case Binary:
		return icolor.GrayToBinary(icolor.Luma(r8, g8, b8))
	case Grayscale:
		return icolor.Luma(r8, g8, b8)
	case RGB565:
		return icolor.RGB888To565(r8, g8, b8)
	default:
		return 0
	}
}

// nativeColor converts a native pixel value of format f to a color.Color.
func nativeColor(f PixelFormat, p int) color.Color {
	switch f {
	case Binary:
		if p != 0 {
			return color.White
		}
		return color.Black
	case Grayscale:
		return color.Gray{Y: uint8(p)}
	case RGB565:
		c := icolor.RGB565To888(p)
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	default:
		return color.Transparent
	}
}

var (
	binaryModel color.Model = color.Palette{color.Black, color.White}
	rgb565Model             = color.ModelFunc(func(c color.Color) color.Color {
		return nativeColor(RGB565, ColorFor(RGB565, c))
	})
)

// GetPixel returns the native value at (x, y), or -1 when the point is
// outside the image or the format has no pixel layout.
func (img *Image) GetPixel(x, y int) int {
	pc := codecFor(img.Format)
	if pc == nil || x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return -1
	}
	return pc.get(img.RowPointer(y), x)
}

// Clear sets every pixel to c.
func (img *Image) Clear(c int) {
	pc := codecFor(img.Format)
	if pc == nil {
		return
	}
	for y := 0; y < img.Height; y++ {
		row := img.RowPointer(y)
		for x := 0; x < img.Width; x++ {
			pc.put(row, x, c)
		}
	}
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	p := img.GetPixel(x, y)
	if p < 0 {
		return color.Transparent
	}
	return nativeColor(img.Format, p)
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	switch img.Format {
	case Binary:
		return binaryModel
	case Grayscale:
		return color.GrayModel
	case RGB565:
		return rgb565Model
	default:
		return color.RGBAModel
	}
}

// Set implements the draw.Image interface.
func (img *Image) Set(x, y int, c color.Color) {
	img.SetPixel(x, y, ColorFor(img.Format, c))
}
