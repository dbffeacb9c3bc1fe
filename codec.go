package imlib

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
)

// NewJPEGImage wraps a JPEG stream without decoding it. Width and height
// are read from the stream header.
func NewJPEGImage(data []byte) (*Image, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imlib: read jpeg header: %w", err)
	}
	return &Image{Width: cfg.Width, Height: cfg.Height, Format: JPEG, Data: data}, nil
}

// DecodeJPEG decodes a JPEG stream into a new image of format f.
func DecodeJPEG(r io.Reader, f PixelFormat) (*Image, error) {
	src, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imlib: decode jpeg: %w", err)
	}
	img, err := FromImage(src, f)
	if err != nil {
		return nil, err
	}
	Logger().Debug("imlib: jpeg decoded", "width", img.Width, "height", img.Height, "format", f)
	return img, nil
}

// FromImage converts any image.Image into a new image of format f.
func FromImage(src image.Image, f PixelFormat) (*Image, error) {
	if codecFor(f) == nil {
		return nil, fmt.Errorf("imlib: convert to %v: %w", f, ErrUnsupportedFormat)
	}
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy(), f)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return img, nil
}

// Decompress decodes a JPEG image into a new image of format f.
func (img *Image) Decompress(f PixelFormat) (*Image, error) {
	if img.Format != JPEG {
		return nil, ErrNotCompressed
	}
	return DecodeJPEG(bytes.NewReader(img.Data), f)
}

// Compress encodes the image as a JPEG stream with the given quality
// (1..100) and returns it as a JPEG image.
func (img *Image) Compress(quality int) (*Image, error) {
	if codecFor(img.Format) == nil {
		return nil, fmt.Errorf("imlib: compress %v: %w", img.Format, ErrUnsupportedFormat)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imlib: encode jpeg: %w", err)
	}
	return &Image{Width: img.Width, Height: img.Height, Format: JPEG, Data: buf.Bytes()}, nil
}

// EncodePNG writes the image to w as PNG. JPEG images are decoded first.
func (img *Image) EncodePNG(w io.Writer) error {
	src := img
	if img.Format == JPEG {
		var err error
		if src, err = img.Decompress(RGB565); err != nil {
			return err
		}
	}
	if codecFor(src.Format) == nil {
		return fmt.Errorf("imlib: encode png: %w", ErrUnsupportedFormat)
	}
	return png.Encode(w, src)
}

// SavePNG saves the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return img.EncodePNG(f)
}
