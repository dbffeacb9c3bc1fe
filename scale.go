package imlib

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DrawScaled draws src scaled into the rectangle dr with bilinear
// filtering, compositing over the existing pixels.
func (img *Image) DrawScaled(src image.Image, dr image.Rectangle) {
	if codecFor(img.Format) == nil {
		return
	}
	xdraw.ApproxBiLinear.Scale(img, dr, src, src.Bounds(), xdraw.Over, nil)
}

// Blit copies src with its top-left corner at dp, compositing over the
// existing pixels.
func (img *Image) Blit(src image.Image, dp image.Point) {
	if codecFor(img.Format) == nil {
		return
	}
	xdraw.Copy(img, dp, src, src.Bounds(), xdraw.Over, nil)
}
