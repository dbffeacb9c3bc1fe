// Package gallery holds reference drawing scenes for imlib. The scenes are
// rendered by cmd/imlibdemo and exercised by the package tests.
package gallery

import (
	"image/color"

	"github.com/tab5ui/imlib"
)

// Scene is a fixed canvas and a list of drawing operations.
type Scene struct {
	Name       string // lowercase a-z, 0-9 and _ only
	Width      int
	Height     int
	Background color.RGBA
	Ops        []Op
}

// Op is a single drawing call.
type Op interface {
	apply(img *imlib.Image, tr *imlib.TextRenderer)
}

// Line draws a segment between two points.
type Line struct {
	X0, Y0, X1, Y1 int
	Thickness      int
	Color          color.RGBA
}

// Arrow draws a segment with a head of Size pixels at (X1, Y1).
type Arrow struct {
	X0, Y0, X1, Y1 int
	Thickness      int
	Size           int
	Color          color.RGBA
}

// Rect draws an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
	Thickness  int
	Fill       bool
	Color      color.RGBA
}

// Circle draws a circle centred on (CX, CY).
type Circle struct {
	CX, CY, R int
	Thickness int
	Fill      bool
	Color     color.RGBA
}

// Ellipse draws an ellipse rotated by Rotation degrees.
type Ellipse struct {
	CX, CY, RX, RY int
	Rotation       int
	Thickness      int
	Fill           bool
	Color          color.RGBA
}

// Text draws a string with the bitmap fonts.
type Text struct {
	X, Y  int
	S     string
	Style imlib.TextStyle
	Color color.RGBA
}

func (o Line) apply(img *imlib.Image, _ *imlib.TextRenderer) {
	img.DrawLine(o.X0, o.Y0, o.X1, o.Y1, imlib.ColorFor(img.Format, o.Color), o.Thickness)
}

func (o Arrow) apply(img *imlib.Image, _ *imlib.TextRenderer) {
	img.DrawArrow(o.X0, o.Y0, o.X1, o.Y1, imlib.ColorFor(img.Format, o.Color), o.Thickness, o.Size)
}

func (o Rect) apply(img *imlib.Image, _ *imlib.TextRenderer) {
	img.DrawRectangle(o.X, o.Y, o.W, o.H, imlib.ColorFor(img.Format, o.Color), o.Thickness, o.Fill)
}

func (o Circle) apply(img *imlib.Image, _ *imlib.TextRenderer) {
	img.DrawCircle(o.CX, o.CY, o.R, imlib.ColorFor(img.Format, o.Color), o.Thickness, o.Fill)
}

func (o Ellipse) apply(img *imlib.Image, _ *imlib.TextRenderer) {
	img.DrawEllipse(o.CX, o.CY, o.RX, o.RY, o.Rotation, imlib.ColorFor(img.Format, o.Color), o.Thickness, o.Fill)
}

func (o Text) apply(img *imlib.Image, tr *imlib.TextRenderer) {
	if tr == nil {
		return
	}
	tr.DrawString(img, o.X, o.Y, o.S, imlib.ColorFor(img.Format, o.Color), o.Style)
}

// Render draws s into a new image of format f. Text operations are
// skipped when tr is nil.
func (s Scene) Render(f imlib.PixelFormat, tr *imlib.TextRenderer) *imlib.Image {
	img := imlib.NewImage(s.Width, s.Height, f)
	img.Clear(imlib.ColorFor(f, s.Background))
	for _, op := range s.Ops {
		op.apply(img, tr)
	}
	return img
}
