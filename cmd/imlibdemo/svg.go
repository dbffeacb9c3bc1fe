package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/tab5ui/imlib/internal/gallery"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func stroke(c color.RGBA, width int) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", hex(c), max(width, 1))
}

func paint(c color.RGBA, width int, fill bool) string {
	if fill {
		return "fill:" + hex(c)
	}
	return stroke(c, width)
}

// writeSVG draws the vector equivalent of s onto canvas.
func writeSVG(canvas *svg.SVG, s gallery.Scene) {
	canvas.Start(s.Width, s.Height)
	canvas.Rect(0, 0, s.Width, s.Height, "fill:"+hex(s.Background))
	for _, op := range s.Ops {
		switch o := op.(type) {
		case gallery.Line:
			canvas.Line(o.X0, o.Y0, o.X1, o.Y1, stroke(o.Color, o.Thickness)+";stroke-linecap:round")
		case gallery.Arrow:
			canvas.Line(o.X0, o.Y0, o.X1, o.Y1, stroke(o.Color, o.Thickness))
			xs, ys := arrowHead(o)
			canvas.Polyline(xs, ys, stroke(o.Color, o.Thickness))
		case gallery.Rect:
			if o.Fill {
				canvas.Rect(o.X, o.Y, o.W, o.H, paint(o.Color, 0, true))
				continue
			}
			// The raster outline is drawn inside the box.
			t := max(o.Thickness, 1)
			canvas.Rect(o.X+t/2, o.Y+t/2, o.W-t, o.H-t, stroke(o.Color, t))
		case gallery.Circle:
			canvas.Circle(o.CX, o.CY, o.R, paint(o.Color, o.Thickness, o.Fill))
		case gallery.Ellipse:
			canvas.Gtransform(fmt.Sprintf("rotate(%d %d %d)", o.Rotation, o.CX, o.CY))
			canvas.Ellipse(o.CX, o.CY, o.RX, o.RY, paint(o.Color, o.Thickness, o.Fill))
			canvas.Gend()
		case gallery.Text:
			scale := float64(o.Style.Scale)
			if scale <= 0 {
				scale = 1
			}
			canvas.Gtransform(fmt.Sprintf("rotate(%d %d %d)", o.Style.StringRotation, o.X, o.Y))
			canvas.Text(o.X, o.Y+int(13*scale), o.S,
				fmt.Sprintf("fill:%s;font-family:monospace;font-size:%dpx;white-space:pre", hex(o.Color), int(16*scale)))
			canvas.Gend()
		}
	}
	canvas.End()
}

// arrowHead returns the polyline through both head strokes of o.
func arrowHead(o gallery.Arrow) ([]int, []int) {
	dx, dy := float64(o.X1-o.X0), float64(o.Y1-o.Y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return []int{o.X1}, []int{o.Y1}
	}
	ux, uy := dx/l, dy/l
	s := float64(o.Size)
	bx, by := float64(o.X1)-s*ux, float64(o.Y1)-s*uy
	vx, vy := -uy*s/2, ux*s/2
	return []int{int(math.Round(bx + vx)), o.X1, int(math.Round(bx - vx))},
		[]int{int(math.Round(by + vy)), o.Y1, int(math.Round(by - vy))}
}

func saveSVG(path string, s gallery.Scene) error {
	var buf bytes.Buffer
	writeSVG(svg.New(&buf), s)
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
