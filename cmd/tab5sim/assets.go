package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// iconKind selects one of the built-in launcher glyphs.
type iconKind uint8

const (
	iconClock iconKind = iota
	iconCamera
	iconMail
	iconStar
	iconGrid
	iconWifi
	iconMusic
)

// iconView is the side of the square SVG coordinate space icons are
// authored in.
const iconView = 48

// iconSVG returns the SVG document for kind, drawn in white on a
// transparent 48×48 view box.
func iconSVG(kind iconKind) []byte {
	var buf bytes.Buffer
	c := svg.New(&buf)
	c.Startview(iconView, iconView, 0, 0, iconView, iconView)
	const s = "fill:none;stroke:#FFFFFF;stroke-width:4;stroke-linecap:round;stroke-linejoin:round"
	const f = "fill:#FFFFFF"
	switch kind {
	case iconClock:
		c.Circle(24, 24, 18, s)
		c.Line(24, 24, 24, 13, s)
		c.Line(24, 24, 32, 28, s)
	case iconCamera:
		c.Roundrect(6, 14, 36, 26, 5, 5, s)
		c.Rect(17, 8, 14, 6, f)
		c.Circle(24, 27, 7, s)
	case iconMail:
		c.Rect(6, 12, 36, 24, s)
		c.Polyline([]int{6, 24, 42}, []int{12, 26, 12}, s)
	case iconStar:
		xs := make([]int, 10)
		ys := make([]int, 10)
		for i := range xs {
			r := 20.0
			if i%2 == 1 {
				r = 8
			}
			a := float64(i)*math.Pi/5 - math.Pi/2
			xs[i] = 24 + int(math.Round(r*math.Cos(a)))
			ys[i] = 25 + int(math.Round(r*math.Sin(a)))
		}
		c.Polygon(xs, ys, f)
	case iconGrid:
		for _, x := range []int{8, 27} {
			for _, y := range []int{8, 27} {
				c.Roundrect(x, y, 13, 13, 3, 3, f)
			}
		}
	case iconWifi:
		c.Arc(8, 22, 22, 22, 22, false, true, 40, 22, s)
		c.Arc(14, 29, 14, 14, 14, false, true, 34, 29, s)
		c.Circle(24, 37, 3, f)
	case iconMusic:
		c.Line(19, 34, 19, 10, s)
		c.Line(19, 10, 36, 6, s)
		c.Line(36, 6, 36, 30, s)
		c.Circle(14, 35, 6, f)
		c.Circle(31, 31, 6, f)
	}
	c.End()
	return buf.Bytes()
}

// rasterizeSVG renders an SVG document into a size×size RGBA image.
func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("tab5sim: parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// cardImage renders a filled rounded rectangle of the given size with
// transparent corners.
func cardImage(w, h int, radius float64, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(fill)
	roundedRect(gc, 0, 0, float64(w), float64(h), radius)
	gc.Fill()
	return img
}

func roundedRect(gc *draw2dimg.GraphicContext, x, y, w, h, r float64) {
	gc.MoveTo(x+r, y)
	gc.LineTo(x+w-r, y)
	gc.ArcTo(x+w-r, y+r, r, r, -math.Pi/2, math.Pi/2)
	gc.LineTo(x+w, y+h-r)
	gc.ArcTo(x+w-r, y+h-r, r, r, 0, math.Pi/2)
	gc.LineTo(x+r, y+h)
	gc.ArcTo(x+r, y+h-r, r, r, math.Pi/2, math.Pi/2)
	gc.LineTo(x, y+r)
	gc.ArcTo(x+r, y+r, r, r, math.Pi, math.Pi/2)
	gc.Close()
}
