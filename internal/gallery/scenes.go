package gallery

import (
	"image/color"

	"github.com/tab5ui/imlib"
)

var (
	black  = color.RGBA{0, 0, 0, 255}
	white  = color.RGBA{255, 255, 255, 255}
	red    = color.RGBA{230, 60, 50, 255}
	green  = color.RGBA{70, 200, 90, 255}
	blue   = color.RGBA{60, 110, 230, 255}
	yellow = color.RGBA{250, 210, 60, 255}
	grey   = color.RGBA{128, 128, 128, 255}
)

// fan returns thin lines from (cx, cy) to points spread around a square
// of half-size r.
func fan(cx, cy, r int, c color.RGBA) []Op {
	var ops []Op
	for i := -r; i <= r; i += r / 4 {
		ops = append(ops,
			Line{X0: cx, Y0: cy, X1: cx + i, Y1: cy - r, Thickness: 1, Color: c},
			Line{X0: cx, Y0: cy, X1: cx + r, Y1: cy + i, Thickness: 1, Color: c},
		)
	}
	return ops
}

var lineScenes = []Scene{
	{
		Name: "hairline_fan", Width: 128, Height: 128, Background: black,
		Ops: fan(64, 64, 56, white),
	},
	{
		Name: "thick_lines", Width: 160, Height: 120, Background: black,
		Ops: []Op{
			Line{X0: 10, Y0: 10, X1: 150, Y1: 10, Thickness: 2, Color: red},
			Line{X0: 10, Y0: 30, X1: 150, Y1: 60, Thickness: 4, Color: green},
			Line{X0: 20, Y0: 110, X1: 60, Y1: 20, Thickness: 6, Color: blue},
			Line{X0: 80, Y0: 110, X1: 150, Y1: 80, Thickness: 9, Color: yellow},
		},
	},
	{
		Name: "clipped", Width: 96, Height: 96, Background: grey,
		Ops: []Op{
			Line{X0: -40, Y0: 20, X1: 140, Y1: 70, Thickness: 3, Color: white},
			Line{X0: 48, Y0: -30, X1: 48, Y1: 200, Thickness: 1, Color: black},
			Line{X0: -10, Y0: -10, X1: -1, Y1: 50, Thickness: 5, Color: red},
		},
	},
	{
		Name: "arrows", Width: 128, Height: 128, Background: black,
		Ops: []Op{
			Arrow{X0: 64, Y0: 64, X1: 120, Y1: 64, Thickness: 1, Size: 8, Color: white},
			Arrow{X0: 64, Y0: 64, X1: 64, Y1: 8, Thickness: 2, Size: 10, Color: green},
			Arrow{X0: 64, Y0: 64, X1: 12, Y1: 110, Thickness: 3, Size: 14, Color: yellow},
		},
	},
}

var shapeScenes = []Scene{
	{
		Name: "rectangles", Width: 160, Height: 100, Background: black,
		Ops: []Op{
			Rect{X: 8, Y: 8, W: 60, H: 40, Thickness: 1, Color: white},
			Rect{X: 80, Y: 8, W: 70, H: 40, Thickness: 5, Color: red},
			Rect{X: 8, Y: 56, W: 60, H: 36, Fill: true, Color: blue},
			Rect{X: 80, Y: 56, W: 70, H: 36, Thickness: 4, Color: green},
			Rect{X: 100, Y: 66, W: 30, H: 16, Fill: true, Color: yellow},
		},
	},
	{
		Name: "circles", Width: 160, Height: 100, Background: black,
		Ops: []Op{
			Circle{CX: 30, CY: 30, R: 22, Thickness: 1, Color: white},
			Circle{CX: 80, CY: 30, R: 22, Thickness: 4, Color: green},
			Circle{CX: 130, CY: 30, R: 22, Fill: true, Color: red},
			Circle{CX: 80, CY: 90, R: 40, Thickness: 2, Color: blue},
		},
	},
	{
		Name: "ellipses", Width: 200, Height: 120, Background: black,
		Ops: []Op{
			Ellipse{CX: 40, CY: 40, RX: 30, RY: 16, Thickness: 1, Color: white},
			Ellipse{CX: 110, CY: 40, RX: 30, RY: 16, Rotation: 30, Thickness: 3, Color: yellow},
			Ellipse{CX: 170, CY: 60, RX: 14, RY: 40, Rotation: -20, Fill: true, Color: blue},
			Ellipse{CX: 70, CY: 90, RX: 50, RY: 20, Rotation: 160, Fill: true, Color: green},
		},
	},
}

var textScenes = []Scene{
	{
		Name: "latin", Width: 200, Height: 72, Background: black,
		Ops: []Op{
			Text{X: 4, Y: 4, S: "Hello, Tab5!", Color: white},
			Text{X: 4, Y: 24, S: "mono 0123", Style: imlib.TextStyle{Monospace: true, XSpacing: 1}, Color: yellow},
			Text{X: 4, Y: 44, S: "x2", Style: imlib.TextStyle{Scale: 2}, Color: green},
		},
	},
	{
		Name: "transforms", Width: 160, Height: 160, Background: black,
		Ops: []Op{
			Text{X: 80, Y: 80, S: "east", Color: white},
			Text{X: 80, Y: 80, S: "south", Style: imlib.TextStyle{StringRotation: 90}, Color: red},
			Text{X: 80, Y: 80, S: "west", Style: imlib.TextStyle{StringRotation: 180}, Color: green},
			Text{X: 80, Y: 80, S: "north", Style: imlib.TextStyle{StringRotation: 270}, Color: blue},
			Text{X: 4, Y: 4, S: "flip", Style: imlib.TextStyle{CharVFlip: true, CharHMirror: true}, Color: yellow},
		},
	},
	{
		Name: "multiline", Width: 120, Height: 64, Background: grey,
		Ops: []Op{
			Text{X: 6, Y: 4, S: "line one\nline two\r\nthree", Style: imlib.TextStyle{YSpacing: 2}, Color: black},
		},
	},
}
