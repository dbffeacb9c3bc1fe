package imlib

import (
	"math"

	"github.com/tab5ui/imlib/internal/fmath"
)

// DrawEllipse draws an ellipse centred at (cx, cy) with radii rx and ry,
// rotated clockwise by rotation degrees. fill paints the interior;
// otherwise the outline is stamped with a disc of the given thickness.
func (img *Image) DrawEllipse(cx, cy, rx, ry, rotation, c, thickness int, fill bool) {
	r := rotation % 180
	if r < 0 {
		r += 180
	}
	img.drawRotatedEllipse(cx, cy, rx*2, ry*2, r, c, thickness, fill)
}

// drawRotatedEllipse expresses a rotated ellipse as an axis-aligned one in
// a vertically sheared space. Rotations are first folded into (-45, 45]
// by swapping axes.
func (img *Image) drawRotatedEllipse(x, y, xAxis, yAxis, rotation, c, thickness int, fill bool) {
	if xAxis <= 0 || yAxis <= 0 {
		return
	}
	switch {
	case xAxis == yAxis || rotation == 0:
		img.drawShearedEllipse(x, y, xAxis/2, yAxis/2, 1, 0, c, thickness, fill)
		return
	case rotation == 90:
		img.drawShearedEllipse(x, y, yAxis/2, xAxis/2, 1, 0, c, thickness, fill)
		return
	}

	if rotation > 90 {
		rotation -= 90
		xAxis, yAxis = yAxis, xAxis
	}
	if rotation > 45 {
		rotation -= 90
		xAxis, yAxis = yAxis, xAxis
	}

	rad := float64(fmath.DegToRad(float32(rotation)))
	sinR, cosR := math.Sincos(rad)
	a, b := float64(xAxis), float64(yAxis)

	theta := float64(fmath.Atan(float32(b / a * -math.Tan(rad))))
	sinT, cosT := math.Sincos(theta)

	shearDx := float32(a*cosT*cosR - b*sinT*sinR)
	shearDy := float32(a*cosT*sinR + b*sinT*cosR)
	shearXAxis := fmath.Abs(shearDx)
	shearYAxis := fmath.Div(float32(xAxis*yAxis), shearXAxis)

	img.drawShearedEllipse(x, y,
		fmath.Floor(shearXAxis/2), fmath.Floor(shearYAxis/2),
		shearDx, shearDy, c, thickness, fill)
}

// drawShearedEllipse runs the two-region midpoint ellipse algorithm for
// semi-axes width and height, displacing column dx by dx*shearDy/shearDx.
func (img *Image) drawShearedEllipse(x0, y0, width, height int, shearDx, shearDy float32, c, thickness int, fill bool) {
	if (thickness <= 0 && !fill) || shearDx == 0 {
		return
	}
	t0 := thickness / 2
	t1 := (thickness - 1) / 2

	shift := func(dx int) int {
		return fmath.Floor(float32(dx) * shearDy / shearDx)
	}
	plot := func(x, y int) {
		if fill {
			img.vLine(x0+x, y0+shift(x)-y, y0+shift(x)+y, c)
			img.vLine(x0-x, y0+shift(-x)-y, y0+shift(-x)+y, c)
			return
		}
		img.stampDisc(x0+x, y0+y+shift(x), -t0, t1, c)
		img.stampDisc(x0-x, y0+y+shift(-x), -t0, t1, c)
		img.stampDisc(x0+x, y0-y+shift(x), -t0, t1, c)
		img.stampDisc(x0-x, y0-y+shift(-x), -t0, t1, c)
	}

	a2 := width * width
	b2 := height * height

	x, y := 0, height
	sigma := 2*b2 + a2*(1-2*height)
	for b2*x <= a2*y {
		plot(x, y)
		if sigma >= 0 {
			sigma += 4 * a2 * (1 - y)
			y--
		}
		sigma += b2 * (4*x + 6)
		x++
	}

	x, y = width, 0
	sigma = 2*a2 + b2*(1-2*width)
	for a2*y <= b2*x {
		plot(x, y)
		if sigma >= 0 {
			sigma += 4 * b2 * (1 - x)
			x--
		}
		sigma += a2 * (4*y + 6)
		y++
	}
}

// stampDisc sets the pixels of the square [r0, r1]² around (cx, cy) that
// lie within radius |r0|.
func (img *Image) stampDisc(cx, cy, r0, r1, c int) {
	for y := r0; y <= r1; y++ {
		for x := r0; x <= r1; x++ {
			if x*x+y*y <= r0*r0 {
				img.SetPixel(cx+x, cy+y, c)
			}
		}
	}
}
