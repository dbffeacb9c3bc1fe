package imlib

import (
	"github.com/tab5ui/imlib/internal/clip"
	"github.com/tab5ui/imlib/internal/fmath"
)

// drawThinLine draws a one pixel wide antialiased segment with Bresenham's
// algorithm. The coverage weight of each pixel comes from the running
// error term normalised by the segment length.
func (img *Image) drawThinLine(x0, y0, x1, y1, c int) {
	dx, sx := fmath.IAbs(x1-x0), -1
	if x0 < x1 {
		sx = 1
	}
	dy, sy := fmath.IAbs(y1-y0), -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	ed := 1
	if dx+dy != 0 {
		ed = fmath.Floor(fmath.Sqrt(float32(dx*dx + dy*dy)))
	}

	for {
		img.SetPixelBlended(x0, y0, 256*fmath.IAbs(err-dx+dy)/ed, c)
		e2, x2 := err, x0
		if 2*e2 >= -dx {
			if x0 == x1 {
				break
			}
			if e2+dy < ed {
				img.SetPixelBlended(x0, y0+sy, 256*(e2+dy)/ed, c)
			}
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy {
			if y0 == y1 {
				break
			}
			if dx-e2 < ed {
				img.SetPixelBlended(x2+sx, y0, 256*(dx-e2)/ed, c)
			}
			err += dx
			y0 += sy
		}
	}
}

// DrawLine draws an antialiased segment from (x0, y0) to (x1, y1).
// The segment is clipped to the image first; thickness <= 1 draws a thin
// line, larger values sweep a run of pixels perpendicular to the major
// axis with antialiased ends.
func (img *Image) DrawLine(x0, y0, x1, y1, c, thickness int) {
	l := clip.Line{X1: x0, Y1: y0, X2: x1, Y2: y1}
	if !l.Clip(0, 0, img.Width, img.Height) {
		return
	}
	x0, y0, x1, y1 = l.X1, l.Y1, l.X2, l.Y2

	dx, sx := fmath.IAbs(x1-x0), -1
	if x0 < x1 {
		sx = 1
	}
	dy, sy := fmath.IAbs(y1-y0), -1
	if y0 < y1 {
		sy = 1
	}
	length := fmath.Floor(fmath.Sqrt(float32(dx*dx + dy*dy)))
	if thickness <= 1 || length == 0 {
		img.drawThinLine(x0, y0, x1, y1, c)
		return
	}

	// Scale the direction to 8.8 fixed point.
	dx = dx * 256 / length
	dy = dy * 256 / length
	th := 256 * (thickness - 1)

	if dx < dy {
		// Steep: walk rows, sweep columns.
		x1 = (length + th/2) / dy
		err := x1*dy - th/2
		for x0 -= x1 * sx; ; y0 += sy {
			x1 = x0
			img.SetPixelBlended(x1, y0, err, c)
			e2 := dy - err - th
			for ; e2+dy < 256; e2 += dy {
				x1 += sx
				img.SetPixel(x1, y0, c)
			}
			img.SetPixelBlended(x1+sx, y0, e2, c)
			if y0 == y1 {
				break
			}
			err += dx
			if err > 256 {
				err -= dy
				x0 += sx
			}
		}
		return
	}

	// Flat: walk columns, sweep rows.
	y1 = (length + th/2) / dx
	err := y1*dx - th/2
	for y0 -= y1 * sy; ; x0 += sx {
		y1 = y0
		img.SetPixelBlended(x0, y1, err, c)
		e2 := dx - err - th
		for ; e2+dx < 256; e2 += dx {
			y1 += sy
			img.SetPixel(x0, y1, c)
		}
		img.SetPixelBlended(x0, y1+sy, e2, c)
		if x0 == x1 {
			break
		}
		err += dy
		if err > 256 {
			err -= dx
			y0 += sy
		}
	}
}

// DrawArrow draws a line from (x0, y0) to (x1, y1) with a two-stroke head
// at (x1, y1). size is the length of each head stroke along the shaft.
func (img *Image) DrawArrow(x0, y0, x1, y1, c, thickness, size int) {
	dx := float32(x1 - x0)
	dy := float32(y1 - y0)
	length := fmath.Sqrt(dx*dx + dy*dy)

	ux := fmath.Div(dx, length)
	uy := fmath.Div(dy, length)
	vx, vy := -uy, ux

	s := float32(size)
	bx := float32(x1) - s*ux
	by := float32(y1) - s*uy
	a0x := fmath.Round(bx + s*vx*0.5)
	a0y := fmath.Round(by + s*vy*0.5)
	a1x := fmath.Round(bx - s*vx*0.5)
	a1y := fmath.Round(by - s*vy*0.5)

	img.DrawLine(x0, y0, x1, y1, c, thickness)
	img.DrawLine(x1, y1, a0x, a0y, c, thickness)
	img.DrawLine(x1, y1, a1x, a1y, c, thickness)
}
