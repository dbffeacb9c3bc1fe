package imlib

import "github.com/tab5ui/imlib/internal/fmath"

// DrawCircle draws a circle of radius r centred at (cx, cy).
// fill paints the disc. Otherwise thickness 1 draws an antialiased ring and
// larger values draw a solid band with antialiased edges. A zero radius
// sets only the centre.
func (img *Image) DrawCircle(cx, cy, r, c, thickness int, fill bool) {
	if r == 0 && (fill || thickness > 0) {
		img.SetPixel(cx, cy, c)
		return
	}
	if r <= 0 || (!fill && thickness <= 0) {
		return
	}
	if fill || thickness == 1 {
		img.drawCircleAA(cx, cy, r+max(thickness, 0)/2, c, fill)
		return
	}

	t0 := thickness / 2
	t1 := (thickness - 1) / 2
	xo := r + t0
	xi := max(r-t1, 0)
	inner := xi
	y := 0
	erro := 1 - xo
	erri := 1 - xi

	for xo >= y {
		img.hLine(cx+xi, cx+xo, cy+y, c)
		img.vLine(cx+y, cy+xi, cy+xo, c)
		img.hLine(cx-xo, cx-xi, cy+y, c)
		img.vLine(cx-y, cy+xi, cy+xo, c)
		img.hLine(cx-xo, cx-xi, cy-y, c)
		img.vLine(cx-y, cy-xo, cy-xi, c)
		img.hLine(cx+xi, cx+xo, cy-y, c)
		img.vLine(cx+y, cy-xo, cy-xi, c)

		y++

		if erro < 0 {
			erro += 2*y + 1
		} else {
			xo--
			erro += 2 * (y - xo + 1)
		}

		if y > inner {
			xi = y
		} else if erri < 0 {
			erri += 2*y + 1
		} else {
			xi--
			erri += 2 * (y - xi + 1)
		}
	}

	img.drawCircleAA(cx, cy, r+t0, c, false)
	img.drawCircleAA(cx, cy, inner, c, false)
}

// drawCircleAA draws an antialiased circle with Zingl's midpoint
// algorithm, walking one octant pair and mirroring into all quadrants.
// With fill the interior spans are painted solid.
func (img *Image) drawCircleAA(cx, cy, r, c int, fill bool) {
	x, y := r, 0
	err := 2 - 2*r
	r = 1 - err

	for {
		i := 256 * fmath.IAbs(err+2*(x+y)-2) / r
		img.SetPixelBlended(cx+x, cy-y, i, c)
		img.SetPixelBlended(cx+y, cy+x, i, c)
		img.SetPixelBlended(cx-x, cy+y, i, c)
		img.SetPixelBlended(cx-y, cy-x, i, c)

		if fill {
			img.hLine(cx, cx+x-1, cy-y, c)
			img.vLine(cx+y, cy, cy+x-1, c)
			img.hLine(cx-x+1, cx, cy+y, c)
			img.vLine(cx-y, cy-x+1, cy, c)
		}

		if x == 0 {
			break
		}

		e2, x2 := err, x

		if err > y {
			i = 256 * (err + 2*x - 1) / r
			if i < 256 {
				img.SetPixelBlended(cx+x, cy-y+1, i, c)
				img.SetPixelBlended(cx+y-1, cy+x, i, c)
				img.SetPixelBlended(cx-x, cy+y-1, i, c)
				img.SetPixelBlended(cx-y+1, cy-x, i, c)
			}
			x--
			err -= 2*x - 1
		}

		stepY := e2 <= x2
		x2--
		if stepY {
			if !fill {
				i = 256 * (1 - 2*y - e2) / r
				if i < 256 {
					img.SetPixelBlended(cx+x2, cy-y, i, c)
					img.SetPixelBlended(cx+y, cy+x2, i, c)
					img.SetPixelBlended(cx-x2, cy+y, i, c)
					img.SetPixelBlended(cx-y, cy-x2, i, c)
				}
			}
			y--
			err -= 2*y - 1
		}
	}
}
