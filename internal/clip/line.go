package clip

// Line is an integer segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 int
}

// Clip clips l against the pixel rectangle [x, x+w) × [y, y+h) using the
// Liang–Barsky parametric test. On success the endpoints are rewritten to
// the visible part of the segment and Clip returns true. When no part of the
// segment lies inside the rectangle, l is left unchanged and Clip returns
// false.
func (l *Line) Clip(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	xmin, ymin := x, y
	xmax, ymax := x+w-1, y+h-1

	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1

	p := [4]int{-dx, dx, -dy, dy}
	q := [4]int{l.X1 - xmin, xmax - l.X1, l.Y1 - ymin, ymax - l.Y1}

	t0, t1 := 0.0, 1.0
	for i := range 4 {
		if p[i] == 0 {
			// Parallel to this boundary: outside means no intersection.
			if q[i] < 0 {
				return false
			}
			continue
		}
		r := float64(q[i]) / float64(p[i])
		if p[i] < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
	}

	x1, y1 := l.X1, l.Y1
	if t0 > 0 {
		l.X1 = x1 + roundHalfAway(t0*float64(dx))
		l.Y1 = y1 + roundHalfAway(t0*float64(dy))
	}
	if t1 < 1 {
		l.X2 = x1 + roundHalfAway(t1*float64(dx))
		l.Y2 = y1 + roundHalfAway(t1*float64(dy))
	}

	l.X1 = clampInt(l.X1, xmin, xmax)
	l.Y1 = clampInt(l.Y1, ymin, ymax)
	l.X2 = clampInt(l.X2, xmin, xmax)
	l.Y2 = clampInt(l.Y2, ymin, ymax)
	return true
}

func roundHalfAway(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
