package motion

import "math"

const (
	subdivisionPrecision     = 1e-7
	subdivisionMaxIterations = 12
)

// CubicBezier is a CSS-style easing curve through (0,0) and (1,1) with
// control points (X1, Y1) and (X2, Y2). It is immutable and safe to share.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// NewCubicBezier returns the curve with the given control points.
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	return CubicBezier{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// calcBezier evaluates one coordinate of the curve at parameter t, given
// that coordinate of the two control points.
func calcBezier(t, a1, a2 float64) float64 {
	return (((1-3*a2+3*a1)*t+(3*a2-6*a1))*t + 3*a1) * t
}

// tForX bisects for the curve parameter whose x coordinate is x.
func (c CubicBezier) tForX(x float64) float64 {
	lo, hi := 0.0, 1.0
	var t, cur float64
	for i := 0; ; {
		t = lo + (hi-lo)/2
		cur = calcBezier(t, c.X1, c.X2) - x
		if cur > 0 {
			hi = t
		} else {
			lo = t
		}
		i++
		if math.Abs(cur) <= subdivisionPrecision || i >= subdivisionMaxIterations {
			return t
		}
	}
}

// Ease maps progress x in [0, 1] to eased progress. The endpoints map to
// themselves, and a curve whose control points lie on the diagonal is
// the identity.
func (c CubicBezier) Ease(x float64) float64 {
	if c.X1 == c.Y1 && c.X2 == c.Y2 {
		return x
	}
	if x == 0 || x == 1 {
		return x
	}
	return calcBezier(c.tForX(x), c.Y1, c.Y2)
}

// Func returns c.Ease as an EasingFunc.
func (c CubicBezier) Func() EasingFunc {
	return c.Ease
}
