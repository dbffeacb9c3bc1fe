// Package fmath provides the approximate math helpers used by the raster core.
//
// The rounding helpers operate on float32 inputs and return int, matching
// the behaviour the integer rasterisers were tuned against: Floor rounds
// toward negative infinity, Round rounds half away from zero.
//
// Atan uses the Cephes single-precision polynomial; its absolute error is
// below 1e-6 rad, which is far below what the ellipse shear needs.
package fmath

import "math"

// Floor returns the greatest integer less than or equal to x.
func Floor(x float32) int {
	i := int(x)
	if x < 0 && x != float32(i) {
		return i - 1
	}
	return i
}

// Round rounds x half away from zero.
func Round(x float32) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return int(x - 0.5)
}

// Abs returns |x|.
func Abs(x float32) float32 {
	if x >= 0 {
		return x
	}
	return -x
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// IAbs returns |x| for integers.
func IAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Div returns a/b, or 0 when b is zero.
func Div(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

const (
	tan3pio8 = 2.414213562373095 // tan(3π/8)
	tanPio8  = 0.4142135623730950
)

// Atan returns the arctangent of x in radians.
func Atan(x float32) float32 {
	sign := float32(1)
	if x < 0 {
		sign = -1
		x = -x
	}

	var y float32
	switch {
	case x > tan3pio8:
		y = math.Pi / 2
		x = -(1 / x)
	case x > tanPio8:
		y = math.Pi / 4
		x = (x - 1) / (x + 1)
	}

	z := x * x
	y += (((8.05374449538e-2*z-1.38776856032e-1)*z+1.99777106478e-1)*z-3.33329491539e-1)*z*x + x
	return sign * y
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}

