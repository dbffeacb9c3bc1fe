package motion

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(float64) float64

// CSS timing functions.
var (
	Linear    = NewCubicBezier(0, 0, 1, 1)
	Ease      = NewCubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = NewCubicBezier(0.42, 0, 1, 1)
	EaseOut   = NewCubicBezier(0, 0, 0.58, 1)
	EaseInOut = NewCubicBezier(0.42, 0, 0.58, 1)
)
