package motion

// EasingGenerator tweens from Start to End over Duration seconds, shaped
// by Ease.
type EasingGenerator struct {
	Start, End float64
	Duration   float64
	// Ease shapes progress; nil means linear.
	Ease EasingFunc

	value float64
	done  bool
}

// NewEasingGenerator returns a tween from start to end lasting duration
// seconds.
func NewEasingGenerator(start, end, duration float64, ease EasingFunc) *EasingGenerator {
	return &EasingGenerator{Start: start, End: end, Duration: duration, Ease: ease}
}

// Init resets the tween to Start.
func (g *EasingGenerator) Init() {
	g.done = false
	g.value = g.Start
}

// Retarget restarts the tween from start toward end.
func (g *EasingGenerator) Retarget(start, end float64) {
	g.Start = start
	g.End = end
	g.Init()
}

// Next evaluates the tween at t seconds and reports whether t has reached
// Duration.
func (g *EasingGenerator) Next(t float64) bool {
	if g.done {
		return true
	}
	p := 1.0
	if g.Duration > 0 {
		p = max(0, min(t/g.Duration, 1))
	}
	if g.Ease != nil {
		p = g.Ease(p)
	}
	g.value = g.Start + (g.End-g.Start)*p
	g.done = t >= g.Duration
	return g.done
}

// Value returns the value computed by the last Next.
func (g *EasingGenerator) Value() float64 { return g.value }

// Done reports whether the tween has finished.
func (g *EasingGenerator) Done() bool { return g.done }

// Range returns the current start and end values.
func (g *EasingGenerator) Range() (start, end float64) { return g.Start, g.End }

// Type returns EasingType.
func (g *EasingGenerator) Type() Type { return EasingType }
