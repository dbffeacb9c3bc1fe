package motion

import "math"

// velocityStep is the time step of the finite-difference velocity estimate.
const velocityStep = 1e-5

// SpringOptions configures a Spring.
type SpringOptions struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// Velocity is the initial velocity in the solver's sign convention:
	// positive values pull toward Start.
	Velocity float64
	// RestSpeed and RestDelta are the settle thresholds on |velocity| and
	// |End-Value|.
	RestSpeed float64
	RestDelta float64
	// Duration (milliseconds) and VisualDuration (seconds) derive
	// Stiffness and Damping from Bounce when either is positive.
	Duration       float64
	Bounce         float64
	VisualDuration float64
}

// DefaultSpringOptions returns the default spring: stiffness 100, damping
// 10, mass 1, rest thresholds 0.1, bounce 0.3.
func DefaultSpringOptions() SpringOptions {
	return SpringOptions{
		Stiffness: 100,
		Damping:   10,
		Mass:      1,
		RestSpeed: 0.1,
		RestDelta: 0.1,
		Bounce:    0.3,
	}
}

// Spring animates a value with a damped harmonic oscillator evaluated in
// closed form.
type Spring struct {
	Start, End float64
	Options    SpringOptions

	value    float64
	velocity float64
	zeta     float64
	omega0   float64
	done     bool
	sol      solution
}

// NewSpring returns a spring from start to end with DefaultSpringOptions.
func NewSpring(start, end float64) *Spring {
	return &Spring{Start: start, End: end, Options: DefaultSpringOptions()}
}

// SetSpringOptions derives stiffness and damping from a perceptual
// description. duration is in milliseconds and visualDuration in seconds;
// a positive visualDuration takes precedence. bounce is clamped to
// [0.05, 1] and mass is reset to 1.
func (s *Spring) SetSpringOptions(duration, bounce, visualDuration float64) {
	o := &s.Options
	o.Mass = 1
	bounce = max(0.05, min(bounce, 1))

	if visualDuration > 0 {
		root := 2 * math.Pi / (visualDuration * 1.2)
		o.Stiffness = root * root
	} else {
		sec := duration / 1000
		o.Stiffness = 36 / sec / sec
	}
	o.Damping = 2 * (1 - bounce) * math.Sqrt(o.Stiffness*o.Mass)
}

// Init resets the spring to Start and resolves the damping regime.
func (s *Spring) Init() {
	s.done = false
	s.value = s.Start

	o := &s.Options
	if o.Duration > 0 || o.VisualDuration > 0 {
		s.SetSpringOptions(o.Duration, o.Bounce, o.VisualDuration)
	}

	s.omega0 = math.Sqrt(o.Stiffness / o.Mass)
	s.zeta = o.Damping / (2 * math.Sqrt(o.Stiffness*o.Mass))
	s.sol = newSolution(s.zeta, s.omega0, o.Velocity, s.Start, s.End)

	Logger().Debug("motion: spring init",
		"regime", s.sol.regime(),
		"zeta", s.zeta,
		"omega0", s.omega0)
}

// Retarget restarts the spring from start toward end, carrying over the
// current velocity.
func (s *Spring) Retarget(start, end float64) {
	s.Options.Velocity = -s.velocity
	s.Start = start
	s.End = end
	s.Init()
}

// Next evaluates the spring at t seconds and reports whether it has come
// to rest. The spring is initialised on first use.
func (s *Spring) Next(t float64) bool {
	if s.done {
		return true
	}
	if s.sol == nil {
		s.Init()
	}

	s.value = s.sol.value(t)
	s.velocity = (s.sol.value(t+velocityStep) - s.value) / velocityStep

	slow := math.Abs(s.velocity) <= s.Options.RestSpeed
	near := math.Abs(s.End-s.value) <= s.Options.RestDelta
	s.done = slow && near
	return s.done
}

// Value returns the value computed by the last Next.
func (s *Spring) Value() float64 { return s.value }

// Done reports whether the spring has settled.
func (s *Spring) Done() bool { return s.done }

// Velocity returns the velocity estimated by the last Next, in units per
// second.
func (s *Spring) Velocity() float64 { return s.velocity }

// DampingRatio returns ζ as resolved by the last Init.
func (s *Spring) DampingRatio() float64 { return s.zeta }

// Range returns the current start and end values.
func (s *Spring) Range() (start, end float64) { return s.Start, s.End }

// Type returns SpringType.
func (s *Spring) Type() Type { return SpringType }
