package motion

import "time"

// RepeatType selects how a repeating animation restarts.
type RepeatType uint8

const (
	// Loop restarts each repetition from the start value.
	Loop RepeatType = iota
	// Reverse plays back toward the start value, alternating direction.
	Reverse
)

// RepeatForever makes an animation repeat until stopped.
const RepeatForever = -1

// AnimateOption configures an Animate during creation.
type AnimateOption func(*Animate)

// WithDelay postpones the first frame by d after Start.
func WithDelay(d time.Duration) AnimateOption {
	return func(a *Animate) {
		a.delay = d
	}
}

// WithRepeat plays the animation n more times after the first run.
// Use RepeatForever to repeat indefinitely.
func WithRepeat(n int) AnimateOption {
	return func(a *Animate) {
		a.repeat = n
	}
}

// WithRepeatType selects Loop or Reverse repetition.
func WithRepeatType(rt RepeatType) AnimateOption {
	return func(a *Animate) {
		a.repeatType = rt
	}
}

// WithOnUpdate registers a callback invoked with every new value.
func WithOnUpdate(fn func(float64)) AnimateOption {
	return func(a *Animate) {
		a.onUpdate = fn
	}
}

// WithOnComplete registers a callback invoked once when the animation
// finishes its last repetition.
func WithOnComplete(fn func()) AnimateOption {
	return func(a *Animate) {
		a.onComplete = fn
	}
}

type animState uint8

const (
	stateIdle animState = iota
	statePlaying
	statePaused
	stateFinished
)

// Animate drives a Generator from caller-supplied timestamps. Timestamps
// are durations since any fixed epoch, typically a monotonic clock.
type Animate struct {
	gen        Generator
	delay      time.Duration
	repeat     int
	repeatType RepeatType
	onUpdate   func(float64)
	onComplete func()

	state     animState
	origin    time.Duration // time at which the generator's t is zero
	pausedAt  time.Duration
	iteration int
}

// NewAnimate returns an idle animation driving gen.
func NewAnimate(gen Generator, opts ...AnimateOption) *Animate {
	a := &Animate{gen: gen}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initialises the generator and begins playback at now plus the
// configured delay.
func (a *Animate) Start(now time.Duration) {
	a.gen.Init()
	a.origin = now + a.delay
	a.iteration = 0
	a.state = statePlaying
	Logger().Debug("motion: animation start", "type", a.gen.Type(), "delay", a.delay)
}

// Update advances the animation to now and reports whether it has
// finished. Before Start, during the delay and while paused it does not
// touch the generator.
func (a *Animate) Update(now time.Duration) bool {
	if a.state != statePlaying {
		return a.state == stateFinished
	}
	if now < a.origin {
		return false
	}

	settled := a.gen.Next((now - a.origin).Seconds())
	if a.onUpdate != nil {
		a.onUpdate(a.gen.Value())
	}
	if !settled {
		return false
	}

	if a.repeat == RepeatForever || a.iteration < a.repeat {
		a.iteration++
		start, end := a.gen.Range()
		if a.repeatType == Reverse {
			a.gen.Retarget(end, start)
		} else {
			a.gen.Init()
		}
		a.origin = now
		return false
	}

	a.state = stateFinished
	if a.onComplete != nil {
		a.onComplete()
	}
	return true
}

// Retarget redirects the animation from its current value toward end,
// restarting the clock at now. A finished animation resumes playing; an
// idle one starts from its generator's start value.
func (a *Animate) Retarget(end float64, now time.Duration) {
	from := a.gen.Value()
	if a.state == stateIdle {
		from, _ = a.gen.Range()
	}
	a.gen.Retarget(from, end)
	a.origin = now
	if a.state == stateFinished || a.state == stateIdle {
		a.state = statePlaying
		a.iteration = 0
	}
}

// Pause freezes the animation at now.
func (a *Animate) Pause(now time.Duration) {
	if a.state != statePlaying {
		return
	}
	a.state = statePaused
	a.pausedAt = now
}

// Resume continues a paused animation, shifting its clock by the time
// spent paused.
func (a *Animate) Resume(now time.Duration) {
	if a.state != statePaused {
		return
	}
	a.origin += now - a.pausedAt
	a.state = statePlaying
}

// Value returns the generator's current value.
func (a *Animate) Value() float64 { return a.gen.Value() }

// Done reports whether the animation has finished.
func (a *Animate) Done() bool { return a.state == stateFinished }

// Iteration returns the number of completed repetitions.
func (a *Animate) Iteration() int { return a.iteration }
