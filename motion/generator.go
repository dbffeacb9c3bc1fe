package motion

// Type identifies a generator implementation.
type Type uint8

const (
	SpringType Type = iota
	EasingType
)

func (t Type) String() string {
	switch t {
	case SpringType:
		return "spring"
	case EasingType:
		return "easing"
	default:
		return "unknown"
	}
}

// Generator produces animation values over time.
//
// Next evaluates the generator at t seconds since the last Init or
// Retarget and reports whether it has settled. Once settled, Next returns
// true without changing Value until the next Init or Retarget.
type Generator interface {
	Init()
	Retarget(start, end float64)
	Next(t float64) bool
	Value() float64
	Done() bool
	Range() (start, end float64)
	Type() Type
}

var (
	_ Generator = (*Spring)(nil)
	_ Generator = (*EasingGenerator)(nil)
)
