package motion

import "testing"

func TestCubicBezierEndpoints(t *testing.T) {
	for _, c := range []CubicBezier{Linear, Ease, EaseIn, EaseOut, EaseInOut, NewCubicBezier(0.7, -0.4, 0.3, 1.4)} {
		if got := c.Ease(0); got != 0 {
			t.Errorf("%+v.Ease(0) = %v, want 0", c, got)
		}
		if got := c.Ease(1); got != 1 {
			t.Errorf("%+v.Ease(1) = %v, want 1", c, got)
		}
	}
}

func TestCubicBezierLinearIdentity(t *testing.T) {
	diag := NewCubicBezier(0.3, 0.3, 0.8, 0.8)
	for x := 0.0; x <= 1; x += 0.05 {
		if got := Linear.Ease(x); got != x {
			t.Errorf("Linear.Ease(%v) = %v", x, got)
		}
		if got := diag.Ease(x); got != x {
			t.Errorf("diagonal.Ease(%v) = %v", x, got)
		}
	}
}

func TestCubicBezierPresetsMonotone(t *testing.T) {
	presets := map[string]CubicBezier{
		"ease":        Ease,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	}
	for name, c := range presets {
		t.Run(name, func(t *testing.T) {
			prev := 0.0
			for i := 1; i <= 100; i++ {
				got := c.Ease(float64(i) / 100)
				if got < prev-1e-3 {
					t.Fatalf("Ease(%v) = %v, below previous %v", float64(i)/100, got, prev)
				}
				prev = got
			}
		})
	}
}

func TestCubicBezierShape(t *testing.T) {
	if got := EaseInOut.Ease(0.5); !approx(got, 0.5, 1e-3) {
		t.Errorf("EaseInOut.Ease(0.5) = %v, want 0.5", got)
	}
	if got := EaseIn.Ease(0.25); got >= 0.25 {
		t.Errorf("EaseIn.Ease(0.25) = %v, want below 0.25", got)
	}
	if got := EaseOut.Ease(0.25); got <= 0.25 {
		t.Errorf("EaseOut.Ease(0.25) = %v, want above 0.25", got)
	}
	// CSS reference value for ease at 50%.
	if got := Ease.Ease(0.5); !approx(got, 0.8024, 2e-3) {
		t.Errorf("Ease.Ease(0.5) = %v, want ~0.8024", got)
	}
}

func TestCubicBezierFunc(t *testing.T) {
	f := EaseOut.Func()
	if f(0.3) != EaseOut.Ease(0.3) {
		t.Error("Func() should evaluate the same curve as Ease")
	}
}

func BenchmarkCubicBezierEase(b *testing.B) {
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		_ = EaseInOut.Ease(x)
		x += 0.001
		if x > 1 {
			x = 0
		}
	}
}
