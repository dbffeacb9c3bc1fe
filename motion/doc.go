// Package motion provides keyframe generators for UI animation.
//
// A generator maps elapsed time in seconds to a value moving from Start to
// End and reports when it has settled. Two generators are provided:
//
//   - [Spring]: a closed-form damped harmonic oscillator, configured either
//     physically (stiffness, damping, mass) or perceptually (duration and
//     bounce).
//   - [EasingGenerator]: a fixed-duration tween shaped by an easing curve
//     such as a [CubicBezier].
//
// [Animate] drives a generator from wall-clock timestamps and adds delay,
// repeat and pause handling.
//
//	s := motion.NewSpring(0, 100)
//	s.SetSpringOptions(600, 0.25, 0)
//	for t := 0.0; !s.Next(t); t += 1.0 / 60 {
//	    draw(s.Value())
//	}
//
// Generators are not safe for concurrent use.
package motion
