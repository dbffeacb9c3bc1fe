package motion

import "math"

// maxHyperbolicArg caps the argument of sinh/cosh in the overdamped
// solution.
const maxHyperbolicArg = 300

// solution is the closed-form displacement of a spring for one damping
// regime.
type solution interface {
	value(t float64) float64
	regime() string
}

func newSolution(zeta, omega0, v0, start, end float64) solution {
	delta := end - start
	switch {
	case zeta < 1:
		return underdamped{
			end:    end,
			delta:  delta,
			v0:     v0,
			zeta:   zeta,
			omega0: omega0,
			omegaD: omega0 * math.Sqrt(1-zeta*zeta),
		}
	case zeta == 1:
		return criticallyDamped{end: end, delta: delta, v0: v0, omega0: omega0}
	default:
		return overdamped{
			end:    end,
			delta:  delta,
			v0:     v0,
			zeta:   zeta,
			omega0: omega0,
			omegaD: omega0 * math.Sqrt(zeta*zeta-1),
		}
	}
}

type underdamped struct {
	end, delta, v0       float64
	zeta, omega0, omegaD float64
}

func (u underdamped) value(t float64) float64 {
	envelope := math.Exp(-u.zeta * u.omega0 * t)
	sin, cos := math.Sincos(u.omegaD * t)
	return u.end - envelope*((u.v0+u.zeta*u.omega0*u.delta)/u.omegaD*sin+u.delta*cos)
}

func (underdamped) regime() string { return "underdamped" }

type criticallyDamped struct {
	end, delta, v0, omega0 float64
}

func (c criticallyDamped) value(t float64) float64 {
	return c.end - math.Exp(-c.omega0*t)*(c.delta+(c.v0+c.omega0*c.delta)*t)
}

func (criticallyDamped) regime() string { return "critical" }

type overdamped struct {
	end, delta, v0       float64
	zeta, omega0, omegaD float64
}

func (o overdamped) value(t float64) float64 {
	envelope := math.Exp(-o.zeta * o.omega0 * t)
	f := min(o.omegaD*t, maxHyperbolicArg)
	return o.end - envelope*((o.v0+o.zeta*o.omega0*o.delta)*math.Sinh(f)+o.omegaD*o.delta*math.Cosh(f))/o.omegaD
}

func (overdamped) regime() string { return "overdamped" }
