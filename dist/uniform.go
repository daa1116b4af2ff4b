/*
NAME
  uniform.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

// Uniform is the uniform distribution over [Lo, Hi].
type Uniform struct {
	Lo, Hi float64
}

// NewUniform builds a Uniform over [lo, hi]. Panics if hi <= lo: an empty
// or degenerate range is a construction-time programmer error, not a
// recoverable one.
func NewUniform(lo, hi float64) Uniform {
	if hi <= lo {
		panic("dist: Uniform requires hi > lo")
	}
	return Uniform{Lo: lo, Hi: hi}
}

func (u Uniform) Kind() Kind { return KindUniform }

func (u Uniform) Pdf(x float64, measure Measure) float64 {
	if measure != Continuous {
		return 0
	}
	if x < u.Lo || x > u.Hi {
		return 0
	}
	return 1 / (u.Hi - u.Lo)
}

func (u Uniform) Sample(r float64) Sample {
	x := u.Lo + r*(u.Hi-u.Lo)
	return Sample{X: x, Measure: Continuous, Pdf: u.Pdf(x, Continuous)}
}

func (u Uniform) Bounds() (lo, hi float64) { return u.Lo, u.Hi }
