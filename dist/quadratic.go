/*
NAME
  quadratic.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import "math"

// solveLinearPieceT inverts the integral of a linear segment spanning
// [0,dx] with endpoint heights y0,y1, returning the fraction t in [0,1]
// along the segment at which the cumulative mass from 0 reaches target.
// Uses the quadratic root formula and clamps the result to [0,1], the
// same defensive clamp the source applies to guard against rounding noise
// pushing t fractionally outside its valid range.
func solveLinearPieceT(y0, y1, dx, target float64) float64 {
	if dx <= 0 {
		return 0
	}
	slope := (y1 - y0) / dx
	a := slope / 2
	b := y0
	var s float64
	if math.Abs(a) < 1e-12*math.Max(1, math.Abs(b)) {
		// Degenerate to a constant-height segment: linear inverse.
		if b <= 0 {
			s = 0
		} else {
			s = target / b
		}
	} else {
		disc := b*b + 4*a*target
		if disc < 0 {
			disc = 0
		}
		s = (-b + math.Sqrt(disc)) / (2 * a)
	}
	t := s / dx
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// segmentMass is the trapezoid-rule integral of a linear segment of width
// dx with endpoint heights y0, y1.
func segmentMass(y0, y1, dx float64) float64 { return 0.5 * (y0 + y1) * dx }
