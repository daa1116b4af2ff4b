/*
NAME
  truncated_gaussian.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import "gonum.org/v1/gonum/stat/distuv"

// TruncatedGaussian is a normal distribution restricted to [Lo, Hi] and
// renormalized, supporting one- or two-sided truncation (use -Inf/+Inf for
// an unbounded side). A zero Sigma degenerates to a Dirac atom at Mu,
// provided Mu lies within [Lo, Hi].
type TruncatedGaussian struct {
	Mu, Sigma float64
	Lo, Hi    float64
}

func (t TruncatedGaussian) Kind() Kind { return KindTruncatedGaussian }

func (t TruncatedGaussian) normal() distuv.Normal { return distuv.Normal{Mu: t.Mu, Sigma: t.Sigma} }

func (t TruncatedGaussian) Bounds() (lo, hi float64) { return t.Lo, t.Hi }

// z returns the normalization constant CDF(Hi) - CDF(Lo) of the
// untruncated normal over the truncation range, computed once per query
// via gonum's normal CDF (effectively the erf LUT the source precomputes).
func (t TruncatedGaussian) z() float64 { return t.normal().CDF(t.Hi) - t.normal().CDF(t.Lo) }

func (t TruncatedGaussian) Pdf(x float64, measure Measure) float64 {
	if t.Sigma == 0 {
		if measure == Discrete && x == t.Mu && x >= t.Lo && x <= t.Hi {
			return inf
		}
		return 0
	}
	if measure != Continuous || x < t.Lo || x > t.Hi {
		return 0
	}
	z := t.z()
	if z <= 0 {
		return 0
	}
	return t.normal().Prob(x) / z
}

func (t TruncatedGaussian) Sample(r float64) Sample {
	if t.Sigma == 0 {
		return Sample{X: t.Mu, Measure: Discrete, Pdf: inf}
	}
	n := t.normal()
	loCDF := n.CDF(t.Lo)
	hiCDF := n.CDF(t.Hi)
	p := loCDF + r*(hiCDF-loCDF)
	x := n.Quantile(p)
	if x < t.Lo {
		x = t.Lo
	}
	if x > t.Hi {
		x = t.Hi
	}
	return Sample{X: x, Measure: Continuous, Pdf: t.Pdf(x, Continuous)}
}
