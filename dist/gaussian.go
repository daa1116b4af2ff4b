/*
NAME
  gaussian.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var inf = math.Inf(1)

// Gaussian is an analytic normal distribution, backed by
// gonum.org/v1/gonum/stat/distuv.Normal. A zero Sigma degenerates to a
// Dirac atom at Mu.
type Gaussian struct {
	Mu, Sigma float64
}

func (g Gaussian) Kind() Kind { return KindGaussian }

func (g Gaussian) normal() distuv.Normal { return distuv.Normal{Mu: g.Mu, Sigma: g.Sigma} }

func (g Gaussian) Bounds() (lo, hi float64) {
	if g.Sigma == 0 {
		return g.Mu, g.Mu
	}
	// +/- 8 sigma covers the distribution to well beyond double precision.
	return g.Mu - 8*g.Sigma, g.Mu + 8*g.Sigma
}

func (g Gaussian) Pdf(x float64, measure Measure) float64 {
	if g.Sigma == 0 {
		if measure == Discrete && x == g.Mu {
			return inf
		}
		return 0
	}
	if measure != Continuous {
		return 0
	}
	return g.normal().Prob(x)
}

func (g Gaussian) Sample(r float64) Sample {
	if g.Sigma == 0 {
		return Sample{X: g.Mu, Measure: Discrete, Pdf: inf}
	}
	x := g.normal().Quantile(r)
	return Sample{X: x, Measure: Continuous, Pdf: g.Pdf(x, Continuous)}
}
