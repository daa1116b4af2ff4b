/*
NAME
  dist.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dist implements the 1-D distribution contract shared by spectra
// and sensor sampling: pdf/sample/tabulate over six closed-form and
// tabulated variants, plus the product-distribution algebra used to
// importance-sample wavelengths jointly against an emitter and a sensor.
package dist

import "gonum.org/v1/gonum/floats"

// Measure distinguishes a continuous density from a discrete (Dirac) one.
// A Dirac component reports continuous pdf 0 and discrete pdf +Inf at its
// atom; querying the "wrong" measure at a point always returns 0, never an
// error, so callers combining densities across mixed distributions don't
// need a type switch.
type Measure int

const (
	Continuous Measure = iota
	Discrete
)

// Kind identifies the concrete variant of a Distribution without a type
// switch or downcast, used by the product-distribution dispatch table.
type Kind int

const (
	KindUniform Kind = iota
	KindPiecewiseLinear
	KindBinnedPiecewiseLinear
	KindDiscrete
	KindGaussian
	KindTruncatedGaussian
)

// Sample is the result of drawing from a Distribution.
type Sample struct {
	X       float64
	Measure Measure
	Pdf     float64
}

// Distribution is the contract every 1-D distribution variant satisfies.
type Distribution interface {
	// Kind reports the concrete variant, for product-distribution dispatch.
	Kind() Kind
	// Pdf returns the density of x under the given measure.
	Pdf(x float64, measure Measure) float64
	// Sample draws a value using a uniform random number u in [0,1).
	Sample(u float64) Sample
	// Bounds returns the support of the distribution.
	Bounds() (lo, hi float64)
}

// Tabulate evaluates d.Pdf at n+1 equally spaced points across [lo,hi] and
// returns them; distributions with a discrete measure are tabulated at
// their continuous pdf only (always 0), matching the source's "continuous
// tabulation" contract. n must be >= 1.
func Tabulate(d Distribution, lo, hi float64, n int) []float64 {
	out := make([]float64, n+1)
	if n == 0 || hi <= lo {
		for i := range out {
			out[i] = d.Pdf(lo, Continuous)
		}
		return out
	}
	step := (hi - lo) / float64(n)
	for i := range out {
		out[i] = d.Pdf(lo+float64(i)*step, Continuous)
	}
	return out
}

// IntegrateTrapezoid approximates the integral of d.Pdf over [lo,hi] via
// the trapezoid rule with n subintervals.
func IntegrateTrapezoid(d Distribution, lo, hi float64, n int) float64 {
	ys := Tabulate(d, lo, hi, n)
	if len(ys) < 2 {
		return 0
	}
	step := (hi - lo) / float64(n)
	sum := 0.5*ys[0] + 0.5*ys[len(ys)-1]
	sum += floats.Sum(ys[1 : len(ys)-1])
	return sum * step
}
