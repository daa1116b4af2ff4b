/*
NAME
  spectrum.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package spectrum implements real and complex spectra queryable by
// wavenumber: uniform, piecewise-linear, binned piecewise-linear, discrete,
// Gaussian, blackbody, RGB-uplift, composite and analytic variants, each
// optionally backed by a dist.Distribution for importance sampling.
package spectrum

import (
	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// Real is the contract every real-valued spectrum satisfies.
type Real interface {
	// Value returns f(k), the spectral value at wavenumber k.
	Value(k quantity.Wavenumber) float64
	// Bounds returns the spectrum's wavenumber domain.
	Bounds() quantity.WavenumberRange
	// Power returns the total power, integral of Value over Bounds().
	Power() float64
	// PowerRange returns the power over a sub-range (clipped to Bounds()).
	PowerRange(r quantity.WavenumberRange) float64
	// MeanWavenumber returns a representative wavenumber: the
	// power-weighted mean for Uniform and Discrete, the power-weighted
	// mean of the children's values for Composite, Mu for Gaussian
	// (truncation is ignored), and the midpoint of Bounds() for
	// PiecewiseLinear and the spectra built on it, BinnedPiecewiseLinear
	// and Analytic.
	MeanWavenumber() float64
	// Distribution returns the spectrum's associated sampling distribution,
	// if it has one. analytic and composite spectra have none.
	Distribution() (dist.Distribution, bool)
}

// Complex is the contract every complex-valued spectrum satisfies (e.g. a
// complex index of refraction as a function of wavenumber).
type Complex interface {
	Value(k quantity.Wavenumber) complex128
	Bounds() quantity.WavenumberRange
}

// asComplexReal adapts a Real spectrum into a Complex one whose imaginary
// part is always zero, the "reals are a sub-variant" relationship from the
// data model.
type asComplexReal struct{ Real }

func (a asComplexReal) Value(k quantity.Wavenumber) complex128 {
	return complex(a.Real.Value(k), 0)
}

// AsComplex wraps a real spectrum so it satisfies Complex.
func AsComplex(r Real) Complex { return asComplexReal{r} }

// distributionPowerRange integrates a dist.Distribution-backed spectrum's power
// via the distribution's own normalized mass over the query sub-range,
// scaled back up by the spectrum's total power.
func distributionPowerRange(d dist.Distribution, total float64, r quantity.WavenumberRange) float64 {
	type integrator interface {
		Integrate(lo, hi float64) float64
	}
	if in, ok := d.(integrator); ok {
		return total * in.Integrate(float64(r.Min), float64(r.Max))
	}
	return total * dist.IntegrateTrapezoid(d, float64(r.Min), float64(r.Max), 256)
}
