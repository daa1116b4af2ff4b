/*
NAME
  blackbody.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import (
	"math"

	"github.com/ausocean/wavetracer/quantity"
)

const (
	planckH  = 6.62607015e-34 // J*s
	lightC   = 2.99792458e8   // m/s
	boltzmnK = 1.380649e-23   // J/K

	// blackbodySamples is the number of wavelength samples spanning the
	// requested range used to build the underlying tightly-sampled PWL.
	blackbodySamples = 512
)

// planckRadiance returns the spectral radiance of a blackbody at
// temperature T (kelvin) and wavelength lambda (metres), in W/(m^2*sr*m).
func planckRadiance(lambda, t float64) float64 {
	if lambda <= 0 || t <= 0 {
		return 0
	}
	c1 := 2 * planckH * lightC * lightC
	x := planckH * lightC / (lambda * boltzmnK * t)
	denom := math.Expm1(x)
	if denom <= 0 {
		return 0
	}
	return c1 / (math.Pow(lambda, 5) * denom)
}

// NewBlackbody builds a spectrum sampling Planck's law across
// wavelengthRange at blackbodySamples points, scaled by scale, and returns
// it as a PiecewiseLinear spectrum over the corresponding wavenumber
// range.
func NewBlackbody(t quantity.Temperature, wavelengthRange quantity.Range[quantity.Length], scale float64) *PiecewiseLinear {
	lambdaLo := float64(wavelengthRange.Min)
	lambdaHi := float64(wavelengthRange.Max)
	ks := make([]quantity.Wavenumber, blackbodySamples)
	vs := make([]float64, blackbodySamples)
	// Sample with increasing wavenumber, i.e. decreasing wavelength.
	for i := 0; i < blackbodySamples; i++ {
		frac := float64(i) / float64(blackbodySamples-1)
		lambda := lambdaHi - frac*(lambdaHi-lambdaLo)
		ks[i] = quantity.WavelengthToWavenumber(quantity.Length(lambda))
		vs[i] = scale * planckRadiance(lambda, float64(t))
	}
	return NewPiecewiseLinear(ks, vs)
}
