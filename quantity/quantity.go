/*
NAME
  quantity.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package quantity provides unit-tagged scalar types for the renderer's math
// foundation: lengths, wavenumbers, radiant flux and the handful of derived
// quantities the spectral and radiometric code needs. Each type is a named
// float64 so the compiler catches unit mistakes (passing a wavelength where
// a wavenumber is expected) without the runtime cost of a wrapper struct.
package quantity

import "math"

// TwoPi is 2*pi, the constant relating wavelength to wavenumber.
const TwoPi = 2 * math.Pi

// Length is a distance in metres.
type Length float64

// Wavenumber is k = 2*pi/lambda, in units of 1/millimetre.
type Wavenumber float64

// RadiantFlux is radiant power in watts.
type RadiantFlux float64

// SolidAngleDensity is a probability density with respect to solid angle,
// in units of 1/steradian.
type SolidAngleDensity float64

// Temperature is a thermodynamic temperature in kelvin.
type Temperature float64

// Density is a generic 1-D probability density, dimensionless with respect
// to whatever measure it was sampled against.
type Density float64

// WavelengthToWavenumber converts a wavelength in metres to a wavenumber in
// 1/mm. lambda must be strictly positive.
func WavelengthToWavenumber(lambda Length) Wavenumber {
	return Wavenumber(TwoPi / (float64(lambda) * 1e3))
}

// WavenumberToWavelength is the inverse of WavelengthToWavenumber.
func WavenumberToWavelength(k Wavenumber) Length {
	return Length(TwoPi / (float64(k) * 1e3))
}

// NanometresToWavenumber converts a wavelength given in nanometres, the
// convention used by spectral tables such as the RGB uplift basis, to a
// wavenumber in 1/mm.
func NanometresToWavenumber(nm float64) Wavenumber {
	return WavelengthToWavenumber(Length(nm * 1e-9))
}

// WavenumberToNanometres is the inverse of NanometresToWavenumber.
func WavenumberToNanometres(k Wavenumber) float64 {
	return float64(WavenumberToWavelength(k)) * 1e9
}
