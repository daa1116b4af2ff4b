/*
NAME
  fresnel.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bsdf

import "math"

// FresnelCoefficients holds the complex-valued reflection amplitudes for
// the s- and p-polarised components of an incident wave, plus the
// transmission amplitudes. Only the real dielectric case is modelled
// (no absorbing/conducting interfaces), so amplitudes are plain floats.
type FresnelCoefficients struct {
	Rs, Rp float64
	Ts, Tp float64
	// CosThetaT is the cosine of the transmitted ray's angle, or NaN
	// under total internal reflection.
	CosThetaT float64
}

// Fresnel computes the Fresnel reflection/transmission amplitudes for a
// dielectric interface with IOR ratio eta (= eta_transmitted/eta_incident)
// and incident local-frame direction wiLocal (z-up, pointing away from
// the surface towards the incident medium).
func Fresnel(eta float64, cosThetaI float64) FresnelCoefficients {
	// Orient so cosThetaI is the cosine on the incident side.
	entering := cosThetaI > 0
	if !entering {
		eta = 1 / eta
		cosThetaI = -cosThetaI
	}

	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		// Total internal reflection.
		return FresnelCoefficients{Rs: 1, Rp: 1, Ts: 0, Tp: 0, CosThetaT: math.NaN()}
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)

	rs := (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	rp := (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)
	ts := 1 + rs
	tp := 1 + rp

	return FresnelCoefficients{Rs: rs, Rp: rp, Ts: ts, Tp: tp, CosThetaT: cosThetaT}
}

// UnpolarisedReflectance is the scalar Fresnel reflectance averaged over
// polarisation states, (|rs|^2+|rp|^2)/2.
func (f FresnelCoefficients) UnpolarisedReflectance() float64 {
	return (f.Rs*f.Rs + f.Rp*f.Rp) / 2
}

// Refract computes the refracted local-frame direction for an incident
// local-frame direction wi (z-up) and IOR ratio eta, given the cosine of
// the transmitted angle already solved by Fresnel. ok is false under
// total internal reflection.
func Refract(wi [3]float64, eta, cosThetaT float64) (wt [3]float64, ok bool) {
	if math.IsNaN(cosThetaT) {
		return wt, false
	}
	cosThetaI := wi[2]
	sign := 1.0
	if cosThetaI < 0 {
		sign = -1.0
	}
	wt[0] = -wi[0] / eta
	wt[1] = -wi[1] / eta
	wt[2] = -sign * cosThetaT
	return wt, true
}
