/*
NAME
  dielectric.go

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

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/frame"
	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/spectrum"
)

const (
	lobeReflect = 0
	lobeRefract = 1
)

// Dielectric is a smooth dielectric interface: a single delta lobe for
// reflection and, unless TransmitScale is nil, a second delta lobe for
// refraction. Evaluates to zero everywhere except along those two
// directions, so F and Pdf are always zero.
type Dielectric struct {
	ExtIOR, IOR     spectrum.Real
	ReflectionScale spectrum.Real // may be nil, meaning unity
	TransmitScale   spectrum.Real // may be nil, meaning unity; nil forces reflect-only
}

func (d *Dielectric) iorRatio(k quantity.Wavenumber) float64 {
	eta1 := d.ExtIOR.Value(k)
	eta2 := d.IOR.Value(k)
	return eta2 / eta1
}

func (d *Dielectric) reflScale(k quantity.Wavenumber) float64 {
	if d.ReflectionScale == nil {
		return 1
	}
	return d.ReflectionScale.Value(k)
}

func (d *Dielectric) transScale(k quantity.Wavenumber) float64 {
	if d.TransmitScale == nil {
		return 0
	}
	return d.TransmitScale.Value(k)
}

func (d *Dielectric) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return frame.New(tangent.T, ns)
}

func (d *Dielectric) Albedo(k quantity.Wavenumber) (float64, bool) {
	fr := Fresnel(d.iorRatio(k), 1)
	return fr.UnpolarisedReflectance() * d.reflScale(k), true
}

func (d *Dielectric) Lobes(k quantity.Wavenumber) LobeMask {
	m := LobeMask(0).Set(lobeReflect)
	if d.hasTransmission() {
		m = m.Set(lobeRefract)
	}
	return m
}

func (d *Dielectric) hasTransmission() bool { return d.TransmitScale != nil }

func (d *Dielectric) IsDeltaOnly(k quantity.Wavenumber) bool        { return true }
func (d *Dielectric) IsDeltaLobe(k quantity.Wavenumber, l int) bool { return true }
func (d *Dielectric) NeedsInteractionFootprint() bool               { return false }

// F is zero: a smooth dielectric has no non-delta lobes.
func (d *Dielectric) F(wi, wo r3.Vec, q Query) Result {
	return Result{M: ZeroMueller()}
}

// Pdf is zero: a smooth dielectric has no non-delta lobes.
func (d *Dielectric) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity { return 0 }

func (d *Dielectric) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	eta := d.iorRatio(q.K)
	fr := Fresnel(eta, frame.CosTheta(wi))
	R := fr.UnpolarisedReflectance()

	canTransmit := d.hasTransmission() && !isNaNFloat(fr.CosThetaT)

	pr, pt := R, 0.0
	if canTransmit {
		pt = 1 - R
	} else {
		pr = 1
	}

	if u.Next1D() < pr {
		// Specular reflection: mirror about the normal.
		wo := r3.Vec{X: -wi.X, Y: -wi.Y, Z: wi.Z}
		val := fr.UnpolarisedReflectance() * d.reflScale(q.K)
		w := val / pr
		return &Sample{
			Wo:           wo,
			Density:      0,
			Eta:          1,
			Lobe:         LobeMask(0).Set(lobeReflect),
			WeightedBSDF: Result{M: ScalarMueller(w)},
		}
	}

	wiArr := [3]float64{wi.X, wi.Y, wi.Z}
	wtArr, ok := Refract(wiArr, eta, fr.CosThetaT)
	if !ok {
		return nil
	}
	wo := r3.Vec{X: wtArr[0], Y: wtArr[1], Z: wtArr[2]}
	val := (1 - R) * d.transScale(q.K)
	// Radiance scales by 1/eta^2 under refraction (non-symmetric transport).
	radianceScale := 1.0
	if q.Transport == TransportForward {
		radianceScale = 1 / (eta * eta)
	}
	w := val * radianceScale / pt
	return &Sample{
		Wo:           wo,
		Density:      0,
		Eta:          eta,
		Lobe:         LobeMask(0).Set(lobeRefract),
		WeightedBSDF: Result{M: ScalarMueller(w)},
	}
}

func (d *Dielectric) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	eta1 := d.ExtIOR.Value(k)
	eta2 := d.IOR.Value(k)
	if wi.Z >= 0 {
		return eta2 / eta1
	}
	return eta1 / eta2
}

func isNaNFloat(v float64) bool { return v != v }
