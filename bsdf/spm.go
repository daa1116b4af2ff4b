/*
NAME
  spm.go

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
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/frame"
	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/spectrum"
)

const (
	spmLobeSpecular  = 0
	spmLobeScattered = 1
)

// SurfaceProfile describes a random rough surface's first-order
// small-perturbation scattering behaviour: a roughness-controlled
// angular spread for the scattered lobe, and whether the surface is
// smooth enough to be treated as delta-only.
type SurfaceProfile struct {
	// Roughness in (0,1]; larger values widen the scattered lobe and
	// divert more energy away from the specular delta lobe.
	Roughness float64
}

func (p SurfaceProfile) isDeltaOnly() bool { return p.Roughness <= 0 }

// scatterWeight is the 1st-order SPM fraction of reflected energy that
// diffracts into the scattered lobe rather than the specular one,
// increasing with roughness.
func (p SurfaceProfile) scatterWeight() float64 {
	return 1 - math.Exp(-4*p.Roughness)
}

// phongExponent maps roughness to a Phong-like cosine-power lobe
// exponent: smoother surfaces concentrate the scattered lobe tighter
// around the specular direction.
func (p SurfaceProfile) phongExponent() float64 {
	return math.Max(1, 2/(p.Roughness*p.Roughness)-2)
}

// SPM is a generic smooth-to-moderately-rough surface of arbitrary IOR,
// scattering formalised via first-order small-perturbation theory: a
// specular delta lobe plus a roughness-broadened scattered lobe.
type SPM struct {
	ExtIOR, IOR     spectrum.Real
	Profile         SurfaceProfile
	ReflectionScale spectrum.Real
	TransmitScale   spectrum.Real
}

func (s *SPM) iorRatio(k quantity.Wavenumber) float64 {
	return s.IOR.Value(k) / s.ExtIOR.Value(k)
}

func (s *SPM) reflScale(k quantity.Wavenumber) float64 {
	if s.ReflectionScale == nil {
		return 1
	}
	return s.ReflectionScale.Value(k)
}

func (s *SPM) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return frame.New(tangent.T, ns)
}

func (s *SPM) Albedo(k quantity.Wavenumber) (float64, bool) {
	fr := Fresnel(s.iorRatio(k), 1)
	return fr.UnpolarisedReflectance() * s.reflScale(k), true
}

func (s *SPM) Lobes(k quantity.Wavenumber) LobeMask {
	m := LobeMask(0).Set(spmLobeSpecular)
	if !s.Profile.isDeltaOnly() {
		m = m.Set(spmLobeScattered)
	}
	return m
}

func (s *SPM) IsDeltaOnly(k quantity.Wavenumber) bool { return s.Profile.isDeltaOnly() }
func (s *SPM) IsDeltaLobe(k quantity.Wavenumber, l int) bool {
	return l == spmLobeSpecular
}
func (s *SPM) NeedsInteractionFootprint() bool { return true }

// F evaluates only the non-delta scattered lobe: a normalised Phong-like
// cosine-power kernel around the mirror direction.
func (s *SPM) F(wi, wo r3.Vec, q Query) Result {
	if s.Profile.isDeltaOnly() || frame.CosTheta(wi) <= 0 || frame.CosTheta(wo) <= 0 {
		return Result{M: ZeroMueller()}
	}
	mirror := r3.Vec{X: -wi.X, Y: -wi.Y, Z: wi.Z}
	cosAlpha := math.Max(0, r3.Dot(mirror, wo))
	n := s.Profile.phongExponent()
	norm := (n + 2) / (2 * math.Pi)
	fr := Fresnel(s.iorRatio(q.K), frame.CosTheta(wi))
	kernel := norm * math.Pow(cosAlpha, n)
	val := fr.UnpolarisedReflectance() * s.reflScale(q.K) * s.Profile.scatterWeight() * kernel * frame.CosTheta(wo)
	return Result{M: ScalarMueller(val)}
}

func (s *SPM) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	if s.Profile.isDeltaOnly() || frame.CosTheta(wi) <= 0 || frame.CosTheta(wo) <= 0 {
		return 0
	}
	mirror := r3.Vec{X: -wi.X, Y: -wi.Y, Z: wi.Z}
	cosAlpha := math.Max(0, r3.Dot(mirror, wo))
	n := s.Profile.phongExponent()
	norm := (n + 1) / (2 * math.Pi)
	return quantity.SolidAngleDensity(norm * math.Pow(cosAlpha, n))
}

func (s *SPM) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	if frame.CosTheta(wi) <= 0 {
		return nil
	}
	fr := Fresnel(s.iorRatio(q.K), frame.CosTheta(wi))
	R := fr.UnpolarisedReflectance() * s.reflScale(q.K)

	pScattered := 0.0
	if !s.Profile.isDeltaOnly() {
		pScattered = s.Profile.scatterWeight()
	}

	mirror := r3.Vec{X: -wi.X, Y: -wi.Y, Z: wi.Z}
	if u.Next1D() >= pScattered {
		return &Sample{
			Wo:           mirror,
			Density:      0,
			Eta:          1,
			Lobe:         LobeMask(0).Set(spmLobeSpecular),
			WeightedBSDF: Result{M: ScalarMueller(R)},
		}
	}

	n := s.Profile.phongExponent()
	x, y := u.Next2D()
	cosAlpha := math.Pow(x, 1/(n+1))
	sinAlpha := math.Sqrt(math.Max(0, 1-cosAlpha*cosAlpha))
	phi := 2 * math.Pi * y
	local := r3.Vec{X: sinAlpha * math.Cos(phi), Y: sinAlpha * math.Sin(phi), Z: cosAlpha}
	lobeFrame := frame.FromNormal(mirror)
	wo := lobeFrame.ToWorld(local)
	if frame.CosTheta(wo) <= 0 {
		return nil
	}

	pdf := s.Pdf(wi, wo, q)
	if pdf <= 0 {
		return nil
	}
	f := s.F(wi, wo, q)
	val := f.M.MeanIntensity() / (float64(pdf) * pScattered)
	return &Sample{
		Wo:           wo,
		Density:      pdf,
		Eta:          1,
		Lobe:         LobeMask(0).Set(spmLobeScattered),
		WeightedBSDF: Result{M: ScalarMueller(val)},
	}
}

func (s *SPM) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	eta1 := s.ExtIOR.Value(k)
	eta2 := s.IOR.Value(k)
	if wi.Z >= 0 {
		return eta2 / eta1
	}
	return eta1 / eta2
}
