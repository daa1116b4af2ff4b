/*
NAME
  diffuse.go

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
	"github.com/ausocean/wavetracer/texture"
)

const lobeDiffuse = 0

// Diffuse is an idealised Lambertian interface: all light is diffusely
// scattered into the upper hemisphere, with no transmission.
type Diffuse struct {
	Reflectance *texture.Texture2D
}

func (d *Diffuse) reflAt(k quantity.Wavenumber) float64 {
	// The texture's mean value stands in for a proper per-wavenumber
	// spectral lookup until a spectral texture is bound.
	return d.Reflectance.Mean().R
}

func (d *Diffuse) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return frame.New(tangent.T, ns)
}

func (d *Diffuse) Albedo(k quantity.Wavenumber) (float64, bool) {
	return d.reflAt(k), true
}

func (d *Diffuse) Lobes(k quantity.Wavenumber) LobeMask {
	return LobeMask(0).Set(lobeDiffuse)
}

func (d *Diffuse) IsDeltaOnly(k quantity.Wavenumber) bool          { return false }
func (d *Diffuse) IsDeltaLobe(k quantity.Wavenumber, l int) bool   { return false }
func (d *Diffuse) NeedsInteractionFootprint() bool                 { return true }

func (d *Diffuse) F(wi, wo r3.Vec, q Query) Result {
	if frame.CosTheta(wi) <= 0 || frame.CosTheta(wo) <= 0 {
		return Result{M: ZeroMueller()}
	}
	refl := d.reflAt(q.K)
	// Lambertian BRDF rho/pi times the cosine foreshortening on wo.
	v := refl / math.Pi * frame.CosTheta(wo)
	return Result{M: ScalarMueller(v)}
}

func (d *Diffuse) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	if frame.CosTheta(wi) <= 0 {
		return nil
	}
	x, y := u.Next2D()
	wo := cosineSampleHemisphere(x, y)
	pdf := frame.CosTheta(wo) / math.Pi
	if pdf <= 0 {
		return nil
	}
	f := d.F(wi, wo, q)
	weighted := f
	weighted.M.Scale(1 / pdf)
	return &Sample{
		Wo:           wo,
		Density:      quantity.SolidAngleDensity(pdf),
		Eta:          1,
		Lobe:         LobeMask(0).Set(lobeDiffuse),
		WeightedBSDF: weighted,
	}
}

func (d *Diffuse) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	if frame.CosTheta(wi) <= 0 || frame.CosTheta(wo) <= 0 {
		return 0
	}
	return quantity.SolidAngleDensity(frame.CosTheta(wo) / math.Pi)
}

func (d *Diffuse) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 { return 1 }

// cosineSampleHemisphere draws a direction from the cosine-weighted
// hemisphere distribution via the Shirley-Chiu concentric disk mapping.
func cosineSampleHemisphere(u1, u2 float64) r3.Vec {
	x, y := concentricSampleDisk(u1, u2)
	z := math.Sqrt(math.Max(0, 1-x*x-y*y))
	return r3.Vec{X: x, Y: y, Z: z}
}

func concentricSampleDisk(u1, u2 float64) (float64, float64) {
	ox := 2*u1 - 1
	oy := 2*u2 - 1
	if ox == 0 && oy == 0 {
		return 0, 0
	}
	var r, theta float64
	if math.Abs(ox) > math.Abs(oy) {
		r = ox
		theta = math.Pi / 4 * (oy / ox)
	} else {
		r = oy
		theta = math.Pi/2 - math.Pi/4*(ox/oy)
	}
	return r * math.Cos(theta), r * math.Sin(theta)
}
