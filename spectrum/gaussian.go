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

package spectrum

import (
	"math"

	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// Gaussian is a spectrum shaped as a (truncated) normal bump in wavenumber,
// e.g. a narrow-band LED or filter response.
type Gaussian struct {
	Mu, Sigma float64
	Scale     float64 // peak power scale.
	rng       quantity.WavenumberRange
	d         dist.TruncatedGaussian
}

// NewGaussian builds a Gaussian spectrum truncated to r, with peak value
// scale at the mode.
func NewGaussian(mu, sigma, scale float64, r quantity.WavenumberRange) *Gaussian {
	return &Gaussian{
		Mu: mu, Sigma: sigma, Scale: scale, rng: r,
		d: dist.TruncatedGaussian{Mu: mu, Sigma: sigma, Lo: float64(r.Min), Hi: float64(r.Max)},
	}
}

func (g *Gaussian) Value(k quantity.Wavenumber) float64 {
	if !g.rng.Contains(k) {
		return 0
	}
	x := float64(k)
	z := (x - g.Mu) / g.Sigma
	return g.Scale * math.Exp(-0.5*z*z)
}

func (g *Gaussian) Bounds() quantity.WavenumberRange { return g.rng }

func (g *Gaussian) Power() float64 { return g.PowerRange(g.rng) }

func (g *Gaussian) PowerRange(r quantity.WavenumberRange) float64 {
	ov := g.rng.Intersect(r)
	if ov.Empty() {
		return 0
	}
	return dist.IntegrateTrapezoid(gaussValueDist{g}, float64(ov.Min), float64(ov.Max), 512)
}

type gaussValueDist struct{ g *Gaussian }

func (v gaussValueDist) Kind() dist.Kind                       { return dist.KindGaussian }
func (v gaussValueDist) Bounds() (lo, hi float64)               { return float64(v.g.rng.Min), float64(v.g.rng.Max) }
func (v gaussValueDist) Sample(u float64) dist.Sample           { return dist.Sample{} }
func (v gaussValueDist) Pdf(x float64, m dist.Measure) float64 {
	if m != dist.Continuous {
		return 0
	}
	return v.g.Value(quantity.Wavenumber(x))
}

func (g *Gaussian) MeanWavenumber() float64 { return g.Mu }

func (g *Gaussian) Distribution() (dist.Distribution, bool) { return g.d, true }
