/*
NAME
  piecewise_linear.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import (
	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// PiecewiseLinear is a spectrum whose value interpolates linearly between
// sorted (k, value) control points.
type PiecewiseLinear struct {
	d     dist.PiecewiseLinear
	scale float64 // raw-sample total, so Value() returns the un-normalized sample height.
	rng   quantity.WavenumberRange
}

// NewPiecewiseLinear builds a PiecewiseLinear spectrum from sorted
// wavenumbers and non-negative values.
func NewPiecewiseLinear(k []quantity.Wavenumber, v []float64) *PiecewiseLinear {
	xs := make([]float64, len(k))
	for i, kk := range k {
		xs[i] = float64(kk)
	}
	d := dist.NewPiecewiseLinear(xs, v)
	return &PiecewiseLinear{d: d, rng: quantity.NewRange(k[0], k[len(k)-1])}
}

func (p *PiecewiseLinear) Value(k quantity.Wavenumber) float64 {
	return p.d.Pdf(float64(k), dist.Continuous) * p.Power()
}

func (p *PiecewiseLinear) Bounds() quantity.WavenumberRange { return p.rng }

func (p *PiecewiseLinear) Power() float64 {
	lo, hi := p.d.Bounds()
	return p.d.Integrate(lo, hi) * p.rawTotal()
}

func (p *PiecewiseLinear) rawTotal() float64 {
	// The PiecewiseLinear distribution normalizes internally; Integrate(lo,hi)
	// over the full support always returns 1, so the spectrum's actual raw
	// power is the distribution's cached unnormalized total, RawTotal.
	return p.d.RawTotal()
}

func (p *PiecewiseLinear) PowerRange(r quantity.WavenumberRange) float64 {
	ov := p.rng.Intersect(r)
	if ov.Empty() {
		return 0
	}
	return p.d.Integrate(float64(ov.Min), float64(ov.Max)) * p.rawTotal()
}

func (p *PiecewiseLinear) MeanWavenumber() float64 {
	return (float64(p.rng.Min) + float64(p.rng.Max)) / 2
}

func (p *PiecewiseLinear) Distribution() (dist.Distribution, bool) { return p.d, true }
