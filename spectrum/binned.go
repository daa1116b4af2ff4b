/*
NAME
  binned.go

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

// BinnedPiecewiseLinear is a spectrum resampled onto an equal-width
// histogram with an O(1)-lookup inverse-CDF, for spectra built from dense,
// irregularly sampled measurement data.
type BinnedPiecewiseLinear struct {
	d   *dist.BinnedPiecewiseLinear
	raw float64
	rng quantity.WavenumberRange
}

// NewBinnedPiecewiseLinear builds a binned spectrum. minDx is a floor on
// the derived bin width; see dist.NewBinnedPiecewiseLinear.
func NewBinnedPiecewiseLinear(k []quantity.Wavenumber, v []float64, minDx float64) (*BinnedPiecewiseLinear, error) {
	xs := make([]float64, len(k))
	for i, kk := range k {
		xs[i] = float64(kk)
	}
	d, err := dist.NewBinnedPiecewiseLinear(xs, v, minDx, dist.DefaultICDFMultiplier)
	if err != nil {
		return nil, err
	}
	lo, hi := d.Bounds()
	return &BinnedPiecewiseLinear{d: d, raw: d.Integrate(lo, hi) * rawMass(d), rng: quantity.NewRange(quantity.Wavenumber(lo), quantity.Wavenumber(hi))}, nil
}

// rawMass recovers the binned distribution's unnormalized total mass.
func rawMass(d *dist.BinnedPiecewiseLinear) float64 {
	// d.total is not exported; reconstruct from Pdf * total == 1 identity
	// is unavailable without total, so BinnedPiecewiseLinear exposes it.
	return d.RawTotal()
}

func (b *BinnedPiecewiseLinear) Value(k quantity.Wavenumber) float64 {
	return b.d.Pdf(float64(k), dist.Continuous) * b.raw
}

func (b *BinnedPiecewiseLinear) Bounds() quantity.WavenumberRange { return b.rng }

func (b *BinnedPiecewiseLinear) Power() float64 { return b.raw }

func (b *BinnedPiecewiseLinear) PowerRange(r quantity.WavenumberRange) float64 {
	ov := b.rng.Intersect(r)
	if ov.Empty() {
		return 0
	}
	return b.d.Integrate(float64(ov.Min), float64(ov.Max)) * b.raw
}

func (b *BinnedPiecewiseLinear) MeanWavenumber() float64 {
	return (float64(b.rng.Min) + float64(b.rng.Max)) / 2
}

func (b *BinnedPiecewiseLinear) Distribution() (dist.Distribution, bool) { return b.d, true }
