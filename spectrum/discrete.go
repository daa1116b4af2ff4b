/*
NAME
  discrete.go

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

// Discrete is a spectral line series: a sum of Dirac components at fixed
// wavenumbers, e.g. a laser or a narrow-band emission spectrum.
type Discrete struct {
	d   *dist.Discrete
	rng quantity.WavenumberRange
}

// NewDiscrete builds a Discrete spectrum from line positions and powers.
func NewDiscrete(k []quantity.Wavenumber, power []float64) *Discrete {
	xs := make([]float64, len(k))
	for i, kk := range k {
		xs[i] = float64(kk)
	}
	d := dist.NewDiscrete(xs, power)
	lo, hi := d.Bounds()
	return &Discrete{d: d, rng: quantity.NewRange(quantity.Wavenumber(lo), quantity.Wavenumber(hi))}
}

// Value returns the line's power if k exactly matches a line position,
// else 0. Spectral lines have no continuous density.
func (s *Discrete) Value(k quantity.Wavenumber) float64 {
	xs, pmf := s.d.Atoms()
	for i, x := range xs {
		if x == float64(k) {
			return pmf[i] * s.Power()
		}
	}
	return 0
}

func (s *Discrete) Bounds() quantity.WavenumberRange { return s.rng }

func (s *Discrete) Power() float64 { return s.d.RawTotal() }

func (s *Discrete) PowerRange(r quantity.WavenumberRange) float64 {
	xs, pmf := s.d.Atoms()
	sum := 0.0
	for i, x := range xs {
		if r.Contains(quantity.Wavenumber(x)) {
			sum += pmf[i]
		}
	}
	return sum * s.Power()
}

func (s *Discrete) MeanWavenumber() float64 {
	xs, pmf := s.d.Atoms()
	m := 0.0
	for i, x := range xs {
		m += x * pmf[i]
	}
	return m
}

func (s *Discrete) Distribution() (dist.Distribution, bool) { return s.d, true }
