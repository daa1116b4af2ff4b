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

package dist

import "sort"

// Discrete is a Dirac sum: point masses at a finite set of atoms.
type Discrete struct {
	x     []float64
	mass  []float64
	cdf   []float64 // cumulative mass, cdf[0] == 0, cdf[last] == total.
	total float64
}

// NewDiscrete builds a Discrete distribution from atom positions and
// (unnormalized, non-negative) masses. x need not be sorted; it is sorted
// internally alongside mass.
func NewDiscrete(x, mass []float64) *Discrete {
	if len(x) != len(mass) || len(x) == 0 {
		panic("dist: Discrete requires matching, non-empty x and mass")
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	sx := make([]float64, len(x))
	sm := make([]float64, len(x))
	for i, j := range idx {
		sx[i], sm[i] = x[j], mass[j]
	}
	cdf := make([]float64, len(x)+1)
	for i, m := range sm {
		if m < 0 {
			panic("dist: Discrete requires non-negative mass")
		}
		cdf[i+1] = cdf[i] + m
	}
	return &Discrete{x: sx, mass: sm, cdf: cdf, total: cdf[len(cdf)-1]}
}

func (d *Discrete) Kind() Kind { return KindDiscrete }

// RawTotal returns the unnormalized sum of atom masses.
func (d *Discrete) RawTotal() float64 { return d.total }

func (d *Discrete) Bounds() (lo, hi float64) { return d.x[0], d.x[len(d.x)-1] }

// Atoms exposes the (sorted) atom positions and normalized masses.
func (d *Discrete) Atoms() (x, pmf []float64) {
	pmf = make([]float64, len(d.mass))
	if d.total > 0 {
		for i, m := range d.mass {
			pmf[i] = m / d.total
		}
	}
	return d.x, pmf
}

func (d *Discrete) Pdf(x float64, measure Measure) float64 {
	if measure != Discrete || d.total <= 0 {
		return 0
	}
	i := sort.SearchFloat64s(d.x, x)
	if i < len(d.x) && d.x[i] == x {
		return d.mass[i] / d.total
	}
	return 0
}

// Sample draws an atom index via inverse-CDF lower-bound, then skips any
// run of zero-mass atoms that the lower-bound landed on (possible when
// several atoms share a boundary with zero probability mass between them).
func (d *Discrete) Sample(r float64) Sample {
	target := r * d.total
	i := sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] >= target })
	if i == 0 {
		i = 1
	}
	if i > len(d.x) {
		i = len(d.x)
	}
	idx := i - 1
	for idx < len(d.mass)-1 && d.mass[idx] == 0 {
		idx++
	}
	return Sample{X: d.x[idx], Measure: Discrete, Pdf: d.mass[idx] / d.total}
}
