/*
NAME
  pwl.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import "sort"

// PiecewiseLinear is a distribution whose density interpolates linearly
// between sorted (x,y) control points, y >= 0.
type PiecewiseLinear struct {
	x, y  []float64
	cdf   []float64 // cumulative mass at each x[i]; cdf[0] == 0.
	total float64
}

// NewPiecewiseLinear builds a PiecewiseLinear distribution from sorted
// control points. Panics if x is not strictly increasing or any y is
// negative: this is the sorted-x invariant called out in the source, a
// hard programmer error rather than a recoverable one.
func NewPiecewiseLinear(x, y []float64) PiecewiseLinear {
	if len(x) != len(y) || len(x) < 2 {
		panic("dist: PiecewiseLinear requires matching x,y of length >= 2")
	}
	cdf := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			panic("dist: PiecewiseLinear requires strictly increasing x")
		}
		if y[i-1] < 0 || y[i] < 0 {
			panic("dist: PiecewiseLinear requires non-negative y")
		}
		cdf[i] = cdf[i-1] + segmentMass(y[i-1], y[i], x[i]-x[i-1])
	}
	return PiecewiseLinear{x: append([]float64(nil), x...), y: append([]float64(nil), y...), cdf: cdf, total: cdf[len(cdf)-1]}
}

func (p PiecewiseLinear) Kind() Kind { return KindPiecewiseLinear }

// RawTotal returns the unnormalized integral of the source (x,y) samples,
// i.e. the normalization constant dividing the density in Pdf.
func (p PiecewiseLinear) RawTotal() float64 { return p.total }

func (p PiecewiseLinear) Bounds() (lo, hi float64) { return p.x[0], p.x[len(p.x)-1] }

// bracket returns the index i such that x[i] <= v <= x[i+1].
func (p PiecewiseLinear) bracket(v float64) int {
	i := sort.SearchFloat64s(p.x, v)
	if i == 0 {
		return 0
	}
	if i >= len(p.x) {
		return len(p.x) - 2
	}
	return i - 1
}

func (p PiecewiseLinear) Pdf(x float64, measure Measure) float64 {
	if measure != Continuous || p.total <= 0 {
		return 0
	}
	if x < p.x[0] || x > p.x[len(p.x)-1] {
		return 0
	}
	i := p.bracket(x)
	dx := p.x[i+1] - p.x[i]
	t := (x - p.x[i]) / dx
	y := p.y[i] + t*(p.y[i+1]-p.y[i])
	return y / p.total
}

func (p PiecewiseLinear) Sample(r float64) Sample {
	target := r * p.total
	// Binary search for the bracket whose cumulative mass contains target.
	i := sort.SearchFloat64s(p.cdf, target)
	if i == 0 {
		i = 0
	} else {
		i--
	}
	if i > len(p.x)-2 {
		i = len(p.x) - 2
	}
	dx := p.x[i+1] - p.x[i]
	remainder := target - p.cdf[i]
	t := solveLinearPieceT(p.y[i], p.y[i+1], dx, remainder)
	x := p.x[i] + t*dx
	return Sample{X: x, Measure: Continuous, Pdf: p.Pdf(x, Continuous)}
}

// Integrate returns the normalized mass between xmin and xmax, clamped to
// the support.
func (p PiecewiseLinear) Integrate(xmin, xmax float64) float64 {
	if p.total <= 0 {
		return 0
	}
	lo, hi := p.x[0], p.x[len(p.x)-1]
	if xmin < lo {
		xmin = lo
	}
	if xmax > hi {
		xmax = hi
	}
	if xmax <= xmin {
		return 0
	}
	massAt := func(v float64) float64 {
		i := p.bracket(v)
		dx := p.x[i+1] - p.x[i]
		t := (v - p.x[i]) / dx
		yv := p.y[i] + t*(p.y[i+1]-p.y[i])
		return p.cdf[i] + segmentMass(p.y[i], yv, v-p.x[i])
	}
	return (massAt(xmax) - massAt(xmin)) / p.total
}
