/*
NAME
  binned_pwl.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// DefaultICDFMultiplier is the default size of the binned inverse-CDF
// lookup table, expressed as a multiple of the bin count. The source marks
// this 4x heuristic as a TODO; it is preserved here but exposed so callers
// can tune the O(1)-lookup/memory tradeoff.
const DefaultICDFMultiplier = 4

// BinnedPiecewiseLinear resamples an irregularly sampled (x,y) source onto
// an equal-width histogram and precomputes a binned inverse-CDF table for
// O(1) expected-time sampling.
type BinnedPiecewiseLinear struct {
	lo, hi     float64
	binWidth   float64
	y          []float64 // per-bin height (histogram, piecewise-constant pdf shape).
	cdf        []float64 // cumulative mass at bin edges, len(y)+1.
	total      float64
	iCDF       []float64 // x values at equally spaced CDF fractions.
	Multiplier int
}

// NewBinnedPiecewiseLinear builds a BinnedPiecewiseLinear from sorted
// source samples x,y (y >= 0, len >= 2). minDx is a floor on the derived
// bin width. multiplier scales the inverse-CDF table size (use
// DefaultICDFMultiplier if unsure). Returns an error, rather than
// panicking, when the derived bin width is non-positive or non-finite —
// this is the "numerical degeneracy at construction" class of error the
// scene loader is expected to surface as a recoverable load failure.
func NewBinnedPiecewiseLinear(x, y []float64, minDx float64, multiplier int) (*BinnedPiecewiseLinear, error) {
	if len(x) != len(y) || len(x) < 2 {
		return nil, errors.New("dist: BinnedPiecewiseLinear requires matching x,y of length >= 2")
	}
	if multiplier <= 0 {
		multiplier = DefaultICDFMultiplier
	}
	steps := make([]float64, len(x)-1)
	for i := range steps {
		steps[i] = x[i+1] - x[i]
		if steps[i] <= 0 {
			return nil, errors.New("dist: BinnedPiecewiseLinear requires strictly increasing x")
		}
	}
	mean, std := stat.MeanStdDev(steps, nil)
	binWidth := mean - std
	if binWidth < minDx {
		binWidth = minDx
	}
	if binWidth <= 0 || math.IsNaN(binWidth) || math.IsInf(binWidth, 0) {
		return nil, errors.Errorf("dist: BinnedPiecewiseLinear could not determine a positive bin size (got %v)", binWidth)
	}

	lo, hiSrc := x[0], x[len(x)-1]
	numBins := int(math.Ceil((hiSrc - lo) / binWidth))
	if numBins < 1 {
		numBins = 1
	}
	hi := lo + float64(numBins)*binWidth

	src := NewPiecewiseLinear(x, y)
	bins := make([]float64, numBins)
	for i := range bins {
		centre := lo + (float64(i)+0.5)*binWidth
		if centre > hiSrc {
			centre = hiSrc
		}
		bins[i] = src.Pdf(centre, Continuous) * src.total
	}

	cdf := make([]float64, numBins+1)
	for i, h := range bins {
		cdf[i+1] = cdf[i] + h*binWidth
	}
	total := cdf[numBins]
	if total <= 0 || math.IsNaN(total) {
		return nil, errors.New("dist: BinnedPiecewiseLinear degenerates to zero total mass")
	}

	b := &BinnedPiecewiseLinear{
		lo: lo, hi: hi, binWidth: binWidth,
		y: bins, cdf: cdf, total: total, Multiplier: multiplier,
	}
	b.buildICDF()
	return b, nil
}

func (b *BinnedPiecewiseLinear) buildICDF() {
	n := b.Multiplier * len(b.y)
	b.iCDF = make([]float64, n+1)
	for i := range b.iCDF {
		target := float64(i) / float64(n) * b.total
		b.iCDF[i] = b.invertCDF(target)
	}
}

// invertCDF does an O(log numBins) search; only used to build the O(1)
// lookup table, never on the sampling hot path.
func (b *BinnedPiecewiseLinear) invertCDF(target float64) float64 {
	lo, hi := 0, len(b.y)
	for lo < hi {
		mid := (lo + hi) / 2
		if b.cdf[mid+1] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	i := lo
	if i >= len(b.y) {
		i = len(b.y) - 1
	}
	remainder := target - b.cdf[i]
	height := b.y[i]
	var t float64
	if height > 0 {
		t = remainder / (height * b.binWidth)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return b.lo + (float64(i)+t)*b.binWidth
}

func (b *BinnedPiecewiseLinear) Kind() Kind { return KindBinnedPiecewiseLinear }

// RawTotal returns the unnormalized total mass of the resampled histogram.
func (b *BinnedPiecewiseLinear) RawTotal() float64 { return b.total }

func (b *BinnedPiecewiseLinear) Bounds() (lo, hi float64) { return b.lo, b.hi }

func (b *BinnedPiecewiseLinear) binIndex(x float64) int {
	i := int((x - b.lo) / b.binWidth)
	if i < 0 {
		i = 0
	}
	if i >= len(b.y) {
		i = len(b.y) - 1
	}
	return i
}

func (b *BinnedPiecewiseLinear) Pdf(x float64, measure Measure) float64 {
	if measure != Continuous || x < b.lo || x > b.hi || b.total <= 0 {
		return 0
	}
	return b.y[b.binIndex(x)] / b.total
}

// Sample performs the O(1) expected-time lookup by indexing directly into
// the precomputed inverse-CDF table and linearly interpolating between its
// two nearest entries.
func (b *BinnedPiecewiseLinear) Sample(r float64) Sample {
	n := len(b.iCDF) - 1
	pos := r * float64(n)
	i := int(pos)
	if i >= n {
		i = n - 1
	}
	t := pos - float64(i)
	x := b.iCDF[i] + t*(b.iCDF[i+1]-b.iCDF[i])
	return Sample{X: x, Measure: Continuous, Pdf: b.Pdf(x, Continuous)}
}

// Integrate returns the normalized mass between xmin and xmax, clamped to
// the support.
func (b *BinnedPiecewiseLinear) Integrate(xmin, xmax float64) float64 {
	if xmin < b.lo {
		xmin = b.lo
	}
	if xmax > b.hi {
		xmax = b.hi
	}
	if xmax <= xmin || b.total <= 0 {
		return 0
	}
	massAt := func(v float64) float64 {
		i := b.binIndex(v)
		frac := (v - (b.lo + float64(i)*b.binWidth)) / b.binWidth
		return b.cdf[i] + frac*b.y[i]*b.binWidth
	}
	return (massAt(xmax) - massAt(xmin)) / b.total
}
