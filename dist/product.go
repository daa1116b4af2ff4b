/*
NAME
  product.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dist

import "sort"

// ProductResult is the outcome of combining two independent distributions'
// densities: h(x) = f(x)g(x) / R0, where R0 = integral f(x)g(x) dx is the
// cross-correlation at zero lag between the two inputs.
type ProductResult struct {
	Dist        Distribution
	R0          float64
	Approximate bool
	Discrete    bool
}

// Product computes the product distribution of two independent
// distributions. The dispatch is by Kind, not by a generic fallback, and
// is exhaustive over all 6x6 pairs: an unhandled pair is an unreachable
// programmer error, matching the source's double-downcast dispatch that
// the enum-on-variant table replaces.
func Product(a, b Distribution) ProductResult {
	// discrete * anything -> discrete, handled first regardless of b's kind.
	if da, ok := a.(*Discrete); ok {
		return discreteProduct(da, b)
	}
	if db, ok := b.(*Discrete); ok {
		return discreteProduct(db, a)
	}

	switch a.Kind() {
	case KindUniform:
		return productWithUniform(a.(Uniform), b)
	case KindPiecewiseLinear, KindBinnedPiecewiseLinear, KindGaussian, KindTruncatedGaussian:
		switch b.Kind() {
		case KindUniform:
			return productWithUniform(b.(Uniform), a)
		case KindPiecewiseLinear, KindBinnedPiecewiseLinear, KindGaussian, KindTruncatedGaussian:
			return genericPWLProduct(a, b)
		default:
			panic("dist: Product: unreachable distribution kind pairing")
		}
	default:
		panic("dist: Product: unreachable distribution kind pairing")
	}
}

func productWithUniform(u Uniform, other Distribution) ProductResult {
	if ou, ok := other.(Uniform); ok {
		return uniformProduct(u, ou)
	}
	return genericPWLProduct(u, other)
}

// uniformProduct implements "uniform x uniform -> uniform over the
// overlap". R0 is the trapezoid integral of the two constant densities
// over their overlap, which collapses to overlap.Length()/(|A|*|B|).
func uniformProduct(a, b Uniform) ProductResult {
	lo := max64(a.Lo, b.Lo)
	hi := min64(a.Hi, b.Hi)
	if hi <= lo {
		return ProductResult{Dist: nil, R0: 0, Approximate: false}
	}
	overlap := hi - lo
	r0 := overlap / ((a.Hi - a.Lo) * (b.Hi - b.Lo))
	return ProductResult{Dist: NewUniform(lo, hi), R0: r0, Approximate: false}
}

// discreteProduct implements "discrete * anything -> discrete": for each
// atom of d, its new unnormalized mass is scaled by the other
// distribution's density (continuous pdf, or the matching atom's mass for
// discrete*discrete) at that atom's position; atoms with zero resulting
// mass are dropped.
func discreteProduct(d *Discrete, other Distribution) ProductResult {
	if od, ok := other.(*Discrete); ok {
		return discreteDiscreteProduct(d, od)
	}
	xs, pmf := d.Atoms()
	newX := make([]float64, 0, len(xs))
	newMass := make([]float64, 0, len(xs))
	r0 := 0.0
	for i, x := range xs {
		g := other.Pdf(x, Continuous)
		m := pmf[i] * g
		if m <= 0 {
			continue
		}
		newX = append(newX, x)
		newMass = append(newMass, m)
		r0 += m
	}
	if len(newX) == 0 {
		return ProductResult{Dist: nil, R0: 0, Discrete: true}
	}
	return ProductResult{Dist: NewDiscrete(newX, newMass), R0: r0, Discrete: true}
}

// discreteDiscreteProduct builds an atom at every shared x with mass
// p1(x)*p2(x)/R0.
func discreteDiscreteProduct(d1, d2 *Discrete) ProductResult {
	x1, p1 := d1.Atoms()
	x2, p2 := d2.Atoms()
	m2 := make(map[float64]float64, len(x2))
	for i, x := range x2 {
		m2[x] = p2[i]
	}
	var newX, newMass []float64
	r0 := 0.0
	for i, x := range x1 {
		if p2x, ok := m2[x]; ok {
			m := p1[i] * p2x
			if m > 0 {
				newX = append(newX, x)
				newMass = append(newMass, m)
				r0 += m
			}
		}
	}
	if len(newX) == 0 {
		return ProductResult{Dist: nil, R0: 0, Discrete: true}
	}
	return ProductResult{Dist: NewDiscrete(newX, newMass), R0: r0, Discrete: true}
}

// genericPWLProduct implements the closed-set fallback: "any x any (when
// not covered above) -> piecewise-linear sampled at the sorted union of
// candidate x's". When both inputs are PWL-like, the candidate set is
// augmented by midpoint subdivision to better represent the quadratic
// shape of the product of two linear pieces.
func genericPWLProduct(a, b Distribution) ProductResult {
	aLo, aHi := a.Bounds()
	bLo, bHi := b.Bounds()
	lo, hi := max64(aLo, bLo), min64(aHi, bHi)
	if hi <= lo {
		return ProductResult{Dist: nil, R0: 0, Approximate: true}
	}

	xs := mergeCandidates(candidatePoints(a), candidatePoints(b), lo, hi)
	if isPWLLike(a) && isPWLLike(b) {
		xs = subdivideMidpoints(xs)
	}
	if len(xs) < 2 {
		xs = []float64{lo, hi}
	}

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = a.Pdf(x, Continuous) * b.Pdf(x, Continuous)
	}
	p := NewPiecewiseLinear(xs, ys)
	return ProductResult{Dist: p, R0: p.total, Approximate: true}
}

func isPWLLike(d Distribution) bool {
	switch d.Kind() {
	case KindPiecewiseLinear, KindBinnedPiecewiseLinear:
		return true
	default:
		return false
	}
}

// candidatePoints returns x-positions representative of d's pdf shape,
// used to seed the product's approximation grid.
func candidatePoints(d Distribution) []float64 {
	switch v := d.(type) {
	case PiecewiseLinear:
		return append([]float64(nil), v.x...)
	case *BinnedPiecewiseLinear:
		pts := make([]float64, len(v.y)+1)
		for i := range pts {
			pts[i] = v.lo + float64(i)*v.binWidth
		}
		return pts
	case Uniform:
		return []float64{v.Lo, v.Hi}
	case Gaussian:
		return gaussianCandidates(v.Mu, v.Sigma, -1e308, 1e308)
	case TruncatedGaussian:
		return gaussianCandidates(v.Mu, v.Sigma, v.Lo, v.Hi)
	default:
		lo, hi := d.Bounds()
		return []float64{lo, hi}
	}
}

// gaussianCandidates samples +/-5 sigma at 6 points per sigma, clipped to
// [lo,hi].
func gaussianCandidates(mu, sigma, lo, hi float64) []float64 {
	if sigma == 0 {
		return []float64{clamp64(mu, lo, hi)}
	}
	const (
		sigmasOut = 5.0
		perSigma  = 6.0
	)
	step := sigma / perSigma
	start := max64(mu-sigmasOut*sigma, lo)
	end := min64(mu+sigmasOut*sigma, hi)
	var pts []float64
	if isFiniteBound(lo) {
		pts = append(pts, lo)
	}
	for x := start; x <= end+step/2; x += step {
		pts = append(pts, clamp64(x, lo, hi))
	}
	if isFiniteBound(hi) {
		pts = append(pts, hi)
	}
	return pts
}

func isFiniteBound(x float64) bool { return x > -1e300 && x < 1e300 }

// mergeCandidates unions two candidate sets, clips to [lo,hi], sorts and
// dedupes.
func mergeCandidates(a, b []float64, lo, hi float64) []float64 {
	all := make([]float64, 0, len(a)+len(b)+2)
	all = append(all, lo, hi)
	for _, x := range a {
		if x >= lo && x <= hi {
			all = append(all, x)
		}
	}
	for _, x := range b {
		if x >= lo && x <= hi {
			all = append(all, x)
		}
	}
	sort.Float64s(all)
	return dedupe(all)
}

func dedupe(xs []float64) []float64 {
	out := xs[:0:0]
	for i, x := range xs {
		if i == 0 || x > out[len(out)-1]+1e-12*(1+abs64(x)) {
			out = append(out, x)
		}
	}
	return out
}

func subdivideMidpoints(xs []float64) []float64 {
	out := make([]float64, 0, 2*len(xs))
	for i, x := range xs {
		out = append(out, x)
		if i+1 < len(xs) {
			out = append(out, (x+xs[i+1])/2)
		}
	}
	return out
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clamp64(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
