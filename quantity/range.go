/*
NAME
  range.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package quantity

// Range is a closed interval [Min, Max] over an ordered quantity. A
// WavenumberRange is Range[Wavenumber]; other quantities reuse the same
// type rather than each growing a bespoke interval type.
type Range[T ~float64] struct {
	Min, Max T
}

// NewRange builds a Range, swapping endpoints if given reversed.
func NewRange[T ~float64](a, b T) Range[T] {
	if a > b {
		a, b = b, a
	}
	return Range[T]{Min: a, Max: b}
}

// Empty reports whether the range has no extent (Min >= Max); a
// single-point range [a, a] counts as empty.
func (r Range[T]) Empty() bool { return r.Min >= r.Max }

// Length is Max - Min, clamped to zero for an empty range.
func (r Range[T]) Length() T {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min
}

// Centre is the midpoint of the range.
func (r Range[T]) Centre() T { return (r.Min + r.Max) / 2 }

// Contains reports whether x lies within [Min, Max].
func (r Range[T]) Contains(x T) bool { return x >= r.Min && x <= r.Max }

// Union returns the smallest range containing both r and o.
func (r Range[T]) Union(o Range[T]) Range[T] {
	return Range[T]{Min: min(r.Min, o.Min), Max: max(r.Max, o.Max)}
}

// Intersect returns the overlap of r and o; the result is Empty if they do
// not overlap.
func (r Range[T]) Intersect(o Range[T]) Range[T] {
	lo := max(r.Min, o.Min)
	hi := min(r.Max, o.Max)
	if lo > hi {
		return Range[T]{Min: lo, Max: lo}
	}
	return Range[T]{Min: lo, Max: hi}
}

// Overlaps reports whether r and o share at least one point.
func (r Range[T]) Overlaps(o Range[T]) bool { return max(r.Min, o.Min) <= min(r.Max, o.Max) }

// WavenumberRange is a closed interval of wavenumbers.
type WavenumberRange = Range[Wavenumber]

func min[T ~float64](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T ~float64](a, b T) T {
	if a > b {
		return a
	}
	return b
}
