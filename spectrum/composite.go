/*
NAME
  composite.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import (
	"sort"

	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// compositeEntry pairs a non-overlapping wavenumber sub-range with the
// spectrum active over it.
type compositeEntry struct {
	Range quantity.WavenumberRange
	Spec  Real
}

// Composite dispatches to one of several child spectra by wavenumber,
// covering non-overlapping sub-ranges of an overall domain. A composite
// has no associated sampling distribution of its own: the scene-sensor
// sampling layer (C8) builds its own distribution over the integrated
// emitter/sensor product instead.
type Composite struct {
	entries []compositeEntry // sorted by Range.Min.
	rng     quantity.WavenumberRange
}

// NewComposite builds a Composite from a set of non-overlapping
// (range, spectrum) entries. Panics if any two entries overlap: this is a
// construction-time invariant, not a per-query condition.
func NewComposite(entries map[quantity.WavenumberRange]Real) *Composite {
	c := &Composite{}
	for r, s := range entries {
		c.entries = append(c.entries, compositeEntry{Range: r, Spec: s})
	}
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].Range.Min < c.entries[j].Range.Min })
	for i := 1; i < len(c.entries); i++ {
		if c.entries[i].Range.Min < c.entries[i-1].Range.Max {
			panic("spectrum: Composite requires non-overlapping ranges")
		}
	}
	if len(c.entries) > 0 {
		c.rng = quantity.NewRange(c.entries[0].Range.Min, c.entries[len(c.entries)-1].Range.Max)
	}
	return c
}

// find resolves the entry covering k via a lower-bound search with a
// strict-less-than comparator over the interval ends (entries are sorted
// by start and do not overlap, so the ends are sorted too), mirroring the
// source's std::lower_bound-based composite dispatch.
func (c *Composite) find(k quantity.Wavenumber) (compositeEntry, bool) {
	i := sort.Search(len(c.entries), func(i int) bool { return !(c.entries[i].Range.Max < k) })
	// i is the first entry whose Max is not strictly less than k.
	if i < len(c.entries) && c.entries[i].Range.Contains(k) {
		return c.entries[i], true
	}
	return compositeEntry{}, false
}

// Value returns 0 when no sub-range covers k. This is the documented
// ambiguous case from the source (0-on-miss rather than an explicit
// "unsupported wavenumber" signal); the semantics are preserved here.
func (c *Composite) Value(k quantity.Wavenumber) float64 {
	e, ok := c.find(k)
	if !ok {
		return 0
	}
	return e.Spec.Value(k)
}

func (c *Composite) Bounds() quantity.WavenumberRange { return c.rng }

func (c *Composite) Power() float64 {
	sum := 0.0
	for _, e := range c.entries {
		sum += e.Spec.Power()
	}
	return sum
}

func (c *Composite) PowerRange(r quantity.WavenumberRange) float64 {
	sum := 0.0
	for _, e := range c.entries {
		ov := e.Range.Intersect(r)
		if !ov.Empty() {
			sum += e.Spec.PowerRange(ov)
		}
	}
	return sum
}

func (c *Composite) MeanWavenumber() float64 {
	num, den := 0.0, 0.0
	for _, e := range c.entries {
		p := e.Spec.Power()
		num += p * e.Spec.MeanWavenumber()
		den += p
	}
	if den == 0 {
		return float64(c.rng.Centre())
	}
	return num / den
}

// Distribution always returns false: a composite has no distribution of
// its own, matching the source.
func (c *Composite) Distribution() (dist.Distribution, bool) { return nil, false }
