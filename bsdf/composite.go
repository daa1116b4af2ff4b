/*
NAME
  composite.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bsdf

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/frame"
	"github.com/ausocean/wavetracer/quantity"
)

type compositeEntry struct {
	Range quantity.WavenumberRange
	BSDF  BSDF
}

// Composite dispatches to one of several nested BSDFs based on the
// wavenumber, across a set of non-overlapping wavenumber ranges.
// Queries outside every range get an empty/unit response.
type Composite struct {
	entries []compositeEntry
}

// NewComposite builds a Composite, panicking if any two entries'
// ranges overlap.
func NewComposite(entries map[quantity.WavenumberRange]BSDF) *Composite {
	c := &Composite{entries: make([]compositeEntry, 0, len(entries))}
	for r, b := range entries {
		c.entries = append(c.entries, compositeEntry{Range: r, BSDF: b})
	}
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].Range.Min < c.entries[j].Range.Min })
	for i := 1; i < len(c.entries); i++ {
		if c.entries[i].Range.Min < c.entries[i-1].Range.Max {
			panic("bsdf: composite: wavenumber ranges overlap")
		}
	}
	return c
}

func (c *Composite) find(k quantity.Wavenumber) BSDF {
	i := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Range.Max > k })
	if i < len(c.entries) && c.entries[i].Range.Contains(k) {
		return c.entries[i].BSDF
	}
	return nil
}

func (c *Composite) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return frame.New(tangent.T, ns)
}

func (c *Composite) Albedo(k quantity.Wavenumber) (float64, bool) {
	b := c.find(k)
	if b == nil {
		return 0, false
	}
	return b.Albedo(k)
}

func (c *Composite) Lobes(k quantity.Wavenumber) LobeMask {
	b := c.find(k)
	if b == nil {
		return 0
	}
	return b.Lobes(k)
}

func (c *Composite) IsDeltaOnly(k quantity.Wavenumber) bool {
	b := c.find(k)
	if b == nil {
		return true
	}
	return b.IsDeltaOnly(k)
}

func (c *Composite) IsDeltaLobe(k quantity.Wavenumber, l int) bool {
	b := c.find(k)
	if b == nil {
		return true
	}
	return b.IsDeltaLobe(k, l)
}

func (c *Composite) NeedsInteractionFootprint() bool {
	for _, e := range c.entries {
		if e.BSDF.NeedsInteractionFootprint() {
			return true
		}
	}
	return false
}

func (c *Composite) F(wi, wo r3.Vec, q Query) Result {
	b := c.find(q.K)
	if b == nil {
		return Result{M: ZeroMueller()}
	}
	return b.F(wi, wo, q)
}

func (c *Composite) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	b := c.find(q.K)
	if b == nil {
		return nil
	}
	return b.Sample(wi, q, u)
}

func (c *Composite) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	b := c.find(q.K)
	if b == nil {
		return 0
	}
	return b.Pdf(wi, wo, q)
}

func (c *Composite) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	b := c.find(k)
	if b == nil {
		return 1
	}
	return b.Eta(wi, wo, k)
}
