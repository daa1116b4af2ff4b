/*
NAME
  mask.go

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
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/frame"
	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/texture"
)

// Mask adds a null delta lobe (perfect forward "transmission") to a
// nested BSDF, selected with probability 1-opacity. The nested BSDF
// must have at least one empty lobe slot, and must not itself be
// transmissive.
type Mask struct {
	Opacity *texture.Texture2D
	Nested  BSDF
}

func (m *Mask) opacity(k quantity.Wavenumber) float64 {
	return m.Opacity.Mean().R
}

// nullLobe finds the nested BSDF's highest unused lobe slot, panicking
// if none remains — construction-time detection of this is the scene
// loader's job, but the check is repeated here since lobe
// availability is wavenumber-dependent.
func (m *Mask) nullLobe(k quantity.Wavenumber) int {
	used := m.Nested.Lobes(k)
	for l := maxLobes - 1; l >= 0; l-- {
		if !used.Test(l) {
			return l
		}
	}
	panic("bsdf: mask: nested BSDF admits no empty lobes")
}

func (m *Mask) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return m.Nested.ShadingFrame(u, v, tangent, ns)
}

func (m *Mask) Albedo(k quantity.Wavenumber) (float64, bool) { return m.Nested.Albedo(k) }

func (m *Mask) Lobes(k quantity.Wavenumber) LobeMask {
	return m.Nested.Lobes(k).Set(m.nullLobe(k))
}

func (m *Mask) IsDeltaOnly(k quantity.Wavenumber) bool { return m.Nested.IsDeltaOnly(k) }

func (m *Mask) IsDeltaLobe(k quantity.Wavenumber, l int) bool {
	if l == m.nullLobe(k) {
		return true
	}
	return m.Nested.IsDeltaLobe(k, l)
}

func (m *Mask) NeedsInteractionFootprint() bool {
	return m.Nested.NeedsInteractionFootprint()
}

func (m *Mask) F(wi, wo r3.Vec, q Query) Result {
	op := m.opacity(q.K)
	f := m.Nested.F(wi, wo, q)
	f.M.Scale(op)
	return f
}

func (m *Mask) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	op := m.opacity(q.K)
	if u.Next1D() >= op {
		// Null lobe: perfect forward transmission, direction unchanged.
		return &Sample{
			Wo:           r3.Scale(-1, wi),
			Density:      0,
			Eta:          1,
			Lobe:         LobeMask(0).Set(m.nullLobe(q.K)),
			WeightedBSDF: Result{M: ScalarMueller(1)},
		}
	}
	s := m.Nested.Sample(wi, q, u)
	if s == nil {
		return nil
	}
	s.WeightedBSDF.M.Scale(op)
	return s
}

func (m *Mask) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	return m.Nested.Pdf(wi, wo, q)
}

func (m *Mask) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 { return 1 }
