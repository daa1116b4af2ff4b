/*
NAME
  two_sided.go

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
)

// TwoSided mirrors the nested BSDF across the interface when queried
// from the back side (wi.z < 0), flipping eta accordingly, so a
// one-sided material behaves identically on both faces.
type TwoSided struct {
	Nested BSDF
}

func flipIfBack(w r3.Vec) r3.Vec {
	if w.Z < 0 {
		return r3.Vec{X: w.X, Y: w.Y, Z: -w.Z}
	}
	return w
}

func (t *TwoSided) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return t.Nested.ShadingFrame(u, v, tangent, ns)
}

func (t *TwoSided) Albedo(k quantity.Wavenumber) (float64, bool) { return t.Nested.Albedo(k) }
func (t *TwoSided) Lobes(k quantity.Wavenumber) LobeMask         { return t.Nested.Lobes(k) }
func (t *TwoSided) IsDeltaOnly(k quantity.Wavenumber) bool       { return t.Nested.IsDeltaOnly(k) }
func (t *TwoSided) IsDeltaLobe(k quantity.Wavenumber, l int) bool {
	return t.Nested.IsDeltaLobe(k, l)
}
func (t *TwoSided) NeedsInteractionFootprint() bool { return t.Nested.NeedsInteractionFootprint() }

func (t *TwoSided) F(wi, wo r3.Vec, q Query) Result {
	return t.Nested.F(flipIfBack(wi), flipIfBack(wo), q)
}

func (t *TwoSided) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	back := wi.Z < 0
	s := t.Nested.Sample(flipIfBack(wi), q, u)
	if s == nil {
		return nil
	}
	if back {
		s.Wo = r3.Vec{X: s.Wo.X, Y: s.Wo.Y, Z: -s.Wo.Z}
	}
	return s
}

func (t *TwoSided) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	return t.Nested.Pdf(flipIfBack(wi), flipIfBack(wo), q)
}

func (t *TwoSided) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	eta := t.Nested.Eta(flipIfBack(wi), flipIfBack(wo), k)
	if wi.Z < 0 {
		return 1 / eta
	}
	return eta
}
