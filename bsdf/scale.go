/*
NAME
  scale.go

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

// Scale multiplies the nested BSDF's Mueller operator and sampling
// weight by a texture value. Pdf and eta pass through unchanged.
type Scale struct {
	Factor *texture.Texture2D
	Nested BSDF
}

func (s *Scale) factor() float64 { return s.Factor.Mean().R }

func (s *Scale) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	return s.Nested.ShadingFrame(u, v, tangent, ns)
}

func (s *Scale) Albedo(k quantity.Wavenumber) (float64, bool) {
	a, ok := s.Nested.Albedo(k)
	if !ok {
		return 0, false
	}
	return a * s.factor(), true
}

func (s *Scale) Lobes(k quantity.Wavenumber) LobeMask          { return s.Nested.Lobes(k) }
func (s *Scale) IsDeltaOnly(k quantity.Wavenumber) bool        { return s.Nested.IsDeltaOnly(k) }
func (s *Scale) IsDeltaLobe(k quantity.Wavenumber, l int) bool { return s.Nested.IsDeltaLobe(k, l) }
func (s *Scale) NeedsInteractionFootprint() bool {
	return s.Nested.NeedsInteractionFootprint()
}

func (s *Scale) F(wi, wo r3.Vec, q Query) Result {
	r := s.Nested.F(wi, wo, q)
	r.M.Scale(s.factor())
	return r
}

func (s *Scale) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	smp := s.Nested.Sample(wi, q, u)
	if smp == nil {
		return nil
	}
	smp.WeightedBSDF.M.Scale(s.factor())
	return smp
}

func (s *Scale) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	return s.Nested.Pdf(wi, wo, q)
}

func (s *Scale) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	return s.Nested.Eta(wi, wo, k)
}
