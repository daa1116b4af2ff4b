/*
NAME
  normalmap.go

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

// NormalMap perturbs the shading frame by normalize(2*rgb-1) read from
// Map, optionally flipping the x and/or y components, then delegates
// every other query to Nested.
type NormalMap struct {
	Map        *texture.Texture2D
	Nested     BSDF
	FlipX, FlipY bool
}

func (n *NormalMap) ShadingFrame(u, v float64, tangent frame.Frame, ns r3.Vec) frame.Frame {
	c := n.Map.Sample(u, v)
	local := r3.Vec{X: 2*c.R - 1, Y: 2*c.G - 1, Z: 2*c.B - 1}
	if n.FlipX {
		local.X = -local.X
	}
	if n.FlipY {
		local.Y = -local.Y
	}
	local = r3.Unit(local)

	base := frame.New(tangent.T, ns)
	perturbed := base.ToWorld(local)
	return n.Nested.ShadingFrame(u, v, tangent, r3.Unit(perturbed))
}

func (n *NormalMap) Albedo(k quantity.Wavenumber) (float64, bool) { return n.Nested.Albedo(k) }
func (n *NormalMap) Lobes(k quantity.Wavenumber) LobeMask         { return n.Nested.Lobes(k) }
func (n *NormalMap) IsDeltaOnly(k quantity.Wavenumber) bool       { return n.Nested.IsDeltaOnly(k) }
func (n *NormalMap) IsDeltaLobe(k quantity.Wavenumber, l int) bool {
	return n.Nested.IsDeltaLobe(k, l)
}
// NeedsInteractionFootprint is always true: perturbing the shading normal
// requires sampling the bump/normal texture, which needs a footprint
// regardless of whether the nested BSDF needs one.
func (n *NormalMap) NeedsInteractionFootprint() bool {
	return true
}

func (n *NormalMap) F(wi, wo r3.Vec, q Query) Result { return n.Nested.F(wi, wo, q) }
func (n *NormalMap) Sample(wi r3.Vec, q Query, u Sampler) *Sample {
	return n.Nested.Sample(wi, q, u)
}
func (n *NormalMap) Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity {
	return n.Nested.Pdf(wi, wo, q)
}
func (n *NormalMap) Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64 {
	return n.Nested.Eta(wi, wo, k)
}
