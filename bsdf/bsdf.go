/*
NAME
  bsdf.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bsdf implements the polarimetric bidirectional scattering
// distribution function contract: evaluation, importance sampling, pdf,
// albedo and IOR-ratio queries, plus the composition primitives that
// build complex materials out of simpler ones.
package bsdf

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/frame"
	"github.com/ausocean/wavetracer/quantity"
)

// Transport is the direction light is assumed to flow for the purposes
// of a BSDF query: forward (emitter to sensor) or backward (sensor to
// emitter).
type Transport uint8

const (
	TransportForward Transport = iota
	TransportBackward
)

// Flip swaps forward and backward transport.
func (t Transport) Flip() Transport {
	if t == TransportForward {
		return TransportBackward
	}
	return TransportForward
}

// maxLobes bounds the lobe mask to a single uint32, matching the 32-lobe
// ceiling every concrete BSDF in this package is built against.
const maxLobes = 32

// LobeMask is a bitset over up to 32 BSDF lobes.
type LobeMask uint32

func (m LobeMask) Set(lobe int) LobeMask   { return m | 1<<uint(lobe) }
func (m LobeMask) Test(lobe int) bool      { return m&(1<<uint(lobe)) != 0 }
func (m LobeMask) Count() int {
	n := 0
	for i := 0; i < maxLobes; i++ {
		if m.Test(i) {
			n++
		}
	}
	return n
}

// allLobes is the default query mask: every lobe admissible.
const allLobes LobeMask = 0xFFFFFFFF

// Query carries the per-evaluation context a BSDF needs: the wavenumber
// of interest, the transport mode, and the subset of lobes the caller
// is willing to consider.
type Query struct {
	K         quantity.Wavenumber
	Transport Transport
	Lobe      LobeMask
}

// DefaultQuery builds a Query with every lobe enabled.
func DefaultQuery(k quantity.Wavenumber, t Transport) Query {
	return Query{K: k, Transport: t, Lobe: allLobes}
}

// Result is the polarimetric outcome of a BSDF evaluation: a Mueller
// operator carrying implied units of inverse steradian.
type Result struct {
	M MuellerOperator
}

// MeanIntensity returns the scalar, unpolarised-light throughput implied
// by M, i.e. its action on an unpolarised unit-intensity Stokes vector.
func (r Result) MeanIntensity() float64 {
	return r.M.MeanIntensity()
}

// Sample is the outcome of a BSDF::sample query.
type Sample struct {
	Wo          r3.Vec
	Density     quantity.SolidAngleDensity
	Eta         float64
	Lobe        LobeMask
	WeightedBSDF Result
}

// BSDF is the uniform polarimetric material contract every concrete and
// composed material in this package implements.
type BSDF interface {
	// ShadingFrame builds the world-space shading frame used to evaluate
	// this BSDF, allowing normal/bump-mapping BSDFs to perturb it. u,v
	// are the surface's texture coordinates at the intersection.
	ShadingFrame(u, v float64, tangent frame.Frame, shadingNormal r3.Vec) frame.Frame

	// Albedo returns the spectral albedo at k, or (0, false) when it
	// cannot be computed.
	Albedo(k quantity.Wavenumber) (float64, bool)

	Lobes(k quantity.Wavenumber) LobeMask
	IsDeltaOnly(k quantity.Wavenumber) bool
	IsDeltaLobe(k quantity.Wavenumber, lobe int) bool

	// NeedsInteractionFootprint reports whether this BSDF requires the
	// surface interaction's texture-filtering footprint.
	NeedsInteractionFootprint() bool

	// F evaluates the non-delta part of the BSDF, already including the
	// cosine-foreshortening term. wi and wo are in the local frame.
	F(wi, wo r3.Vec, q Query) Result

	// Sample draws an exitant direction, returning nil when this BSDF
	// has nothing sampleable for q.
	Sample(wi r3.Vec, q Query, u Sampler) *Sample

	// Pdf gives the non-delta solid-angle sampling density.
	Pdf(wi, wo r3.Vec, q Query) quantity.SolidAngleDensity

	// Eta is the refractive-index ratio eta-exit/eta-entry.
	Eta(wi, wo r3.Vec, k quantity.Wavenumber) float64
}

// Sampler is the minimal random-number source BSDFs need to draw
// samples: independent uniform draws in [0,1).
type Sampler interface {
	Next1D() float64
	Next2D() (float64, float64)
}
