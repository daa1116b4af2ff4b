/*
NAME
  integrator.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package integrator defines the adapter contract between the render
// scheduler and a light-transport estimator: an Integrator is invoked
// once per pixel-in-block and must return without blocking, since all
// concurrency belongs to the caller's worker pool.
//
// This package depends only on ads and sensor so that render can
// depend on integrator without a cycle: the scheduler calls
// Integrator.Render from inside a worker goroutine, and an
// implementation reaches back into the scene through the Context it is
// given rather than through any render type.
package integrator

import (
	"github.com/ausocean/wavetracer/ads"
	"github.com/ausocean/wavetracer/sensor"
)

// Position is an element's coordinate within a render block.
type Position struct {
	X, Y int
}

// Options carries renderer-wide switches an integrator should respect.
type Options struct {
	// ForceRayTracing disables any beam or cone-sweep fast path an
	// integrator would otherwise take, so its output can be checked
	// against a reference ray-traced render.
	ForceRayTracing bool
}

// FilmWriter is the thread-safe sink an integrator accumulates samples
// into. Concurrent callers may write to distinct blocks at once; a
// FilmWriter implementation is responsible for serialising writes that
// land in the same block.
type FilmWriter interface {
	// AccumulateSample adds one sample's contribution to the element at
	// pos within block. value holds one component per film dimension
	// (a radiance triple, or a Stokes vector for a polarimetric film).
	AccumulateSample(block int, pos Position, value []float64)
}

// Context is everything an Integrator needs to evaluate one pixel: the
// acceleration structure to trace rays against, the sensor's emitter
// sampler for next-event estimation, the film to accumulate samples
// into, and the renderer's options.
type Context interface {
	ADS() *ads.BVH8W
	Sensor() *sensor.EmitterSampler
	Film() FilmWriter
	Options() Options
}

// Integrator estimates incident light at one element of a render block.
//
// Render is called once per pixel-in-block with the number of samples
// requested for this job; it must accumulate exactly that many samples
// (or their combined contribution) into ctx.Film() before returning,
// and it must not block on anything other than the ADS traversals and
// sampling it performs synchronously. All parallelism comes from the
// scheduler invoking Render concurrently across pixels and blocks, not
// from within a single call.
type Integrator interface {
	Render(ctx Context, block int, pos Position, samplesPerBlock uint)
}
