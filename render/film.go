/*
NAME
  film.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

import "time"

// Block identifies one rectangular region of a film's raster, acquired
// from the film before a worker integrates it and released (with the
// block's accumulated samples written back) once done.
type Block struct {
	Index int
	X, Y  int
	W, H  int
}

// DevelopResult is a sensor's film developed to an output image. Go has
// no compile-time integer generics, so the source's
// developed_scalar_film_pair<D>/developed_polarimetric_film_pair<D>
// template family collapses to a single runtime-dimensioned result:
// Dims records D (1, 2 or 3) and every buffer is a flat row-major slice
// sized by the caller-known extent.
type DevelopResult struct {
	Dims         int
	Polarimetric bool

	// Linear holds the undeveloped (no tonemap) film: 1 float64 per
	// element if !Polarimetric, or 4 (a Stokes vector) if Polarimetric.
	Linear []float64

	// Tonemapped, when HasTonemap is true, holds the same data passed
	// through the film's tonemap operator.
	Tonemapped         []float64
	HasTonemap         bool
	TonemapColourSpace string

	// SamplesPerElement is round(fractional_spp + 0.5): the effective
	// integer sample count recorded for this development.
	SamplesPerElement int
}

// Film is the storage contract a sensor's accumulation buffer must
// satisfy: block acquisition/release for the scheduler's in-flight
// bookkeeping, a write-back at job completion, and on-demand
// development to linear and (optionally) tonemapped output.
type Film interface {
	BlockCount() int
	BlockAt(index int) Block
	IsPolarimetric() bool
	DimensionsCount() int

	// AcquireBlock claims a block for exclusive in-flight rendering,
	// returning false if the block is already acquired.
	AcquireBlock(index int) bool
	// ReleaseBlock releases a previously acquired block without writing
	// to it, used when a job is abandoned (e.g. on terminate).
	ReleaseBlock(index int)
	// WriteBlock atomically accumulates spp additional samples into
	// block index's region and releases it.
	WriteBlock(index int, spp uint)

	// Develop produces a DevelopResult for the whole film at the given
	// fractional samples-per-element. The caller must ensure the film
	// is quiescent (no blocks in flight) before calling Develop.
	Develop(fractionalSpp float64) DevelopResult
}

// Sensor binds a Film to the scheduler's bookkeeping: an identifier
// used in progress reporting and the render result map.
type Sensor struct {
	ID   string
	Film Film
}

// SensorRenderResult is one sensor's contribution to a RenderResult.
type SensorRenderResult struct {
	SensorID          string
	RenderElapsed     time.Duration
	Developed         DevelopResult
	SamplesPerElement int
	FractionalSpe     float64
	Complete          bool
}

// RenderResult is the outcome of a scheduler run (or a captured
// intermediate snapshot): one SensorRenderResult per sensor, plus the
// total elapsed rendering time across all of them.
type RenderResult struct {
	Sensors       map[string]SensorRenderResult
	RenderElapsed time.Duration
}
