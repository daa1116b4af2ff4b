/*
NAME
  sensor.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sensor implements the emitter-sampling machinery attached to
// a scene sensor: for every (sensor, emitter) pair it builds an
// integrated spectrum (the product of the emitter's emission spectrum
// and the sensor's sensitivity spectrum) and uses the integrated
// spectra's relative power to importance-sample an emitter, then a
// wavenumber from that emitter's integrated spectrum.
package sensor

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/spectrum"
)

// Sampler is the minimal uniform-random source the sampling operations
// need; satisfied by bsdf.Sampler and by any splittable per-worker RNG.
type Sampler interface {
	Next1D() float64
}

// Sensor is a film-backed light sensor with a wavelength-dependent
// sensitivity.
type Sensor struct {
	ID          int
	Sensitivity spectrum.Real
}

// Emitter is a light source with an emission power spectrum and, for
// direct (next-event) sampling, a world position. This is a point-
// emitter simplification; a full emitter hierarchy (area, environment,
// directional emitters) awaits a scene loader to select among kinds.
type Emitter struct {
	ID       int
	Spectrum spectrum.Real
	Position r3.Vec
}

// EmitterWavenumberSample is the result of jointly sampling an emitter
// and a wavenumber from its spectrum integrated against a sensor.
type EmitterWavenumberSample struct {
	Emitter       *Emitter
	EmitterPdf    float64
	Wavenumber    quantity.Wavenumber
	WavenumberPdf quantity.Density
}

// DirectSample is the result of sampling an emitter directly from a
// world point: a beam (direction, distance, weight) with the emitter's
// selection probability already folded into Weight, but not the
// wavelength pdf (left to the caller for MIS combination).
type DirectSample struct {
	Emitter       *Emitter
	Dir           r3.Vec
	Distance      float64
	Weight        float64
	WavenumberPdf quantity.Density
}
