/*
NAME
  integrator_test.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package integrator_test

import (
	"testing"

	"github.com/ausocean/wavetracer/ads"
	"github.com/ausocean/wavetracer/integrator"
	"github.com/ausocean/wavetracer/sensor"
)

// recordingFilm captures every sample handed to it, standing in for a
// real thread-safe accumulation buffer.
type recordingFilm struct {
	samples []struct {
		block int
		pos   integrator.Position
		value []float64
	}
}

func (f *recordingFilm) AccumulateSample(block int, pos integrator.Position, value []float64) {
	f.samples = append(f.samples, struct {
		block int
		pos   integrator.Position
		value []float64
	}{block, pos, value})
}

// constantContext reports a fixed ADS, sensor and film, matching what a
// real scheduler would build once per sensor.
type constantContext struct {
	ads     *ads.BVH8W
	sampler *sensor.EmitterSampler
	film    integrator.FilmWriter
	opts    integrator.Options
}

func (c constantContext) ADS() *ads.BVH8W               { return c.ads }
func (c constantContext) Sensor() *sensor.EmitterSampler { return c.sampler }
func (c constantContext) Film() integrator.FilmWriter    { return c.film }
func (c constantContext) Options() integrator.Options    { return c.opts }

// constantIntegrator writes a fixed value to the film for every pixel,
// enough to exercise the Integrator contract without any real
// light-transport logic.
type constantIntegrator struct {
	value []float64
}

func (c constantIntegrator) Render(ctx integrator.Context, block int, pos integrator.Position, spp uint) {
	for i := uint(0); i < spp; i++ {
		ctx.Film().AccumulateSample(block, pos, c.value)
	}
}

func TestIntegratorRenderAccumulatesRequestedSamples(t *testing.T) {
	film := &recordingFilm{}
	ctx := constantContext{film: film}
	it := constantIntegrator{value: []float64{1, 0, 0}}

	it.Render(ctx, 3, integrator.Position{X: 2, Y: 5}, 4)

	if len(film.samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(film.samples))
	}
	for _, s := range film.samples {
		if s.block != 3 || s.pos != (integrator.Position{X: 2, Y: 5}) {
			t.Errorf("got sample at block %d pos %v, want block 3 pos {2 5}", s.block, s.pos)
		}
		if len(s.value) != 3 || s.value[0] != 1 {
			t.Errorf("got value %v, want [1 0 0]", s.value)
		}
	}
}

func TestContextExposesFilmAndOptions(t *testing.T) {
	film := &recordingFilm{}
	opts := integrator.Options{ForceRayTracing: true}
	ctx := constantContext{film: film, opts: opts}

	if ctx.Film() != film {
		t.Error("Context.Film() did not return the configured film")
	}
	if ctx.Options() != opts {
		t.Error("Context.Options() did not return the configured options")
	}
}
