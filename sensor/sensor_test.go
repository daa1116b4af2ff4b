/*
NAME
  sensor_test.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sensor

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/spectrum"
)

// seqSampler replays a fixed sequence of uniforms, for deterministic tests.
type seqSampler struct {
	vals []float64
	i    int
}

func (s *seqSampler) Next1D() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func testSensor() *Sensor {
	return &Sensor{ID: 0, Sensitivity: spectrum.NewUniform(1, quantity.NewRange[quantity.Wavenumber](1, 3))}
}

func testEmitters() []*Emitter {
	return []*Emitter{
		{ID: 0, Spectrum: spectrum.NewUniform(10, quantity.NewRange[quantity.Wavenumber](1, 2)), Position: r3.Vec{X: 1, Y: 0, Z: 0}},
		{ID: 1, Spectrum: spectrum.NewUniform(1, quantity.NewRange[quantity.Wavenumber](2, 3)), Position: r3.Vec{X: 0, Y: 1, Z: 0}},
	}
}

func TestBuildSamplerWeightsByPower(t *testing.T) {
	s := BuildSampler(testSensor(), testEmitters())
	p0 := s.PdfEmitter(s.emitters[0])
	p1 := s.PdfEmitter(s.emitters[1])
	if p0 <= p1 {
		t.Errorf("PdfEmitter(brighter emitter) = %v, want > PdfEmitter(dimmer) = %v", p0, p1)
	}
	if math.Abs(p0+p1-1) > 1e-9 {
		t.Errorf("emitter pdfs sum to %v, want 1", p0+p1)
	}
}

func TestSampleEmitterAndSpectrumPicksWithinRange(t *testing.T) {
	s := BuildSampler(testSensor(), testEmitters())
	sampler := &seqSampler{vals: []float64{0.01, 0.5}}
	res := s.SampleEmitterAndSpectrum(sampler)
	if res.Emitter == nil {
		t.Fatal("SampleEmitterAndSpectrum() returned a nil emitter")
	}
	lo, hi := res.Emitter.Spectrum.Bounds().Min, res.Emitter.Spectrum.Bounds().Max
	if res.Wavenumber < lo || res.Wavenumber > hi {
		t.Errorf("Wavenumber = %v, want within [%v,%v]", res.Wavenumber, lo, hi)
	}
	if res.WavenumberPdf <= 0 {
		t.Errorf("WavenumberPdf = %v, want > 0", res.WavenumberPdf)
	}
}

func TestSampleEmitterDirectPointsAtEmitter(t *testing.T) {
	s := BuildSampler(testSensor(), testEmitters())
	sampler := &seqSampler{vals: []float64{0.01}}
	ds := s.SampleEmitterDirect(r3.Vec{X: 0, Y: 0, Z: 0}, quantity.Wavenumber(1.5), sampler)
	if ds.Distance <= 0 {
		t.Fatalf("Distance = %v, want > 0", ds.Distance)
	}
	want := r3.Unit(ds.Emitter.Position)
	if r3.Norm(r3.Sub(ds.Dir, want)) > 1e-9 {
		t.Errorf("Dir = %v, want %v", ds.Dir, want)
	}
}

func TestSumSpectralPdfForAllEmittersMatchesManualSum(t *testing.T) {
	s := BuildSampler(testSensor(), testEmitters())
	k := quantity.Wavenumber(1.5)
	var want quantity.Density
	for _, em := range s.emitters {
		want += quantity.Density(s.PdfEmitter(em)) * s.PdfSpectralSample(em, k)
	}
	got := s.SumSpectralPdfForAllEmitters(k)
	if math.Abs(float64(got-want)) > 1e-9 {
		t.Errorf("SumSpectralPdfForAllEmitters() = %v, want %v", got, want)
	}
}

func TestBuildSamplerPanicsOnNoEmitters(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BuildSampler() with no emitters did not panic")
		}
	}()
	BuildSampler(testSensor(), nil)
}
