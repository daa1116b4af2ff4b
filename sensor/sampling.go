/*
NAME
  sampling.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sensor

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// spectrumTabulationPoints is the number of samples used to build each
// (sensor, emitter) integrated spectrum's piecewise-linear distribution.
const spectrumTabulationPoints = 64

// EmitterSampler implements emitter and wavenumber importance sampling for one
// sensor, built once over the scene's full emitter list.
type EmitterSampler struct {
	sensor   *Sensor
	emitters []*Emitter

	// emitterSensorSpectra[i] is the integrated (emission x sensitivity)
	// spectrum for emitters[i], used both to sample a wavenumber given
	// that emitter and to weight the emitter in the power distribution.
	emitterSensorSpectra []dist.PiecewiseLinear
	emittersPower        *dist.Discrete
}

// BuildSampler precomputes the integrated spectra and emitter power
// distribution for sensor over emitters. Panics if emitters is empty:
// a sensor with no scene emitters has nothing to sample and indicates a
// scene-construction error upstream, not a recoverable runtime state.
func BuildSampler(sensor *Sensor, emitters []*Emitter) *EmitterSampler {
	if len(emitters) == 0 {
		panic("sensor: BuildSampler: scene has no emitters for sensor")
	}

	spectra := make([]dist.PiecewiseLinear, len(emitters))
	power := make([]float64, len(emitters))
	idx := make([]float64, len(emitters))

	for i, em := range emitters {
		rng := em.Spectrum.Bounds().Intersect(sensor.Sensitivity.Bounds())
		if rng.Empty() {
			// No spectral overlap: a flat zero distribution contributes
			// zero power and is never selected.
			rng = em.Spectrum.Bounds()
		}
		xs := make([]float64, spectrumTabulationPoints+1)
		ys := make([]float64, spectrumTabulationPoints+1)
		lo, hi := float64(rng.Min), float64(rng.Max)
		step := (hi - lo) / float64(spectrumTabulationPoints)
		for j := range xs {
			k := quantity.Wavenumber(lo + float64(j)*step)
			xs[j] = float64(k)
			ys[j] = em.Spectrum.Value(k) * sensor.Sensitivity.Value(k)
		}
		flattenDegenerate(ys)
		pwl := dist.NewPiecewiseLinear(xs, ys)
		spectra[i] = pwl
		power[i] = pwl.RawTotal()
		idx[i] = float64(i)
	}

	return &EmitterSampler{
		sensor:               sensor,
		emitters:             emitters,
		emitterSensorSpectra: spectra,
		emittersPower:        dist.NewDiscrete(idx, power),
	}
}

// flattenDegenerate nudges an all-zero tabulation to a tiny uniform
// floor, so every integrated spectrum has a positive total mass and the
// emitter power distribution never has all-zero weights.
func flattenDegenerate(ys []float64) {
	for _, y := range ys {
		if y > 0 {
			return
		}
	}
	const floor = 1e-300
	for i := range ys {
		ys[i] = floor
	}
}

func (s *EmitterSampler) indexOf(e *Emitter) int {
	for i, em := range s.emitters {
		if em == e {
			return i
		}
	}
	panic("sensor: emitter does not belong to this sampler's scene")
}

// SampleEmitterAndSpectrum samples an emitter by importance (weighted
// by its integrated spectral power seen by the sensor) and then a
// wavenumber from that emitter's integrated spectrum.
func (s *EmitterSampler) SampleEmitterAndSpectrum(sampler Sampler) EmitterWavenumberSample {
	es := s.emittersPower.Sample(sampler.Next1D())
	i := int(es.X)
	emitter := s.emitters[i]

	ws := s.emitterSensorSpectra[i].Sample(sampler.Next1D())
	return EmitterWavenumberSample{
		Emitter:       emitter,
		EmitterPdf:    es.Pdf,
		Wavenumber:    quantity.Wavenumber(ws.X),
		WavenumberPdf: quantity.Density(ws.Pdf),
	}
}

// SampleEmitterDirect samples an emitter directly from a world point:
// the emitter is chosen the same way as SampleEmitterAndSpectrum, but
// the returned beam's direction/distance point from worldPoint toward
// the (point-emitter) source, and Weight already folds in 1/EmitterPdf
// and the emitter's spectral value at k, leaving only the wavelength
// pdf for the caller to combine via MIS.
func (s *EmitterSampler) SampleEmitterDirect(worldPoint r3.Vec, k quantity.Wavenumber, sampler Sampler) DirectSample {
	es := s.emittersPower.Sample(sampler.Next1D())
	i := int(es.X)
	emitter := s.emitters[i]

	d := r3.Sub(emitter.Position, worldPoint)
	dist2 := r3.Dot(d, d)
	distance := r3.Norm(d)
	if distance < 1e-12 {
		return DirectSample{Emitter: emitter, WavenumberPdf: 0}
	}
	dir := r3.Scale(1/distance, d)

	radiance := emitter.Spectrum.Value(k)
	weight := radiance / (es.Pdf * dist2)

	wpdf := s.emitterSensorSpectra[i].Pdf(float64(k), dist.Continuous)
	return DirectSample{
		Emitter:       emitter,
		Dir:           dir,
		Distance:      distance,
		Weight:        weight,
		WavenumberPdf: quantity.Density(wpdf),
	}
}

// PdfEmitter is the probability mass of sampling emitter for this sensor.
func (s *EmitterSampler) PdfEmitter(emitter *Emitter) float64 {
	i := s.indexOf(emitter)
	_, pmf := s.emittersPower.Atoms()
	return pmf[i]
}

// PdfSpectralSample is the probability density of wavenumber k given
// emitter, for this sensor.
func (s *EmitterSampler) PdfSpectralSample(emitter *Emitter, k quantity.Wavenumber) quantity.Density {
	i := s.indexOf(emitter)
	return quantity.Density(s.emitterSensorSpectra[i].Pdf(float64(k), dist.Continuous))
}

// SumSpectralPdfForAllEmitters sums pdf_emitter * pdf_spectral_sample
// over every scene emitter, for multiple-importance-sampling weights.
func (s *EmitterSampler) SumSpectralPdfForAllEmitters(k quantity.Wavenumber) quantity.Density {
	_, pmf := s.emittersPower.Atoms()
	var sum float64
	for i := range s.emitters {
		sum += pmf[i] * s.emitterSensorSpectra[i].Pdf(float64(k), dist.Continuous)
	}
	return quantity.Density(sum)
}
