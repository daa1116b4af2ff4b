/*
NAME
  bsdf_test.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bsdf

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
	"github.com/ausocean/wavetracer/texture"
)

// floatApprox is the tolerance cmp.Diff uses below for scalar and Mueller
// matrix comparisons, matching the 1e-9 slack the hand-rolled checks this
// replaces used.
var floatApprox = cmpopts.EquateApprox(0, 1e-9)

type seqSampler struct {
	vals []float64
	i    int
}

func (s *seqSampler) next() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
func (s *seqSampler) Next1D() float64        { return s.next() }
func (s *seqSampler) Next2D() (float64, float64) { return s.next(), s.next() }

func whiteTexture(v float64) *texture.Texture2D {
	s := texture.NewStorage(1, 1, texture.LayoutRGB, texture.F32, texture.LinearEncoding)
	s.WriteTexel(0, 0, texture.RGBA{R: v, G: v, B: v, A: 1})
	return texture.New(s, texture.Config{Filter: texture.Nearest, WrapU: texture.WrapClamp, WrapV: texture.WrapClamp})
}

func TestDiffuseAlbedo(t *testing.T) {
	d := &Diffuse{Reflectance: whiteTexture(0.5)}
	a, ok := d.Albedo(0)
	if !ok {
		t.Fatalf("Albedo() ok = false, want true")
	}
	if diff := cmp.Diff(0.5, a, floatApprox); diff != "" {
		t.Errorf("Albedo() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffuseFZeroBelowHorizon(t *testing.T) {
	d := &Diffuse{Reflectance: whiteTexture(0.5)}
	wi := r3.Vec{X: 0, Y: 0, Z: -0.5}
	wo := r3.Vec{X: 0, Y: 0, Z: 0.5}
	r := d.F(wi, wo, DefaultQuery(0, TransportForward))
	if diff := cmp.Diff(0.0, r.M.MeanIntensity(), floatApprox); diff != "" {
		t.Errorf("F() below horizon mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffusePdfIntegratesToOne(t *testing.T) {
	// Approximate integral of cos(theta)/pi over the hemisphere via a
	// coarse grid; should be close to 1.
	d := &Diffuse{Reflectance: whiteTexture(1)}
	wi := r3.Vec{X: 0, Y: 0, Z: 1}
	const n = 64
	sum := 0.0
	dtheta := (math.Pi / 2) / n
	dphi := (2 * math.Pi) / n
	for i := 0; i < n; i++ {
		theta := (float64(i) + 0.5) * dtheta
		for j := 0; j < n; j++ {
			phi := (float64(j) + 0.5) * dphi
			wo := r3.Vec{X: math.Sin(theta) * math.Cos(phi), Y: math.Sin(theta) * math.Sin(phi), Z: math.Cos(theta)}
			pdf := d.Pdf(wi, wo, DefaultQuery(0, TransportForward))
			sum += float64(pdf) * math.Sin(theta) * dtheta * dphi
		}
	}
	if diff := cmp.Diff(1.0, sum, cmpopts.EquateApprox(0, 0.05)); diff != "" {
		t.Errorf("integral of Pdf over hemisphere mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffuseSampleConsistentWithPdf(t *testing.T) {
	d := &Diffuse{Reflectance: whiteTexture(0.5)}
	wi := r3.Vec{X: 0, Y: 0, Z: 1}
	s := &seqSampler{vals: []float64{0.3, 0.7}}
	sample := d.Sample(wi, DefaultQuery(0, TransportForward), s)
	if sample == nil {
		t.Fatal("Sample() = nil, want a sample")
	}
	pdf := d.Pdf(wi, sample.Wo, DefaultQuery(0, TransportForward))
	if diff := cmp.Diff(float64(sample.Density), float64(pdf), floatApprox); diff != "" {
		t.Errorf("Pdf(wi,wo) mismatch against sample.Density (-want +got):\n%s", diff)
	}
}

type constReal float64

func (c constReal) Value(k quantity.Wavenumber) float64 { return float64(c) }
func (c constReal) Bounds() quantity.WavenumberRange    { return quantity.WavenumberRange{} }
func (c constReal) Power() float64                      { return 0 }
func (c constReal) PowerRange(quantity.WavenumberRange) float64 { return 0 }
func (c constReal) MeanWavenumber() float64             { return 0 }
func (c constReal) Distribution() (dist.Distribution, bool) {
	return nil, false
}

func TestDielectricIsDeltaOnly(t *testing.T) {
	d := &Dielectric{ExtIOR: constReal(1), IOR: constReal(1.5)}
	if !d.IsDeltaOnly(0) {
		t.Error("Dielectric.IsDeltaOnly() = false, want true")
	}
	r := d.F(r3.Vec{X: 0, Y: 0, Z: 1}, r3.Vec{X: 0, Y: 0, Z: 1}, DefaultQuery(0, TransportForward))
	if r.M.MeanIntensity() != 0 {
		t.Error("Dielectric.F() should be zero: delta-only BSDF")
	}
}

func TestDielectricSampleReflectsOrRefracts(t *testing.T) {
	d := &Dielectric{ExtIOR: constReal(1), IOR: constReal(1.5), TransmitScale: constReal(1)}
	wi := r3.Vec{X: 0, Y: 0, Z: 1}
	s := &seqSampler{vals: []float64{0.01}}
	sample := d.Sample(wi, DefaultQuery(0, TransportForward), s)
	if sample == nil {
		t.Fatal("Sample() = nil")
	}
	if sample.Lobe.Test(lobeReflect) == sample.Lobe.Test(lobeRefract) {
		t.Error("Dielectric.Sample() must pick exactly one of reflect/refract")
	}
}

func TestMueller(t *testing.T) {
	m := ScalarMueller(2)
	out := m.Apply([4]float64{1, 0, 0, 0})
	want := [4]float64{2, 0, 0, 0}
	if diff := cmp.Diff(want, out, floatApprox); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
	if !m.IsScalar() {
		t.Error("IsScalar() = false for a diagonal scalar matrix")
	}
	m.Scale(0.5)
	if diff := cmp.Diff(1.0, m.MeanIntensity(), floatApprox); diff != "" {
		t.Errorf("MeanIntensity() after Scale(0.5) mismatch (-want +got):\n%s", diff)
	}
}

func TestFresnelNormalIncidence(t *testing.T) {
	fr := Fresnel(1.5, 1)
	want := math.Pow((1-1.5)/(1+1.5), 2)
	got := fr.UnpolarisedReflectance()
	if diff := cmp.Diff(want, got, floatApprox); diff != "" {
		t.Errorf("UnpolarisedReflectance() mismatch (-want +got):\n%s", diff)
	}
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	// Going from dense (eta=1.5) to rare (eta=1/1.5 ratio) at a grazing
	// angle should total-internal-reflect.
	fr := Fresnel(1/1.5, 0.1)
	if fr.UnpolarisedReflectance() != 1 {
		t.Errorf("UnpolarisedReflectance() under TIR = %v, want 1", fr.UnpolarisedReflectance())
	}
}

func TestMaskNullLobeProbability(t *testing.T) {
	m := &Mask{Opacity: whiteTexture(0.5), Nested: &Diffuse{Reflectance: whiteTexture(1)}}
	wi := r3.Vec{X: 0, Y: 0, Z: 1}
	s := &seqSampler{vals: []float64{0.9, 0.1, 0.2}}
	sample := m.Sample(wi, DefaultQuery(0, TransportForward), s)
	if sample == nil {
		t.Fatal("Sample() = nil")
	}
	if !sample.Lobe.Test(m.nullLobe(0)) {
		t.Error("expected the null lobe to be selected when u >= opacity")
	}
}

func TestTwoSidedFlipsBack(t *testing.T) {
	ts := &TwoSided{Nested: &Diffuse{Reflectance: whiteTexture(0.5)}}
	wiBack := r3.Vec{X: 0, Y: 0, Z: -1}
	woBack := r3.Vec{X: 0, Y: 0, Z: -1}
	r := ts.F(wiBack, woBack, DefaultQuery(0, TransportForward))
	if r.M.MeanIntensity() <= 0 {
		t.Error("TwoSided.F() on the back face should mirror the front-face result")
	}
}

func TestCompositeDispatchesByWavenumber(t *testing.T) {
	lo := &Diffuse{Reflectance: whiteTexture(0.2)}
	hi := &Diffuse{Reflectance: whiteTexture(0.8)}
	c := NewComposite(map[quantity.WavenumberRange]BSDF{
		quantity.NewRange(quantity.Wavenumber(0), quantity.Wavenumber(10)):  lo,
		quantity.NewRange(quantity.Wavenumber(10), quantity.Wavenumber(20)): hi,
	})
	a5, _ := c.Albedo(5)
	a15, _ := c.Albedo(15)
	// whiteTexture stores F32 texels, so the albedos come back float32-rounded.
	want5, want15 := float64(float32(0.2)), float64(float32(0.8))
	if a5 != want5 || a15 != want15 {
		t.Errorf("Composite.Albedo() = (%v,%v), want (%v,%v)", a5, a15, want5, want15)
	}
	if _, ok := c.Albedo(25); ok {
		t.Error("Composite.Albedo() outside every range should report false")
	}
}

func TestCompositePanicsOnOverlap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewComposite() did not panic on overlapping ranges")
		}
	}()
	NewComposite(map[quantity.WavenumberRange]BSDF{
		quantity.NewRange(quantity.Wavenumber(0), quantity.Wavenumber(10)): &Diffuse{Reflectance: whiteTexture(0.2)},
		quantity.NewRange(quantity.Wavenumber(5), quantity.Wavenumber(20)): &Diffuse{Reflectance: whiteTexture(0.8)},
	})
}
