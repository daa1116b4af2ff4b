/*
NAME
  rgb.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import (
	"math"

	"github.com/ausocean/wavetracer/quantity"
)

const (
	rgbUpliftLoNM  = 380.0
	rgbUpliftHiNM  = 780.0
	rgbUpliftStep  = 5.0 // nanometres between basis samples, matching the source table's resolution.
	rgbUpliftCount = int((rgbUpliftHiNM-rgbUpliftLoNM)/rgbUpliftStep) + 1
)

// gaussianBump is a smooth single-lobe response used by the RGB uplift
// basis below.
func gaussianBump(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

// rgbBasis returns the (r,g,b) primaries' normalized spectral response at
// wavelength nm, a smooth three-lobe approximation of a measured
// colour-matching uplift table.
func rgbBasis(nm float64) (r, g, b float64) {
	r = gaussianBump(nm, 615, 45) + 0.08*gaussianBump(nm, 450, 20)
	g = gaussianBump(nm, 545, 40)
	b = gaussianBump(nm, 460, 35) + 0.06*gaussianBump(nm, 615, 45)
	return r, g, b
}

// RGB uplifts an sRGB-like triplet into a PiecewiseLinear spectrum sampled
// every rgbUpliftStep nm across [380,780] nm, the resolution and range of
// the source's RGB->spectral uplift table.
type RGB struct {
	*PiecewiseLinear
	R, G, B float64
}

// NewRGB builds an RGB-uplifted spectrum for the given (non-negative)
// triplet.
func NewRGB(r, g, b float64) *RGB {
	ks := make([]quantity.Wavenumber, rgbUpliftCount)
	vs := make([]float64, rgbUpliftCount)
	for i := 0; i < rgbUpliftCount; i++ {
		// Sample with increasing wavenumber (decreasing wavelength), as
		// NewPiecewiseLinear requires strictly increasing x.
		nm := rgbUpliftHiNM - float64(i)*rgbUpliftStep
		ks[i] = quantity.NanometresToWavenumber(nm)
		br, bg, bb := rgbBasis(nm)
		vs[i] = r*br + g*bg + b*bb
	}
	return &RGB{PiecewiseLinear: NewPiecewiseLinear(ks, vs), R: r, G: g, B: b}
}
