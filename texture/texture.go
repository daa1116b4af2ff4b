/*
NAME
  texture.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package texture

// FilterKind is the closed set of texture filters.
type FilterKind int

const (
	Nearest FilterKind = iota
	Bilinear
	Bicubic
)

// Config holds a texture's sampling configuration.
type Config struct {
	Filter      FilterKind
	WrapU, WrapV WrapMode
	// ClampOutput, when true, clamps filtered results to [0,1] after
	// filtering (the "texel-clamp policy" from the data model).
	ClampOutput bool
}

// Texture2D owns a texel Storage plus a sampling Config, and caches
// min/max/mean over the RGBA-converted texel set.
type Texture2D struct {
	Storage *Storage
	Config  Config

	min, max, mean RGBA
	statsValid     bool
}

// New builds a Texture2D over storage with the given config, and eagerly
// computes the cached RGBA statistics.
func New(storage *Storage, cfg Config) *Texture2D {
	t := &Texture2D{Storage: storage, Config: cfg}
	t.computeStats()
	return t
}

func (t *Texture2D) computeStats() {
	w, h := t.Storage.W, t.Storage.H
	if w == 0 || h == 0 {
		t.statsValid = true
		return
	}
	mn := RGBA{R: 1e300, G: 1e300, B: 1e300, A: 1e300}
	mx := RGBA{R: -1e300, G: -1e300, B: -1e300, A: -1e300}
	var sum RGBA
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := t.Storage.layoutConversion(x, y)
			mn = RGBA{min4(mn.R, c.R), min4(mn.G, c.G), min4(mn.B, c.B), min4(mn.A, c.A)}
			mx = RGBA{max4(mx.R, c.R), max4(mx.G, c.G), max4(mx.B, c.B), max4(mx.A, c.A)}
			sum.R += c.R
			sum.G += c.G
			sum.B += c.B
			sum.A += c.A
		}
	}
	n := float64(w * h)
	t.min, t.max = mn, mx
	t.mean = RGBA{sum.R / n, sum.G / n, sum.B / n, sum.A / n}
	t.statsValid = true
}

// Min, Max, Mean return the cached RGBA statistics over the texel set.
func (t *Texture2D) Min() RGBA  { return t.min }
func (t *Texture2D) Max() RGBA  { return t.max }
func (t *Texture2D) Mean() RGBA { return t.mean }

// IsConstant reports whether every texel shares the same value, i.e. the
// cached min and max are equal.
func (t *Texture2D) IsConstant() bool {
	return t.min.R == t.max.R && t.min.G == t.max.G && t.min.B == t.max.B && t.min.A == t.max.A
}

// texel fetches the RGBA-converted texel at (x,y), applying wrap and the
// out-of-bounds sentinel for Black/White modes.
func (t *Texture2D) texel(x, y int) RGBA {
	wx, oobX := applyWrap(x, t.Storage.W, t.Config.WrapU)
	wy, oobY := applyWrap(y, t.Storage.H, t.Config.WrapV)
	if oobX || oobY {
		return t.sentinel(t.Config.WrapU, t.Config.WrapV)
	}
	return t.Storage.layoutConversion(wx, wy)
}

func (t *Texture2D) sentinel(wu, wv WrapMode) RGBA {
	hasAlpha := t.Storage.Layout == LayoutLA || t.Storage.Layout == LayoutRGBA
	a := 0.0
	if hasAlpha {
		a = 1.0
	}
	if wu == WrapWhite || wv == WrapWhite {
		return RGBA{R: 1, G: 1, B: 1, A: a}
	}
	return RGBA{R: 0, G: 0, B: 0, A: a}
}

func min4(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max4(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
