/*
NAME
  filter.go

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

import (
	"math"
	"time"
)

// Sample filters the texture at normalized coordinates (u,v). By
// convention v is flipped (v := 1-v) before filtering.
func (t *Texture2D) Sample(u, v float64) RGBA {
	start := time.Now()
	v = 1 - v
	var c RGBA
	var taps int
	switch t.Config.Filter {
	case Nearest:
		c, taps = t.sampleNearest(u, v)
	case Bilinear:
		c, taps = t.sampleBilinear(u, v)
	case Bicubic:
		c, taps = t.sampleBicubic(u, v)
	default:
		panic("texture: unknown FilterKind")
	}
	if t.Config.ClampOutput {
		c = RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
	}
	recordFilter(taps, start)
	return c
}

func (t *Texture2D) sampleNearest(u, v float64) (RGBA, int) {
	x := int(math.Round(u*float64(t.Storage.W) - 0.5))
	y := int(math.Round(v*float64(t.Storage.H) - 0.5))
	return t.texel(x, y), 1
}

func (t *Texture2D) sampleBilinear(u, v float64) (RGBA, int) {
	fx := u*float64(t.Storage.W) - 0.5
	fy := v*float64(t.Storage.H) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := lerpRGBA(c00, c10, tx)
	bot := lerpRGBA(c01, c11, tx)
	return lerpRGBA(top, bot, ty), 4
}

func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

// sampleBicubic applies the Catmull-Rom-style 4x4 kernel row-wise then
// column-wise, asserting the result is finite on every channel.
func (t *Texture2D) sampleBicubic(u, v float64) (RGBA, int) {
	fx := u*float64(t.Storage.W) - 0.5
	fy := v*float64(t.Storage.H) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var rows [4]RGBA
	for j := -1; j <= 2; j++ {
		var p [4]RGBA
		for i := -1; i <= 2; i++ {
			p[i+1] = t.texel(x0+i, y0+j)
		}
		rows[j+1] = cubicKernel(p[0], p[1], p[2], p[3], tx)
	}
	result := cubicKernel(rows[0], rows[1], rows[2], rows[3], ty)
	if !finiteRGBA(result) {
		panic("texture: bicubic filter produced a non-finite result")
	}
	return result, 16
}

// cubicKernel applies p1 + x/2*(-p0+p2) + x^2/2*(2p0-5p1+4p2-p3) +
// x^3/2*(-p0+3p1-3p2+p3) componentwise.
func cubicKernel(p0, p1, p2, p3 RGBA, x float64) RGBA {
	f := func(a, b, c, d float64) float64 {
		return b + 0.5*x*(-a+c) + 0.5*x*x*(2*a-5*b+4*c-d) + 0.5*x*x*x*(-a+3*b-3*c+d)
	}
	return RGBA{
		R: f(p0.R, p1.R, p2.R, p3.R),
		G: f(p0.G, p1.G, p2.G, p3.G),
		B: f(p0.B, p1.B, p2.B, p3.B),
		A: f(p0.A, p1.A, p2.A, p3.A),
	}
}

func finiteRGBA(c RGBA) bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
