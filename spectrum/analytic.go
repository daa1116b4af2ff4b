/*
NAME
  analytic.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import (
	"github.com/ausocean/wavetracer/dist"
	"github.com/ausocean/wavetracer/quantity"
)

// Analytic is a spectrum defined by an arbitrary user closure, with no
// associated distribution and no well-defined power (e.g. a Fresnel term
// used only as a multiplicative factor, never sampled directly).
type Analytic struct {
	Range quantity.WavenumberRange
	Fn    func(quantity.Wavenumber) float64
}

// NewAnalytic builds an Analytic spectrum over r using fn.
func NewAnalytic(r quantity.WavenumberRange, fn func(quantity.Wavenumber) float64) *Analytic {
	return &Analytic{Range: r, Fn: fn}
}

func (a *Analytic) Value(k quantity.Wavenumber) float64 {
	if !a.Range.Contains(k) {
		return 0
	}
	return a.Fn(k)
}

func (a *Analytic) Bounds() quantity.WavenumberRange { return a.Range }

// Power and PowerRange are undefined for an analytic spectrum; the source
// does not support integrating an arbitrary closure, so both return 0.
func (a *Analytic) Power() float64                                  { return 0 }
func (a *Analytic) PowerRange(r quantity.WavenumberRange) float64   { return 0 }
func (a *Analytic) MeanWavenumber() float64                         { return float64(a.Range.Centre()) }
func (a *Analytic) Distribution() (dist.Distribution, bool)         { return nil, false }
