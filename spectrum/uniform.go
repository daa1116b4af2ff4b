/*
NAME
  uniform.go

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

// Uniform is a flat spectrum with average power avgPwr over Range.
type Uniform struct {
	AvgPwr float64
	Range  quantity.WavenumberRange
	d      dist.Uniform
}

// NewUniform builds a Uniform spectrum. Panics if r is empty.
func NewUniform(avgPwr float64, r quantity.WavenumberRange) *Uniform {
	return &Uniform{AvgPwr: avgPwr, Range: r, d: dist.NewUniform(float64(r.Min), float64(r.Max))}
}

func (u *Uniform) Value(k quantity.Wavenumber) float64 {
	if !u.Range.Contains(k) {
		return 0
	}
	return u.AvgPwr
}

func (u *Uniform) Bounds() quantity.WavenumberRange { return u.Range }

func (u *Uniform) Power() float64 { return u.AvgPwr * float64(u.Range.Length()) }

func (u *Uniform) PowerRange(r quantity.WavenumberRange) float64 {
	ov := u.Range.Intersect(r)
	return u.AvgPwr * float64(ov.Length())
}

func (u *Uniform) MeanWavenumber() float64 { return float64(u.Range.Centre()) }

func (u *Uniform) Distribution() (dist.Distribution, bool) { return u.d, true }
