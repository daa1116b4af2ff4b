/*
NAME
  complex.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package spectrum

import "github.com/ausocean/wavetracer/quantity"

// ComplexConstant is a wavenumber-independent complex value, the common
// case for a dielectric's index of refraction within a narrow band.
type ComplexConstant struct {
	Value_ complex128
	Range  quantity.WavenumberRange
}

func (c ComplexConstant) Value(quantity.Wavenumber) complex128 { return c.Value_ }
func (c ComplexConstant) Bounds() quantity.WavenumberRange     { return c.Range }

// ComplexPiecewiseLinear pairs two real PiecewiseLinear spectra as the real
// and imaginary parts of a complex index of refraction measured across a
// band (e.g. a tabulated metal IOR).
type ComplexPiecewiseLinear struct {
	Re, Im *PiecewiseLinear
}

func (c ComplexPiecewiseLinear) Value(k quantity.Wavenumber) complex128 {
	return complex(c.Re.Value(k), c.Im.Value(k))
}

func (c ComplexPiecewiseLinear) Bounds() quantity.WavenumberRange { return c.Re.Bounds() }
