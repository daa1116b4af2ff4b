/*
NAME
  mueller.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bsdf

import "gonum.org/v1/gonum/mat"

// MuellerOperator is a 4x4 linear map on Stokes vectors describing a
// polarimetric light-matter interaction.
type MuellerOperator struct {
	m *mat.Dense
}

// IdentityMueller returns the identity operator: light passes through
// unmodified.
func IdentityMueller() MuellerOperator {
	return ScalarMueller(1)
}

// ZeroMueller returns the null operator: no light transported.
func ZeroMueller() MuellerOperator {
	return MuellerOperator{m: mat.NewDense(4, 4, nil)}
}

// ScalarMueller returns s*I, the Mueller operator for an unpolarised
// interaction that merely scales intensity by s. It is still stored and
// applied as a full 4x4 matrix.
func ScalarMueller(s float64) MuellerOperator {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, s)
	}
	return MuellerOperator{m: d}
}

// NewMueller builds a Mueller operator from sixteen row-major entries.
func NewMueller(entries [16]float64) MuellerOperator {
	return MuellerOperator{m: mat.NewDense(4, 4, entries[:])}
}

// IsScalar reports whether m is diagonal with four equal entries, i.e.
// representable as a bare intensity scale.
func (m MuellerOperator) IsScalar() bool {
	v := m.m.At(0, 0)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = v
			}
			if m.m.At(i, j) != want {
				return false
			}
		}
	}
	return true
}

// MeanIntensity applies m to an unpolarised unit-intensity Stokes vector
// (1,0,0,0) and returns the resulting intensity (the S0 component).
func (m MuellerOperator) MeanIntensity() float64 {
	return m.m.At(0, 0)
}

// Apply applies the Mueller operator to a Stokes vector s = (S0,S1,S2,S3).
func (m MuellerOperator) Apply(s [4]float64) [4]float64 {
	var v mat.VecDense
	v.MulVec(m.m, mat.NewVecDense(4, s[:]))
	return [4]float64{v.AtVec(0), v.AtVec(1), v.AtVec(2), v.AtVec(3)}
}

// Mul returns the operator composition a then b applied, i.e. b*a in
// matrix terms (a is applied to the light first).
func Mul(a, b MuellerOperator) MuellerOperator {
	var out mat.Dense
	out.Mul(b.m, a.m)
	return MuellerOperator{m: &out}
}

// Scale multiplies every entry by s in place, mirroring
// original_source's `M *= scalar` used by the scale() composition.
func (m *MuellerOperator) Scale(s float64) {
	m.m.Scale(s, m.m)
}

// At returns entry (i,j).
func (m MuellerOperator) At(i, j int) float64 { return m.m.At(i, j) }
