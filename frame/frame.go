/*
NAME
  frame.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package frame provides right-handed orthonormal shading frames, built on
// gonum's r3.Vec, the 3-vector type shared by the intersection kernels and
// acceleration structure.
package frame

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a right-handed orthonormal basis (T, B, N): tangent, bitangent
// and normal.
type Frame struct {
	T, B, N r3.Vec
}

// FromNormal builds an arbitrary orthonormal frame around a unit normal n,
// using Duff et al.'s branchless tangent construction.
func FromNormal(n r3.Vec) Frame {
	sign := math.Copysign(1, n.Z)
	a := -1 / (sign + n.Z)
	b := n.X * n.Y * a
	t := r3.Vec{X: 1 + sign*n.X*n.X*a, Y: sign * b, Z: -sign * n.X}
	bt := r3.Vec{X: b, Y: sign + n.Y*n.Y*a, Z: -n.Y}
	return Frame{T: t, B: bt, N: n}
}

// New builds a frame from an explicit tangent and normal, re-orthonormalising
// the tangent via Gram-Schmidt and deriving the bitangent as N x T.
func New(t, n r3.Vec) Frame {
	n = r3.Unit(n)
	t = r3.Unit(r3.Sub(t, r3.Scale(r3.Dot(t, n), n)))
	b := r3.Cross(n, t)
	return Frame{T: t, B: b, N: n}
}

// ToLocal transforms a world-space direction into the frame's local basis.
func (f Frame) ToLocal(w r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(w, f.T), Y: r3.Dot(w, f.B), Z: r3.Dot(w, f.N)}
}

// ToWorld transforms a local-space direction back into world space.
func (f Frame) ToWorld(l r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(l.X, f.T), r3.Scale(l.Y, f.B)), r3.Scale(l.Z, f.N))
}

// Flip negates the normal (and bitangent, to preserve handedness), used
// when a BSDF is queried from the back side of a surface.
func (f Frame) Flip() Frame {
	return Frame{T: f.T, B: r3.Scale(-1, f.B), N: r3.Scale(-1, f.N)}
}

// CosTheta returns the cosine of the angle between a local-space direction
// and the frame's normal, i.e. simply its z component.
func CosTheta(local r3.Vec) float64 { return local.Z }
