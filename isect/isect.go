/*
NAME
  isect.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package isect implements the ray/cone/ball intersection kernels the
// acceleration structure traverses: ray-AABB, ray-triangle, ray-plane,
// edge-plane, elliptic cone variants, and ball queries. Each kernel is
// provided in a scalar form and, where the acceleration structure needs
// to test eight children or triangles at once, an 8-lane form built on
// the wide package.
package isect

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/wide"
)

// Ray is a parametric ray origin + direction, queried over a closed
// distance interval [TMin, TMax].
type Ray struct {
	Origin, Dir  r3.Vec
	TMin, TMax   float64
}

// InvDir precomputes the componentwise reciprocal direction used by the
// Kay-Kajiya slab test.
func (r Ray) InvDir() r3.Vec {
	return r3.Vec{X: 1 / r.Dir.X, Y: 1 / r.Dir.Y, Z: 1 / r.Dir.Z}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max r3.Vec
}

// Triangle is a triangle soup element referenced by its three vertices.
type Triangle struct {
	A, B, C r3.Vec
}

// RayAABBHit is the fast Kay-Kajiya slab test result.
type RayAABBHit struct {
	MinT float64
	Hit  bool
}

// RayAABB performs the Kay-Kajiya slab test using a precomputed inverse
// ray direction.
func RayAABB(r Ray, invDir r3.Vec, box AABB) RayAABBHit {
	t0x := (box.Min.X - r.Origin.X) * invDir.X
	t1x := (box.Max.X - r.Origin.X) * invDir.X
	if t0x > t1x {
		t0x, t1x = t1x, t0x
	}
	t0y := (box.Min.Y - r.Origin.Y) * invDir.Y
	t1y := (box.Max.Y - r.Origin.Y) * invDir.Y
	if t0y > t1y {
		t0y, t1y = t1y, t0y
	}
	t0z := (box.Min.Z - r.Origin.Z) * invDir.Z
	t1z := (box.Max.Z - r.Origin.Z) * invDir.Z
	if t0z > t1z {
		t0z, t1z = t1z, t0z
	}

	tmin := math.Max(r.TMin, math.Max(t0x, math.Max(t0y, t0z)))
	tmax := math.Min(r.TMax, math.Min(t1x, math.Min(t1y, t1z)))
	return RayAABBHit{MinT: tmin, Hit: tmin <= tmax}
}

// AABB8 holds 8 boxes' per-axis min/max in lane form, one lane per box,
// for the 8-wide RayAABB8.
type AABB8 struct {
	MinX, MinY, MinZ wide.Lanes8
	MaxX, MaxY, MaxZ wide.Lanes8
}

// RayAABB8 tests a ray against 8 AABBs simultaneously, returning the
// entry distance per lane and a hit mask.
func RayAABB8(r Ray, invDir r3.Vec, boxes AABB8) (minT wide.Lanes8, hit wide.Mask8) {
	ox, oy, oz := wide.Broadcast8(r.Origin.X), wide.Broadcast8(r.Origin.Y), wide.Broadcast8(r.Origin.Z)
	ix, iy, iz := wide.Broadcast8(invDir.X), wide.Broadcast8(invDir.Y), wide.Broadcast8(invDir.Z)

	t0x := boxes.MinX.Sub(ox).Mul(ix)
	t1x := boxes.MaxX.Sub(ox).Mul(ix)
	t0x, t1x = t0x.Min(t1x), t0x.Max(t1x)

	t0y := boxes.MinY.Sub(oy).Mul(iy)
	t1y := boxes.MaxY.Sub(oy).Mul(iy)
	t0y, t1y = t0y.Min(t1y), t0y.Max(t1y)

	t0z := boxes.MinZ.Sub(oz).Mul(iz)
	t1z := boxes.MaxZ.Sub(oz).Mul(iz)
	t0z, t1z = t0z.Min(t1z), t0z.Max(t1z)

	tminLane := wide.Broadcast8(r.TMin).Max(t0x).Max(t0y).Max(t0z)
	tmaxLane := wide.Broadcast8(r.TMax).Min(t1x).Min(t1y).Min(t1z)

	return tminLane, tminLane.Le(tmaxLane)
}

// TriangleHit is the Möller-Trumbore result: distance and barycentrics.
type TriangleHit struct {
	T, U, V float64
	Hit     bool
}

// RayTriangle is Möller-Trumbore ray-triangle intersection, with
// back-face handling driven by the sign of dot(n, d) rather than culling.
func RayTriangle(r Ray, tri Triangle) TriangleHit {
	const eps = 1e-9
	e1 := r3.Sub(tri.B, tri.A)
	e2 := r3.Sub(tri.C, tri.A)
	p := r3.Cross(r.Dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < eps {
		return TriangleHit{}
	}
	invDet := 1 / det
	t0 := r3.Sub(r.Origin, tri.A)
	u := r3.Dot(t0, p) * invDet
	if u < 0 || u > 1 {
		return TriangleHit{}
	}
	q := r3.Cross(t0, e1)
	v := r3.Dot(r.Dir, q) * invDet
	if v < 0 || u+v > 1 {
		return TriangleHit{}
	}
	t := r3.Dot(e2, q) * invDet
	if t < r.TMin || t > r.TMax {
		return TriangleHit{}
	}
	return TriangleHit{T: t, U: u, V: v, Hit: true}
}

// PlaneHit is a ray-plane intersection distance.
type PlaneHit struct {
	T   float64
	Hit bool
}

// RayPlane intersects a ray with a plane given by a point and unit
// normal.
func RayPlane(r Ray, point, normal r3.Vec) PlaneHit {
	denom := r3.Dot(normal, r.Dir)
	if math.Abs(denom) < 1e-12 {
		return PlaneHit{}
	}
	t := r3.Dot(r3.Sub(point, r.Origin), normal) / denom
	if t < r.TMin || t > r.TMax {
		return PlaneHit{}
	}
	return PlaneHit{T: t, Hit: true}
}

// EdgePlane intersects a line segment (edge) with a plane, returning
// the interpolation parameter along the edge in [0,1] on hit.
func EdgePlane(a, b r3.Vec, point, normal r3.Vec) (s float64, hit bool) {
	d := r3.Sub(b, a)
	denom := r3.Dot(normal, d)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	s = r3.Dot(r3.Sub(point, a), normal) / denom
	return s, s >= 0 && s <= 1
}

// BallAABB reports whether a ball (centre, radius) can intersect box,
// via the closest-point-on-box distance test.
func BallAABB(centre r3.Vec, radius float64, box AABB) bool {
	d2 := 0.0
	for _, axis := range [3]struct{ c, lo, hi float64 }{
		{centre.X, box.Min.X, box.Max.X},
		{centre.Y, box.Min.Y, box.Max.Y},
		{centre.Z, box.Min.Z, box.Max.Z},
	} {
		if axis.c < axis.lo {
			d2 += (axis.lo - axis.c) * (axis.lo - axis.c)
		} else if axis.c > axis.hi {
			d2 += (axis.c - axis.hi) * (axis.c - axis.hi)
		}
	}
	return d2 <= radius*radius
}

// BallTriangle reports whether a ball intersects a triangle, via the
// closest point on the triangle to the ball's centre.
func BallTriangle(centre r3.Vec, radius float64, tri Triangle) bool {
	p := closestPointOnTriangle(centre, tri)
	d := r3.Sub(p, centre)
	return r3.Dot(d, d) <= radius*radius
}

func closestPointOnTriangle(p r3.Vec, tri Triangle) r3.Vec {
	ab := r3.Sub(tri.B, tri.A)
	ac := r3.Sub(tri.C, tri.A)
	ap := r3.Sub(p, tri.A)

	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return tri.A
	}

	bp := r3.Sub(p, tri.B)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return tri.B
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return r3.Add(tri.A, r3.Scale(v, ab))
	}

	cp := r3.Sub(p, tri.C)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return tri.C
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return r3.Add(tri.A, r3.Scale(w, ac))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return r3.Add(tri.B, r3.Scale(w, r3.Sub(tri.C, tri.B)))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(tri.A, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}
