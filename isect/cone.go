/*
NAME
  cone.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package isect

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cone is a generalised elliptic cone used to model beam sweeps: an
// apex, a unit axis, two half-angles (one per principal cross-section
// axis) and near/far clip distances along the axis.
type Cone struct {
	Apex        r3.Vec
	Axis        r3.Vec // unit
	TanHalfX    float64
	TanHalfY    float64
	Near, Far   float64
}

// degenerate reports whether this cone has zero aperture, i.e. is
// equivalent to a ray along Axis.
func (c Cone) degenerate() bool { return c.TanHalfX == 0 && c.TanHalfY == 0 }

// localFrame builds the cone's local frame: Z along Axis, X/Y spanning
// the elliptical cross-section.
func (c Cone) localFrame() (x, y r3.Vec) {
	up := r3.Vec{X: 0, Y: 0, Z: 1}
	if math.Abs(c.Axis.Z) > 0.99 {
		up = r3.Vec{X: 1, Y: 0, Z: 0}
	}
	x = r3.Unit(r3.Cross(up, c.Axis))
	y = r3.Cross(c.Axis, x)
	return
}

// ConeRayHit is the result of solving for a ray's intersection with the
// cone's lateral surface: the entry/exit distances along the ray,
// clipped to the cone's near/far planes.
type ConeRayHit struct {
	T0, T1 float64
	Hit    bool
}

// ConeRay solves the quadratic for a ray's intersection with the cone's
// elliptical lateral surface, honouring the apex and near/far clip
// planes via parametric line-plane tests. A degenerate (zero-aperture)
// cone falls back to treating the axis itself as the hit line.
func ConeRay(r Ray, c Cone) ConeRayHit {
	if c.degenerate() {
		return coneRayAsLine(r, c)
	}

	cx, cy := c.localFrame()
	d := r3.Sub(r.Origin, c.Apex)

	dz := r3.Dot(r.Dir, c.Axis)
	dx := r3.Dot(r.Dir, cx)
	dy := r3.Dot(r.Dir, cy)
	oz := r3.Dot(d, c.Axis)
	ox := r3.Dot(d, cx)
	oy := r3.Dot(d, cy)

	// Surface x^2/tx^2 + y^2/ty^2 = z^2, multiplied through by tx^2*ty^2.
	kx := c.TanHalfX
	ky := c.TanHalfY

	a := dx*dx*ky*ky + dy*dy*kx*kx - dz*dz*kx*kx*ky*ky
	b := 2 * (ox*dx*ky*ky + oy*dy*kx*kx - oz*dz*kx*kx*ky*ky)
	cc := ox*ox*ky*ky + oy*oy*kx*kx - oz*oz*kx*kx*ky*ky

	if math.Abs(a) < 1e-12 {
		return ConeRayHit{}
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return ConeRayHit{}
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	lo, hi, ok := clampConeInterval(r, c, t0, t1, oz, dz)
	return ConeRayHit{T0: lo, T1: hi, Hit: ok}
}

func coneRayAsLine(r Ray, c Cone) ConeRayHit {
	denom := r3.Dot(r.Dir, c.Axis)
	if math.Abs(denom) < 1e-12 {
		return ConeRayHit{}
	}
	tNear := (c.Near - r3.Dot(r3.Sub(r.Origin, c.Apex), c.Axis)) / denom
	tFar := (c.Far - r3.Dot(r3.Sub(r.Origin, c.Apex), c.Axis)) / denom
	if tNear > tFar {
		tNear, tFar = tFar, tNear
	}
	lo := math.Max(r.TMin, tNear)
	hi := math.Min(r.TMax, tFar)
	return ConeRayHit{T0: lo, T1: hi, Hit: lo <= hi}
}

// clampConeInterval enforces the apex (z>=0 along axis) and near/far
// clip planes on a candidate [t0,t1] interval, reporting whether any
// sub-interval survives within [r.TMin, r.TMax].
func clampConeInterval(r Ray, c Cone, t0, t1, oz, dz float64) (lo, hi float64, ok bool) {
	lo, hi = math.Max(r.TMin, t0), math.Min(r.TMax, t1)
	if lo > hi {
		return 0, 0, false
	}
	// z(t) = oz + t*dz must lie within [Near, Far] and z>=0 (past apex).
	zAt := func(t float64) float64 { return oz + t*dz }
	if dz == 0 && (oz < c.Near || oz > c.Far) {
		return 0, 0, false
	}
	for _, plane := range [2]float64{c.Near, c.Far} {
		if dz == 0 {
			continue
		}
		tp := (plane - oz) / dz
		if dz > 0 == (plane == c.Far) {
			hi = math.Min(hi, tp)
		} else {
			lo = math.Max(lo, tp)
		}
	}
	if lo > hi || zAt(lo) < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

// ConePlaneHit is the closed-form intersection of a cone's lateral
// surface with a plane: a distance range along the plane's own
// parametrisation is not meaningful here, so the two contact points on
// the cone boundary are returned directly. ConePlane never sets P0Inf
// or P1Inf: both points are always finite, clipped to the cone's
// near/far planes the same way ConeRay's interval is.
type ConePlaneHit struct {
	P0, P1         r3.Vec
	P0Inf, P1Inf   bool
	Hit            bool
}

// ConePlane intersects a cone with a plane (point, unit normal),
// solving the same quadratic as ConeRay but parametrised along the
// plane instead of a ray.
func ConePlane(c Cone, point, normal r3.Vec) ConePlaneHit {
	cx, cy := c.localFrame()
	// Build a ray within the plane: pick a direction orthogonal to the
	// normal, passing through the plane's closest point to the apex.
	dir := r3.Cross(normal, c.Axis)
	if r3.Norm(dir) < 1e-9 {
		dir = r3.Cross(normal, cx)
	}
	dir = r3.Unit(dir)
	r := Ray{Origin: point, Dir: dir, TMin: -1e300, TMax: 1e300}
	h := ConeRay(r, c)
	if !h.Hit {
		return ConePlaneHit{}
	}
	p0 := r3.Add(r.Origin, r3.Scale(h.T0, r.Dir))
	p1 := r3.Add(r.Origin, r3.Scale(h.T1, r.Dir))
	return ConePlaneHit{P0: p0, P1: p1, Hit: true}
}

// ConeAABB conservatively tests a cone's envelope AABB (dilated by the
// tangent of the half-angle at the far slab) against box. This envelope
// overlap is the whole test: no box-vertex, box-edge or face-plane tests
// follow, so boxes outside the cone but inside its envelope pass.
func ConeAABB(c Cone, box AABB) bool {
	env := coneEnvelopeAABB(c)
	return !(env.Max.X < box.Min.X || env.Min.X > box.Max.X ||
		env.Max.Y < box.Min.Y || env.Min.Y > box.Max.Y ||
		env.Max.Z < box.Min.Z || env.Min.Z > box.Max.Z)
}

func coneEnvelopeAABB(c Cone) AABB {
	r := c.Far * math.Max(c.TanHalfX, c.TanHalfY)
	far := r3.Add(c.Apex, r3.Scale(c.Far, c.Axis))
	min := r3.Vec{X: math.Min(c.Apex.X, far.X) - r, Y: math.Min(c.Apex.Y, far.Y) - r, Z: math.Min(c.Apex.Z, far.Z) - r}
	max := r3.Vec{X: math.Max(c.Apex.X, far.X) + r, Y: math.Max(c.Apex.Y, far.Y) + r, Z: math.Max(c.Apex.Z, far.Z) + r}
	return AABB{Min: min, Max: max}
}

// ConeTriangle tests a cone against a triangle: fast accept if any
// vertex is contained within the cone's lateral surface and clip
// planes, otherwise falls back to edge-cone tests via ConeRay on each
// of the triangle's three edges.
func ConeTriangle(c Cone, tri Triangle) bool {
	for _, v := range [3]r3.Vec{tri.A, tri.B, tri.C} {
		if coneContains(c, v) {
			return true
		}
	}
	edges := [3][2]r3.Vec{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}}
	for _, e := range edges {
		d := r3.Sub(e[1], e[0])
		length := r3.Norm(d)
		if length < 1e-12 {
			continue
		}
		r := Ray{Origin: e[0], Dir: r3.Scale(1/length, d), TMin: 0, TMax: length}
		if ConeRay(r, c).Hit {
			return true
		}
	}
	return false
}

func coneContains(c Cone, p r3.Vec) bool {
	cx, cy := c.localFrame()
	d := r3.Sub(p, c.Apex)
	z := r3.Dot(d, c.Axis)
	if z < c.Near || z > c.Far {
		return false
	}
	x := r3.Dot(d, cx)
	y := r3.Dot(d, cy)
	rx := z * c.TanHalfX
	ry := z * c.TanHalfY
	if rx == 0 || ry == 0 {
		return x == 0 && y == 0
	}
	return (x*x)/(rx*rx)+(y*y)/(ry*ry) <= 1
}
