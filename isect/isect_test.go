/*
NAME
  isect_test.go

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
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRayAABBHitsAndMisses(t *testing.T) {
	box := AABB{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	hitRay := Ray{Origin: r3.Vec{X: 0, Y: 0, Z: -5}, Dir: r3.Vec{X: 0, Y: 0, Z: 1}, TMin: 0, TMax: 100}
	h := RayAABB(hitRay, hitRay.InvDir(), box)
	if !h.Hit || math.Abs(h.MinT-4) > 1e-9 {
		t.Errorf("RayAABB() = %+v, want hit at t=4", h)
	}

	missRay := Ray{Origin: r3.Vec{X: 5, Y: 5, Z: -5}, Dir: r3.Vec{X: 0, Y: 0, Z: 1}, TMin: 0, TMax: 100}
	if RayAABB(missRay, missRay.InvDir(), box).Hit {
		t.Error("RayAABB() hit for a ray that misses the box")
	}
}

func TestRayAABB8MatchesScalar(t *testing.T) {
	box := AABB{Min: r3.Vec{X: -1, Y: -1, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	var boxes AABB8
	for i := 0; i < 8; i++ {
		boxes.MinX[i], boxes.MinY[i], boxes.MinZ[i] = box.Min.X, box.Min.Y, box.Min.Z
		boxes.MaxX[i], boxes.MaxY[i], boxes.MaxZ[i] = box.Max.X, box.Max.Y, box.Max.Z
	}
	r := Ray{Origin: r3.Vec{X: 0, Y: 0, Z: -5}, Dir: r3.Vec{X: 0, Y: 0, Z: 1}, TMin: 0, TMax: 100}
	minT, hit := RayAABB8(r, r.InvDir(), boxes)
	scalar := RayAABB(r, r.InvDir(), box)
	for i := 0; i < 8; i++ {
		laneHit := hit.MoveMask()&(1<<uint(i)) != 0
		if laneHit != scalar.Hit {
			t.Errorf("lane %d hit = %v, want %v", i, laneHit, scalar.Hit)
		}
		if math.Abs(minT[i]-scalar.MinT) > 1e-9 {
			t.Errorf("lane %d minT = %v, want %v", i, minT[i], scalar.MinT)
		}
	}
}

func TestRayTriangleBarycentric(t *testing.T) {
	tri := Triangle{A: r3.Vec{X: 0, Y: 0, Z: 0}, B: r3.Vec{X: 1, Y: 0, Z: 0}, C: r3.Vec{X: 0, Y: 1, Z: 0}}
	r := Ray{Origin: r3.Vec{X: 0.2, Y: 0.2, Z: 1}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	h := RayTriangle(r, tri)
	if !h.Hit || math.Abs(h.T-1) > 1e-9 {
		t.Fatalf("RayTriangle() = %+v, want a hit at t=1", h)
	}
	if h.U < 0 || h.V < 0 || h.U+h.V > 1 {
		t.Errorf("barycentrics out of range: u=%v v=%v", h.U, h.V)
	}
}

func TestRayTriangleMiss(t *testing.T) {
	tri := Triangle{A: r3.Vec{X: 0, Y: 0, Z: 0}, B: r3.Vec{X: 1, Y: 0, Z: 0}, C: r3.Vec{X: 0, Y: 1, Z: 0}}
	r := Ray{Origin: r3.Vec{X: 5, Y: 5, Z: 1}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	if RayTriangle(r, tri).Hit {
		t.Error("RayTriangle() hit for a ray outside the triangle")
	}
}

func TestBallAABBAndTriangle(t *testing.T) {
	box := AABB{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	if !BallAABB(r3.Vec{X: 2, Y: 0.5, Z: 0.5}, 1.5, box) {
		t.Error("BallAABB() = false, want true")
	}
	if BallAABB(r3.Vec{X: 10, Y: 10, Z: 10}, 1, box) {
		t.Error("BallAABB() = true, want false")
	}

	tri := Triangle{A: r3.Vec{X: 0, Y: 0, Z: 0}, B: r3.Vec{X: 1, Y: 0, Z: 0}, C: r3.Vec{X: 0, Y: 1, Z: 0}}
	if !BallTriangle(r3.Vec{X: 0.2, Y: 0.2, Z: 0.5}, 1, tri) {
		t.Error("BallTriangle() = false, want true")
	}
	if BallTriangle(r3.Vec{X: 100, Y: 100, Z: 100}, 1, tri) {
		t.Error("BallTriangle() = true, want false")
	}
}

func TestConeDegenerateMatchesRay(t *testing.T) {
	c := Cone{Apex: r3.Vec{X: 0, Y: 0, Z: 0}, Axis: r3.Vec{X: 0, Y: 0, Z: 1}, TanHalfX: 0, TanHalfY: 0, Near: 0, Far: 10}
	r := Ray{Origin: r3.Vec{X: 0, Y: 0, Z: -5}, Dir: r3.Vec{X: 0, Y: 0, Z: 1}, TMin: 0, TMax: 100}
	h := ConeRay(r, c)
	if !h.Hit {
		t.Fatal("ConeRay() on a degenerate cone should hit along its axis")
	}
	if math.Abs(h.T0-5) > 1e-6 {
		t.Errorf("T0 = %v, want 5", h.T0)
	}
}

func TestConeContainsApexAxisPoint(t *testing.T) {
	c := Cone{Apex: r3.Vec{}, Axis: r3.Vec{X: 0, Y: 0, Z: 1}, TanHalfX: 0.5, TanHalfY: 0.5, Near: 0, Far: 10}
	if !coneContains(c, r3.Vec{X: 0, Y: 0, Z: 5}) {
		t.Error("coneContains() on the axis should be true")
	}
	if coneContains(c, r3.Vec{X: 10, Y: 10, Z: 5}) {
		t.Error("coneContains() far outside the cone should be false")
	}
}
