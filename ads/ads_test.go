/*
NAME
  ads_test.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ads

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/isect"
)

func gridTriangles(n int) []isect.Triangle {
	var tris []isect.Triangle
	for i := 0; i < n; i++ {
		x := float64(i) * 2
		tris = append(tris, isect.Triangle{
			A: r3.Vec{X: x, Y: -1, Z: 0},
			B: r3.Vec{X: x + 1, Y: -1, Z: 0},
			C: r3.Vec{X: x, Y: 1, Z: 0},
		})
	}
	return tris
}

func TestBuildEmpty(t *testing.T) {
	b, err := Build(nil)
	require.NoError(t, err, "Build")
	if b.root != emptyChild {
		t.Errorf("root = %v, want emptyChild", b.root)
	}
	if b.Intersect(isect.Ray{Dir: r3.Vec{X: 0, Y: 0, Z: 1}, TMax: 100}).Found {
		t.Error("Intersect() on an empty BVH found a hit")
	}
}

func TestIntersectFindsClosest(t *testing.T) {
	tris := gridTriangles(20)
	b, err := Build(tris)
	require.NoError(t, err, "Build")

	r := isect.Ray{Origin: r3.Vec{X: 0.2, Y: -0.2, Z: 5}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	h := b.Intersect(r)
	if !h.Found {
		t.Fatal("Intersect() found no hit, want a hit on the triangle at x=0")
	}
	if math.Abs(h.T-5) > 1e-9 {
		t.Errorf("T = %v, want 5", h.T)
	}
	if h.TriIndex != 0 {
		t.Errorf("TriIndex = %v, want 0", h.TriIndex)
	}
}

func TestIntersectMiss(t *testing.T) {
	tris := gridTriangles(10)
	b, err := Build(tris)
	require.NoError(t, err, "Build")
	r := isect.Ray{Origin: r3.Vec{X: 100, Y: 100, Z: 5}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	if b.Intersect(r).Found {
		t.Error("Intersect() found a hit for a ray far from all geometry")
	}
}

func TestShadowMatchesIntersect(t *testing.T) {
	tris := gridTriangles(20)
	b, err := Build(tris)
	require.NoError(t, err, "Build")

	hitRay := isect.Ray{Origin: r3.Vec{X: 0.2, Y: -0.2, Z: 5}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	if !b.Shadow(hitRay) {
		t.Error("Shadow() = false, want true")
	}

	missRay := isect.Ray{Origin: r3.Vec{X: 100, Y: 100, Z: 5}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100}
	if b.Shadow(missRay) {
		t.Error("Shadow() = true, want false")
	}
}

func TestConeIntersectGathersCandidates(t *testing.T) {
	tris := gridTriangles(10)
	b, err := Build(tris)
	require.NoError(t, err, "Build")

	c := isect.Cone{
		Apex:     r3.Vec{X: 0, Y: 0, Z: 10},
		Axis:     r3.Vec{X: 0, Y: 0, Z: -1},
		TanHalfX: 5,
		TanHalfY: 5,
		Near:     0,
		Far:      20,
	}
	hits := b.ConeIntersect(c, ConeRange{Min: 0, Max: 20})
	if len(hits) == 0 {
		t.Error("ConeIntersect() found no candidates, want a wide cone to sweep the whole grid")
	}
}

func TestConeIntersectEmptyOutsideRange(t *testing.T) {
	tris := gridTriangles(10)
	b, err := Build(tris)
	require.NoError(t, err, "Build")

	c := isect.Cone{
		Apex:     r3.Vec{X: 0, Y: 0, Z: 10},
		Axis:     r3.Vec{X: 0, Y: 0, Z: -1},
		TanHalfX: 0.01,
		TanHalfY: 0.01,
		Near:     0,
		Far:      20,
	}
	hits := b.ConeIntersect(c, ConeRange{Min: 0, Max: 2})
	if len(hits) != 0 {
		t.Errorf("ConeIntersect() = %v candidates, want none outside [0,2]", len(hits))
	}
}

func TestBallIntersectBulkAccepts(t *testing.T) {
	tris := gridTriangles(10)
	b, err := Build(tris)
	require.NoError(t, err, "Build")

	idxs := b.BallIntersect(r3.Vec{X: 0, Y: 0, Z: 0}, 0.5)
	if len(idxs) == 0 {
		t.Error("BallIntersect() found no candidates near the first triangle")
	}

	exact := b.BallIntersectExact(r3.Vec{X: 0, Y: 0, Z: 0}, 0.5)
	if len(exact) > len(idxs) {
		t.Errorf("BallIntersectExact() returned more than BallIntersect's candidates")
	}
}

func TestBuildRejectsNonFiniteVertex(t *testing.T) {
	tris := gridTriangles(4)
	tris[2].B.Y = math.NaN()
	_, err := Build(tris)
	require.Error(t, err, "Build() with a NaN vertex")
}

func TestStatsHooksFire(t *testing.T) {
	var internalVisits, leafVisits int
	OnInternalVisit = func() { internalVisits++ }
	OnLeafVisit = func() { leafVisits++ }
	defer func() { OnInternalVisit = nil; OnLeafVisit = nil }()

	tris := gridTriangles(40)
	b, err := Build(tris)
	require.NoError(t, err, "Build")
	b.Intersect(isect.Ray{Origin: r3.Vec{X: 0.2, Y: -0.2, Z: 5}, Dir: r3.Vec{X: 0, Y: 0, Z: -1}, TMin: 0, TMax: 100})

	if leafVisits == 0 {
		t.Error("OnLeafVisit never fired during a traversal that reaches a leaf")
	}
}
