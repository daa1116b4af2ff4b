/*
NAME
  bvh.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ads implements BVH8W, an 8-way bounding volume hierarchy laid
// out for SIMD traversal, plus its three traversal routines (ray, cone,
// ball) built on the isect package's intersection kernels.
package ads

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/isect"
)

// emptyChild is the sentinel pointer value marking an unused child slot.
const emptyChild = -1

// leafTriangleBudget is the aggregate triangle count at or below which a
// node is built/traversed as a leaf rather than split further.
const leafTriangleBudget = 16

// node is one BVH8W node: up to 8 children, each either an internal
// node index or a leaf's triangle range, with AABBs stored as three
// 8-lane min/max pairs for one-shot ray-octet tests.
type node struct {
	boxes isect.AABB8
	// children[i] >= 0 and isLeaf[i] == false: index into nodes.
	// children[i] >= 0 and isLeaf[i] == true: index into leaves.
	// children[i] == emptyChild: unused slot.
	children [8]int32
	isLeaf   [8]bool
}

type leafRange struct {
	start, count int32
}

// BVH8W is an 8-way BVH over a triangle soup.
type BVH8W struct {
	Triangles  []isect.Triangle
	nodes      []node
	leaves     []leafRange
	order      []int32 // triangle indices permuted by the build, leaves index into this
	root       int32
}

// Build constructs a BVH8W over tris using a recursive median-split
// build: at each node, triangles are sorted along the box's longest
// axis by centroid and split into up to 8 roughly equal buckets.
//
// Build rejects any triangle with a non-finite vertex up front: the
// longest-axis split and AABB merge below use math.Min/math.Max, which
// propagate a NaN silently into every ancestor box rather than failing
// where the bad geometry entered, and a cone or ray query against a
// NaN-poisoned box never reports a hit. Build's error, wrapped with
// github.com/pkg/errors to keep the offending triangle's index visible
// through the recursive build, is the only place this invariant can be
// caught near its source.
func Build(tris []isect.Triangle) (*BVH8W, error) {
	for i, t := range tris {
		if !finiteTriangle(t) {
			return nil, errors.Errorf("ads: Build: triangle %d has a non-finite vertex", i)
		}
	}
	b := &BVH8W{Triangles: tris}
	order := make([]int32, len(tris))
	for i := range order {
		order[i] = int32(i)
	}
	b.order = order
	if len(tris) == 0 {
		b.root = emptyChild
		return b, nil
	}
	b.root = b.build(0, int32(len(tris)))
	return b, nil
}

func finiteTriangle(t isect.Triangle) bool {
	for _, v := range [3]r3.Vec{t.A, t.B, t.C} {
		if math.IsNaN(v.X) || math.IsInf(v.X, 0) ||
			math.IsNaN(v.Y) || math.IsInf(v.Y, 0) ||
			math.IsNaN(v.Z) || math.IsInf(v.Z, 0) {
			return false
		}
	}
	return true
}

func (b *BVH8W) centroid(i int32) r3.Vec {
	t := b.Triangles[b.order[i]]
	return r3.Scale(1.0/3.0, r3.Add(r3.Add(t.A, t.B), t.C))
}

func (b *BVH8W) boundsOf(start, end int32) isect.AABB {
	box := isect.AABB{Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}, Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}}
	for i := start; i < end; i++ {
		t := b.Triangles[b.order[i]]
		for _, v := range [3]r3.Vec{t.A, t.B, t.C} {
			box.Min = r3.Vec{X: math.Min(box.Min.X, v.X), Y: math.Min(box.Min.Y, v.Y), Z: math.Min(box.Min.Z, v.Z)}
			box.Max = r3.Vec{X: math.Max(box.Max.X, v.X), Y: math.Max(box.Max.Y, v.Y), Z: math.Max(box.Max.Z, v.Z)}
		}
	}
	return box
}

// build recursively constructs the subtree over order[start:end],
// returning an index into b.nodes for an internal node, or an index
// into b.leaves when the range holds leafTriangleBudget triangles or
// fewer. The root is read as a leaf index exactly when b.nodes is empty.
func (b *BVH8W) build(start, end int32) int32 {
	n := end - start
	if n <= leafTriangleBudget {
		return b.makeLeafNode(start, end)
	}

	box := b.boundsOf(start, end)
	axis := longestAxis(box)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = start + int32(i)
	}
	sort.Slice(idx, func(i, j int) bool {
		return axisOf(b.centroid(idx[i]), axis) < axisOf(b.centroid(idx[j]), axis)
	})
	// idx holds the sorted original positions; resolve through b.order
	// before overwriting it in place.
	tmp := make([]int32, n)
	for i, v := range idx {
		tmp[i] = b.order[v]
	}
	copy(b.order[start:end], tmp)

	var nd node
	for i := range nd.children {
		nd.children[i] = emptyChild
	}
	buckets := splitBuckets(n, 8)
	nodeIdx := int32(len(b.nodes))
	b.nodes = append(b.nodes, node{})

	s := start
	for i, count := range buckets {
		if count == 0 {
			continue
		}
		e := s + count
		childBox := b.boundsOf(s, e)
		setAABB8Lane(&nd.boxes, i, childBox)
		if e-s <= leafTriangleBudget {
			nd.children[i] = b.makeLeafNode(s, e)
			nd.isLeaf[i] = true
		} else {
			nd.children[i] = b.build(s, e)
			nd.isLeaf[i] = false
		}
		s = e
	}
	b.nodes[nodeIdx] = nd
	return nodeIdx
}

func (b *BVH8W) makeLeafNode(start, end int32) int32 {
	idx := int32(len(b.leaves))
	b.leaves = append(b.leaves, leafRange{start: start, count: end - start})
	return idx
}

// splitBuckets divides n items into up to k nearly-equal positive
// bucket sizes.
func splitBuckets(n int32, k int) []int32 {
	out := make([]int32, k)
	base := n / int32(k)
	rem := n % int32(k)
	for i := range out {
		out[i] = base
		if int32(i) < rem {
			out[i]++
		}
	}
	return out
}

func longestAxis(box isect.AABB) int {
	ext := r3.Sub(box.Max, box.Min)
	if ext.X >= ext.Y && ext.X >= ext.Z {
		return 0
	}
	if ext.Y >= ext.Z {
		return 1
	}
	return 2
}

func axisOf(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setAABB8Lane(a *isect.AABB8, lane int, box isect.AABB) {
	a.MinX[lane], a.MinY[lane], a.MinZ[lane] = box.Min.X, box.Min.Y, box.Min.Z
	a.MaxX[lane], a.MaxY[lane], a.MaxZ[lane] = box.Max.X, box.Max.Y, box.Max.Z
}

// Stats hooks, opt-in and nil by default: leaf/internal visits, AABB
// tests counted by octets, elapsed traversal time per query class.
var (
	OnOctetTest     func(octets int)
	OnLeafVisit     func()
	OnInternalVisit func()
	OnRayQuery      func(elapsed time.Duration)
	OnConeQuery     func(elapsed time.Duration)
	OnBallQuery     func(elapsed time.Duration)
)

func recordLeaf() {
	if OnLeafVisit != nil {
		OnLeafVisit()
	}
}
func recordInternal() {
	if OnInternalVisit != nil {
		OnInternalVisit()
	}
}
func recordOctetTest() {
	if OnOctetTest != nil {
		OnOctetTest(1)
	}
}
func recordRayQuery(start time.Time) {
	if OnRayQuery != nil {
		OnRayQuery(time.Since(start))
	}
}
func recordConeQuery(start time.Time) {
	if OnConeQuery != nil {
		OnConeQuery(time.Since(start))
	}
}
func recordBallQuery(start time.Time) {
	if OnBallQuery != nil {
		OnBallQuery(time.Since(start))
	}
}
