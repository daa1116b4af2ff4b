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

package ads

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ausocean/wavetracer/isect"
)

// ConeHit is one triangle found to intersect a cone sweep.
type ConeHit struct {
	TriIndex int32
}

// ConeRange narrows a cone intersection search: callers may shrink it
// between traversal calls (e.g. after processing a batch of hits) to
// prune the remaining search window along the cone's axis.
type ConeRange struct {
	Min, Max float64
}

// shrink reports the intersection of r with a candidate [lo, hi] axial
// window.
func (r ConeRange) shrink(lo, hi float64) ConeRange {
	return ConeRange{Min: maxf(r.Min, lo), Max: minf(r.Max, hi)}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// ConeIntersect gathers every triangle whose surface meets c, within
// rng's axial window along the cone. AABBs at internal nodes are grown
// per-slab by the cone's aperture at the far edge of the slab (handled
// by isect.ConeAABB on the node's envelope). rng clips the cone's near
// and far planes once, before traversal starts; the window does not
// shrink as hits are found within a call.
func (b *BVH8W) ConeIntersect(c isect.Cone, rng ConeRange) []ConeHit {
	start := time.Now()
	defer recordConeQuery(start)

	var out []ConeHit
	if b.root == emptyChild {
		return out
	}
	c.Near = maxf(c.Near, rng.Min)
	c.Far = minf(c.Far, rng.Max)
	if c.Near > c.Far {
		return out
	}

	type frame struct {
		ptr    int32
		isLeaf bool
	}
	stack := []frame{{ptr: b.root, isLeaf: len(b.nodes) == 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.isLeaf {
			recordLeaf()
			lr := b.leaves[f.ptr]
			for i := lr.start; i < lr.start+lr.count; i++ {
				tri := b.Triangles[b.order[i]]
				// Cone-triangle is scalar: triangles within a cone leaf
				// are tested one at a time, not in 8-lane batches.
				if isect.ConeTriangle(c, tri) {
					out = append(out, ConeHit{TriIndex: b.order[i]})
				}
			}
			continue
		}

		recordInternal()
		nd := b.nodes[f.ptr]
		recordOctetTest()
		for i := 0; i < 8; i++ {
			if nd.children[i] == emptyChild {
				continue
			}
			box := laneAABB(nd.boxes, i)
			if !isect.ConeAABB(c, box) {
				continue
			}
			stack = append(stack, frame{ptr: nd.children[i], isLeaf: nd.isLeaf[i]})
		}
	}
	return out
}

func laneAABB(a isect.AABB8, lane int) isect.AABB {
	return isect.AABB{
		Min: r3.Vec{X: a.MinX[lane], Y: a.MinY[lane], Z: a.MinZ[lane]},
		Max: r3.Vec{X: a.MaxX[lane], Y: a.MaxY[lane], Z: a.MaxZ[lane]},
	}
}
