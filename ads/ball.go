/*
NAME
  ball.go

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

// BallIntersect gathers every triangle whose bounding volume may touch
// the ball (centre, radius): leaves that survive the node AABB test are
// bulk-accepted without a further per-triangle narrow-phase test,
// mirroring how a point-radius spatial query is used upstream purely to
// gather photon-mapping candidates rather than exact contacts.
func (b *BVH8W) BallIntersect(centre r3.Vec, radius float64) []int32 {
	start := time.Now()
	defer recordBallQuery(start)

	var out []int32
	if b.root == emptyChild {
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
				out = append(out, b.order[i])
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
			if !isect.BallAABB(centre, radius, laneAABB(nd.boxes, i)) {
				continue
			}
			stack = append(stack, frame{ptr: nd.children[i], isLeaf: nd.isLeaf[i]})
		}
	}
	return out
}

// BallIntersectExact narrows BallIntersect's bulk-accepted candidates to
// those whose triangle geometry actually meets the ball.
func (b *BVH8W) BallIntersectExact(centre r3.Vec, radius float64) []int32 {
	candidates := b.BallIntersect(centre, radius)
	out := candidates[:0]
	for _, idx := range candidates {
		if isect.BallTriangle(centre, radius, b.Triangles[idx]) {
			out = append(out, idx)
		}
	}
	return out
}
