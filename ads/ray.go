/*
NAME
  ray.go

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
	"sort"
	"time"

	"github.com/ausocean/wavetracer/isect"
)

// Hit is the result of a ray query against a BVH8W: the hit triangle's
// index into b.Triangles, the distance, and Möller-Trumbore barycentrics.
type Hit struct {
	TriIndex int32
	T, U, V  float64
	Found    bool
}

type stackEntry struct {
	ptr   int32
	isLeaf bool
	minT  float64
}

// Intersect finds the closest triangle hit by r, tightening TMax as
// candidates are found. A node's intersected children are sorted by
// descending minT before being pushed, so the nearest child is pushed
// last and visited first.
func (b *BVH8W) Intersect(r isect.Ray) Hit {
	start := time.Now()
	defer recordRayQuery(start)

	var out Hit
	if b.root == emptyChild {
		return out
	}
	invDir := r.InvDir()
	stack := make([]stackEntry, 0, 64)
	stack = append(stack, stackEntry{ptr: b.root, isLeaf: len(b.nodes) == 0})

	tmax := r.TMax

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.minT > tmax {
			continue
		}

		if e.isLeaf {
			recordLeaf()
			lr := b.leaves[e.ptr]
			for i := lr.start; i < lr.start+lr.count; i++ {
				tri := b.Triangles[b.order[i]]
				test := isect.Ray{Origin: r.Origin, Dir: r.Dir, TMin: r.TMin, TMax: tmax}
				h := isect.RayTriangle(test, tri)
				if h.Hit && h.T < tmax {
					tmax = h.T
					out = Hit{TriIndex: b.order[i], T: h.T, U: h.U, V: h.V, Found: true}
				}
			}
			continue
		}

		recordInternal()
		nd := b.nodes[e.ptr]
		recordOctetTest()
		minT, hitMask := isect.RayAABB8(isect.Ray{Origin: r.Origin, Dir: r.Dir, TMin: r.TMin, TMax: tmax}, invDir, nd.boxes)

		type candidate struct {
			ptr    int32
			isLeaf bool
			minT   float64
		}
		var cands []candidate
		mask := hitMask.MoveMask()
		for i := 0; i < 8; i++ {
			if mask&(1<<uint(i)) == 0 || nd.children[i] == emptyChild {
				continue
			}
			cands = append(cands, candidate{ptr: nd.children[i], isLeaf: nd.isLeaf[i], minT: minT[i]})
		}
		// Insertion sort over at most 8 entries, descending distance so
		// the nearest ends up pushed last (popped first).
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].minT > cands[j].minT })
		for _, c := range cands {
			stack = append(stack, stackEntry{ptr: c.ptr, isLeaf: c.isLeaf, minT: c.minT})
		}
	}
	return out
}

// Shadow is the short-circuiting variant of Intersect: it returns as
// soon as any triangle is found within r's interval, without computing
// barycentrics or the closest distance.
func (b *BVH8W) Shadow(r isect.Ray) bool {
	start := time.Now()
	defer recordRayQuery(start)

	if b.root == emptyChild {
		return false
	}
	invDir := r.InvDir()
	stack := make([]int32, 0, 64)
	stackLeaf := make([]bool, 0, 64)
	stack = append(stack, b.root)
	stackLeaf = append(stackLeaf, len(b.nodes) == 0)

	for len(stack) > 0 {
		ptr := stack[len(stack)-1]
		leaf := stackLeaf[len(stackLeaf)-1]
		stack = stack[:len(stack)-1]
		stackLeaf = stackLeaf[:len(stackLeaf)-1]

		if leaf {
			recordLeaf()
			lr := b.leaves[ptr]
			for i := lr.start; i < lr.start+lr.count; i++ {
				tri := b.Triangles[b.order[i]]
				if isect.RayTriangle(r, tri).Hit {
					return true
				}
			}
			continue
		}

		recordInternal()
		nd := b.nodes[ptr]
		recordOctetTest()
		_, hitMask := isect.RayAABB8(r, invDir, nd.boxes)
		mask := hitMask.MoveMask()
		for i := 0; i < 8; i++ {
			if mask&(1<<uint(i)) == 0 || nd.children[i] == emptyChild {
				continue
			}
			stack = append(stack, nd.children[i])
			stackLeaf = append(stackLeaf, nd.isLeaf[i])
		}
	}
	return false
}
