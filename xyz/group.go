// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Pickable is anything with a stable id and a bounding sphere
// that can be hit by a ray.
type Pickable interface {
	PickID() int
	BSphere() math32.Sphere
}

// PickID returns the node id, which makes [Node] a [Pickable].
func (nd *Node) PickID() int {
	return nd.id
}

// RayHit is one object hit by a ray, with the point of intersection.
type RayHit[T Pickable] struct {
	Object T
	Point  math32.Vector3

	// Dist is the distance from the ray origin to Point.
	Dist float32
}

// RayIntersections returns the objects whose bounding sphere intersects
// the given ray, with the point of intersection. Results are sorted from
// closest to furthest, with equal distances ordered by ascending id.
func RayIntersections[T Pickable](ray math32.Ray, objs []T) []RayHit[T] {
	var hits []RayHit[T]
	for _, ob := range objs {
		pt, has := ray.IntersectSphere(ob.BSphere())
		if !has {
			continue
		}
		hits = append(hits, RayHit[T]{Object: ob, Point: pt, Dist: pt.DistanceTo(ray.Origin)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Dist != hits[j].Dist {
			return hits[i].Dist < hits[j].Dist
		}
		return hits[i].Object.PickID() < hits[j].Object.PickID()
	})
	return hits
}
