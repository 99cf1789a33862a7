// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pick resolves pointer positions to stars by casting a ray
// from the camera through the scene.
package pick

import (
	"image"

	"cogentcore.org/starfield/star"
	"cogentcore.org/starfield/xyz"
)

// Candidate is an object that can be picked. Only candidates in the
// [xyz.Bloom] layer are tested: glowing objects are the interactive ones.
type Candidate interface {
	xyz.Pickable
	Layers() xyz.Layers
	IsInteractive() bool
}

// Pick casts a ray from the camera through the given pointer position in
// a viewport of the given size, and returns the id of the nearest Bloom
// layer candidate that it hits. If the nearest hit is not interactive,
// or nothing is hit, it returns false.
func Pick[T Candidate](x, y float32, sz image.Point, cam xyz.Camera, cands []T) (int, bool) {
	if sz.X <= 0 || sz.Y <= 0 {
		return 0, false
	}
	var blooms []T
	for _, c := range cands {
		if c.Layers().Has(xyz.Bloom) {
			blooms = append(blooms, c)
		}
	}
	ray := cam.Ray(xyz.PixelToNDC(x, y, sz))
	hits := xyz.RayIntersections(ray, blooms)
	if len(hits) == 0 {
		return 0, false
	}
	nearest := hits[0].Object
	if !nearest.IsInteractive() {
		return 0, false
	}
	return nearest.PickID(), true
}

// Picker picks stars of a registry as seen in a scene,
// using the scene's current size and camera.
type Picker struct {
	Scene    *xyz.Scene
	Registry *star.Registry
}

// PickAt returns the id of the star under the given pointer position.
func (pk *Picker) PickAt(x, y float32) (int, bool) {
	return Pick(x, y, pk.Scene.Size, pk.Scene.Camera, pk.Registry.Stars())
}
