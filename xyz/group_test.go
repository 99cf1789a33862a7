// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRayIntersections(t *testing.T) {
	sc := NewScene("test")
	far := sc.NewStarMesh(1, color.RGBA{255, 255, 255, 255}).SetPos(0, 0, -20)
	near := sc.NewStarMesh(1, color.RGBA{255, 255, 255, 255}).SetPos(0, 0, -10)
	sc.NewStarMesh(1, color.RGBA{255, 255, 255, 255}).SetPos(5, 0, -10)

	ray := math32.Ray{Origin: math32.Vec3(0, 0, 0), Dir: math32.Vec3(0, 0, -1)}
	hits := RayIntersections(ray, sc.Nodes())
	if assert.Len(t, hits, 2) {
		assert.Equal(t, near, hits[0].Object)
		assert.Equal(t, far, hits[1].Object)
		assert.InDelta(t, 9, hits[0].Dist, 1e-4)
	}

	miss := math32.Ray{Origin: math32.Vec3(0, 0, 0), Dir: math32.Vec3(0, 1, 0)}
	assert.Empty(t, RayIntersections(miss, sc.Nodes()))
}

func TestRayIntersectionsTie(t *testing.T) {
	sc := NewScene("test")
	a := sc.Add(&Node{Pos: math32.Vec3(0, 0, -10), Mesh: SphereMesh{Radius: 1}})
	b := sc.Add(&Node{Pos: math32.Vec3(0, 0, -10), Mesh: SphereMesh{Radius: 1}})
	ray := math32.Ray{Origin: math32.Vec3(0, 0, 0), Dir: math32.Vec3(0, 0, -1)}
	hits := RayIntersections(ray, []*Node{b, a})
	if assert.Len(t, hits, 2) {
		assert.Equal(t, a.ID(), hits[0].Object.ID())
		assert.Equal(t, b.ID(), hits[1].Object.ID())
	}
}

func TestScene(t *testing.T) {
	sc := NewScene("test")
	st := sc.NewStarMesh(10, color.RGBA{255, 215, 0, 255})
	axes := sc.AddAxes(5)
	assert.Equal(t, 4, sc.Len())
	assert.Equal(t, 0, st.ID())
	assert.Equal(t, DefaultLayers, st.Layers)
	assert.Equal(t, float32(DefaultOpacity), st.Mesh.Opacity)

	nd, err := sc.NodeByID(2)
	assert.NoError(t, err)
	assert.Equal(t, axes[1], nd)
	_, err = sc.NodeByID(99)
	assert.Error(t, err)

	assert.Equal(t, []*Node{st}, sc.NodesInLayers(Bloom))
	assert.Equal(t, axes, sc.NodesInLayers(Overlay))
	st.SetLayer(Overlay, true)
	assert.Len(t, sc.NodesInLayers(Overlay), 4)
}
