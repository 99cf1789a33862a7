// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// SphereMesh is the shape used for every object in a [Scene]: a sphere
// of uniform color. It is drawn as a disc of the projected radius.
type SphereMesh struct {

	// Radius of the sphere in world units.
	Radius float32

	// Color of the surface.
	Color color.RGBA

	// Opacity is the alpha used when blending the surface over what is
	// already drawn.
	Opacity float32
}

// Node is the renderable handle for one object in a [Scene]. It has a
// stable identity assigned by the scene, a world position, a mesh,
// and a set of layers that can be toggled at any time between frames.
type Node struct {
	id int

	// Name is an optional label for the node.
	Name string

	// Pos is the world position of the center of the mesh.
	Pos math32.Vector3

	// Mesh is the shape and surface of the node.
	Mesh SphereMesh

	// Layers are the render layers this node belongs to.
	Layers Layers
}

// ID returns the identity assigned when the node was added to its scene.
func (nd *Node) ID() int {
	return nd.id
}

// SetLayer enables or disables the given layers on this node.
func (nd *Node) SetLayer(ls Layers, on bool) *Node {
	nd.Layers.Set(ls, on)
	return nd
}

// SetPos sets the world position.
func (nd *Node) SetPos(x, y, z float32) *Node {
	nd.Pos.Set(x, y, z)
	return nd
}

// BSphere returns the bounding sphere of the node in world coordinates.
func (nd *Node) BSphere() math32.Sphere {
	return math32.Sphere{Center: nd.Pos, Radius: nd.Mesh.Radius}
}

// MeshFactory creates renderable handles for star meshes.
type MeshFactory interface {

	// NewStarMesh returns a new sphere handle of the given radius and
	// color, placed at the origin in [DefaultLayers].
	NewStarMesh(radius float32, clr color.RGBA) *Node
}

// DefaultOpacity is the opacity of a star mesh.
const DefaultOpacity = 0.8

// NewStarMesh adds a new sphere node to the scene and returns it.
// It makes [Scene] a [MeshFactory].
func (sc *Scene) NewStarMesh(radius float32, clr color.RGBA) *Node {
	nd := &Node{
		Mesh:   SphereMesh{Radius: radius, Color: clr, Opacity: DefaultOpacity},
		Layers: DefaultLayers,
	}
	return sc.Add(nd)
}
