// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a minimal 3D scene graph: nodes in render layers,
// viewed by a perspective camera, with ray intersection for picking.
package xyz

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/math32"
)

// Scene holds all of the renderable nodes and the camera that views them.
// Nodes are only ever added: ids are assigned in order starting at 0 and
// are never reused.
//
// Scene is not safe for concurrent use. It is read by the render pipeline
// and the picker, and changed by the host, always on the same goroutine.
type Scene struct {

	// Name of the scene, for logging.
	Name string

	// Camera is the current view. The host updates it between frames.
	Camera Camera

	// Size is the current viewport size in pixels.
	Size image.Point

	// Background is the clear color of the base pass.
	Background color.RGBA

	// FogColor is the color that distant objects fade toward.
	FogColor color.RGBA

	// FogDensity is the exponential-squared fog density; 0 disables fog.
	FogDensity float32

	nodes []*Node
	byID  map[int]*Node
}

// DefaultFogColor is the fog color used by [Scene.Defaults].
var DefaultFogColor = color.RGBA{0xEB, 0xE2, 0xDB, 0xFF}

// NewScene returns a new empty scene with default settings.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Defaults()
	return sc
}

// Defaults sets default camera, background, fog and size.
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = color.RGBA{0, 0, 0, 0xFF}
	sc.FogColor = DefaultFogColor
	sc.FogDensity = 0.00003
	sc.SetSize(image.Point{800, 600})
}

// SetSize sets the viewport size and updates the camera aspect ratio.
// Zero sizes are ignored.
func (sc *Scene) SetSize(sz image.Point) *Scene {
	if sz.X <= 0 || sz.Y <= 0 {
		return sc
	}
	sc.Size = sz
	sc.Camera.SetAspectFromSize(sz)
	return sc
}

// Add adds the given node to the scene, assigning its id.
func (sc *Scene) Add(nd *Node) *Node {
	if sc.byID == nil {
		sc.byID = make(map[int]*Node)
	}
	nd.id = len(sc.nodes)
	sc.nodes = append(sc.nodes, nd)
	sc.byID[nd.id] = nd
	return nd
}

// Len returns the number of nodes.
func (sc *Scene) Len() int {
	return len(sc.nodes)
}

// Nodes returns all nodes in the order they were added.
// The returned slice must not be modified.
func (sc *Scene) Nodes() []*Node {
	return sc.nodes
}

// NodeByID returns the node with the given id.
func (sc *Scene) NodeByID(id int) (*Node, error) {
	nd, ok := sc.byID[id]
	if !ok {
		return nil, fmt.Errorf("xyz.Scene %q: node id %d not found", sc.Name, id)
	}
	return nd, nil
}

// NodesInLayers returns the nodes whose layers intersect the given mask.
func (sc *Scene) NodesInLayers(mask Layers) []*Node {
	var nds []*Node
	for _, nd := range sc.nodes {
		if nd.Layers.Intersects(mask) {
			nds = append(nds, nd)
		}
	}
	return nds
}

// AddAxes adds three small markers at distance size along the X, Y and Z
// axes, colored red, green and blue, in the [Overlay] layer.
func (sc *Scene) AddAxes(size float32) []*Node {
	axes := []struct {
		name string
		pos  math32.Vector3
		clr  color.RGBA
	}{
		{"axis-x", math32.Vec3(size, 0, 0), color.RGBA{0xFF, 0, 0, 0xFF}},
		{"axis-y", math32.Vec3(0, size, 0), color.RGBA{0, 0xFF, 0, 0xFF}},
		{"axis-z", math32.Vec3(0, 0, size), color.RGBA{0, 0, 0xFF, 0xFF}},
	}
	nds := make([]*Node, len(axes))
	for i, ax := range axes {
		nds[i] = sc.Add(&Node{
			Name:   ax.name,
			Pos:    ax.pos,
			Mesh:   SphereMesh{Radius: size / 10, Color: ax.clr, Opacity: 1},
			Layers: Overlay,
		})
	}
	return nds
}
