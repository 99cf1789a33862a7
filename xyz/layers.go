// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "strings"

// Layers is a set of render layers. A [Node] can belong to any number
// of layers at once, and each render pass draws only the nodes whose
// layers intersect the mask of that pass.
type Layers uint8

const (
	// Base is drawn by the final pass, which also merges the other layers.
	Base Layers = 1 << iota

	// Bloom is drawn into the glow source, and is the only layer
	// considered when picking.
	Bloom

	// Overlay is drawn into the overlay source with no post filtering.
	Overlay
)

// NoLayers is the empty layer set.
const NoLayers Layers = 0

// AllLayers contains every layer.
const AllLayers = Base | Bloom | Overlay

// DefaultLayers is the layer set of a newly created star mesh.
const DefaultLayers = Base | Bloom

// Has returns whether every layer in o is also in ls.
// The empty set is never reported as contained.
func (ls Layers) Has(o Layers) bool {
	return o != 0 && ls&o == o
}

// Intersects returns whether ls and o share at least one layer.
func (ls Layers) Intersects(o Layers) bool {
	return ls&o != 0
}

// Set enables or disables the given layers.
func (ls *Layers) Set(o Layers, on bool) {
	if on {
		*ls |= o
	} else {
		*ls &^= o
	}
}

var layerNames = []string{"Base", "Bloom", "Overlay"}

func (ls Layers) String() string {
	if ls == 0 {
		return "None"
	}
	var names []string
	for i, nm := range layerNames {
		if ls&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}
