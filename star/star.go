// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package star provides the domain objects of the star field:
// stars, the memories attached to them, and the registry that
// owns them.
package star

import (
	"image/color"
	"slices"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/starfield/xyz"
)

// Memory is a user-authored annotation attached to a star.
// It is never changed after it has been added.
type Memory struct {

	// Date is the calendar date of the memory (UTC midnight).
	Date time.Time

	// Text is the content of the memory; never empty.
	Text string

	// Attachment is an opaque session-local handle, or "" if none.
	Attachment string
}

// DateLayout is the layout of memory dates in forms and listings.
const DateLayout = "2006-01-02"

func (m Memory) String() string {
	s := m.Date.Format(DateLayout) + ": " + m.Text
	if m.Attachment != "" {
		s += " [" + m.Attachment + "]"
	}
	return s
}

// Star is one object in the star field. The identity is assigned by the
// [Registry] and never changes. The renderable handle is owned by
// reference: the star is not itself a scene node.
type Star struct {
	id int

	// Name is the display name of the star.
	Name string

	// Color is the surface color.
	Color color.RGBA

	// Radius is the world radius.
	Radius float32

	// Interactive is whether the star accepts memories when picked.
	Interactive bool

	// Node is the renderable handle in the scene, which holds
	// the layer membership.
	Node *xyz.Node

	// pos is the world position of a star without a Node.
	pos math32.Vector3

	memories []Memory
}

// DefaultName is the name of a star created without one.
const DefaultName = "Unnamed Star"

// ID returns the identity of the star.
func (st *Star) ID() int {
	return st.id
}

// PickID returns the star id, which makes [Star] an [xyz.Pickable].
func (st *Star) PickID() int {
	return st.id
}

// Pos returns the world position, which is that of the Node when
// the star has one, so that picking always sees what is rendered.
func (st *Star) Pos() math32.Vector3 {
	if st.Node != nil {
		return st.Node.Pos
	}
	return st.pos
}

// SetPos moves the star, and its Node if it has one.
func (st *Star) SetPos(pos math32.Vector3) *Star {
	st.pos = pos
	if st.Node != nil {
		st.Node.Pos = pos
	}
	return st
}

// BSphere returns the bounding sphere of the star.
func (st *Star) BSphere() math32.Sphere {
	return math32.Sphere{Center: st.Pos(), Radius: st.Radius}
}

// IsInteractive returns whether the star accepts memories when picked.
func (st *Star) IsInteractive() bool {
	return st.Interactive
}

// Layers returns the render layers of the star, from its node.
func (st *Star) Layers() xyz.Layers {
	if st.Node == nil {
		return xyz.NoLayers
	}
	return st.Node.Layers
}

// SetLayer enables or disables the given layers on the star's node.
func (st *Star) SetLayer(ls xyz.Layers, on bool) *Star {
	if st.Node != nil {
		st.Node.SetLayer(ls, on)
	}
	return st
}

// Memories returns a copy of the memories of the star, in the order
// they were added.
func (st *Star) Memories() []Memory {
	return slices.Clone(st.memories)
}

// NumMemories returns the number of memories.
func (st *Star) NumMemories() int {
	return len(st.memories)
}
