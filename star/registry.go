// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package star

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/starfield/xyz"
)

// ErrNotFound is returned when a star id does not resolve in the registry.
var ErrNotFound = errors.New("star not found")

// Registry indexes all stars by id. Stars are only ever added, and ids
// are assigned in order starting at 0.
//
// The annotation controller is the only writer of memories; the picker
// and the scene only read. Registry is not safe for concurrent use.
type Registry struct {
	stars []*Star
	byID  map[int]*Star
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[int]*Star)}
}

// Options are the parameters for creating one star.
type Options struct {
	Name   string
	Pos    math32.Vector3
	Color  color.RGBA
	Radius float32
}

// New creates a new interactive star with the given options, using the
// factory to create its renderable handle, and adds it to the registry.
func (rg *Registry) New(factory xyz.MeshFactory, opts Options) *Star {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	st := &Star{
		Name:        opts.Name,
		Color:       opts.Color,
		Radius:      opts.Radius,
		Interactive: true,
	}
	if factory != nil {
		st.Node = factory.NewStarMesh(opts.Radius, opts.Color)
		st.Node.Name = opts.Name
	}
	st.SetPos(opts.Pos)
	rg.add(st)
	return st
}

func (rg *Registry) add(st *Star) {
	if rg.byID == nil {
		rg.byID = make(map[int]*Star)
	}
	st.id = len(rg.stars)
	rg.stars = append(rg.stars, st)
	rg.byID[st.id] = st
}

// Len returns the number of stars.
func (rg *Registry) Len() int {
	return len(rg.stars)
}

// Stars returns all stars in id order. The slice must not be modified.
func (rg *Registry) Stars() []*Star {
	return rg.stars
}

// FindByID returns the star with the given id.
func (rg *Registry) FindByID(id int) (*Star, bool) {
	st, ok := rg.byID[id]
	return st, ok
}

// AddMemory appends the memory to the star with the given id.
// Existing memories are never changed or reordered.
// It returns an error wrapping [ErrNotFound] if the id does not resolve.
func (rg *Registry) AddMemory(id int, m Memory) error {
	st, ok := rg.FindByID(id)
	if !ok {
		return fmt.Errorf("star.Registry AddMemory: id %d: %w", id, ErrNotFound)
	}
	st.memories = append(st.memories, m)
	return nil
}

// Annotated returns the stars that have at least one memory.
func (rg *Registry) Annotated() []*Star {
	var sts []*Star
	for _, st := range rg.stars {
		if len(st.memories) > 0 {
			sts = append(sts, st)
		}
	}
	return sts
}
