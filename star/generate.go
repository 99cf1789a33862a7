// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package star

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/starfield/base/randx"
	"cogentcore.org/starfield/xyz"
)

// Palette is the set of colors that generated stars are drawn from.
var Palette = []color.RGBA{
	errors.Log1(colors.FromHex("#FFFFFF")),
	errors.Log1(colors.FromHex("#F0F8FF")),
	errors.Log1(colors.FromHex("#FFD700")),
	errors.Log1(colors.FromHex("#B0E0E6")),
	errors.Log1(colors.FromHex("#FFFACD")),
}

// GenerateOptions control the bulk creation of stars.
type GenerateOptions struct {

	// Count is the number of stars to create.
	Count int

	// Radius is the world radius of every star.
	Radius float32

	// Spread is the side of the cube, centered at the origin,
	// within which positions are drawn uniformly.
	Spread float32
}

// Generate creates opts.Count stars with random positions and palette
// colors drawn from rnd, adding them to the registry and creating their
// meshes with the factory. It returns the new stars.
func (rg *Registry) Generate(factory xyz.MeshFactory, rnd randx.Rand, opts GenerateOptions) []*Star {
	sts := make([]*Star, 0, opts.Count)
	for range opts.Count {
		pos := math32.Vec3(
			rnd.Float32()*opts.Spread-opts.Spread/2,
			rnd.Float32()*opts.Spread-opts.Spread/2,
			rnd.Float32()*opts.Spread-opts.Spread/2,
		)
		sts = append(sts, rg.New(factory, Options{
			Pos:    pos,
			Color:  Palette[rnd.Intn(len(Palette))],
			Radius: opts.Radius,
		}))
	}
	return sts
}
