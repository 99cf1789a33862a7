// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"sort"

	"cogentcore.org/core/math32"
	"cogentcore.org/starfield/xyz"
)

// Pass draws the nodes of a scene that are in the given layer mask, as
// seen from the given camera, into a target. A Pass is an immutable
// value: it never changes the scene or the camera, so each pass can be
// run and tested on its own.
type Pass struct {
	Scene  *xyz.Scene
	Camera xyz.Camera
	Mask   xyz.Layers

	// Clear is the color the target is cleared to before drawing.
	Clear RGB
}

// drawItem is one node projected into the target.
type drawItem struct {
	node   *xyz.Node
	center math32.Vector2
	radius float32
	depth  float32
}

// Draw clears the target and draws the visible nodes into it.
// Nodes are drawn from far to near, with ties in id order.
func (ps Pass) Draw(tg *Target) {
	tg.Clear(ps.Clear)
	sz := tg.Size
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	cam := ps.Camera
	var items []drawItem
	for _, nd := range ps.Scene.NodesInLayers(ps.Mask) {
		ndc, depth, ok := cam.Project(nd.Pos)
		if !ok {
			continue
		}
		items = append(items, drawItem{
			node:   nd,
			center: xyz.NDCToPixel(ndc, sz),
			radius: cam.ProjectedRadius(nd.Mesh.Radius, depth, sz.Y),
			depth:  depth,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return items[i].node.ID() < items[j].node.ID()
	})
	// fog only tints the base color; glow and overlay are unfogged
	fogged := ps.Scene.FogDensity > 0 && ps.Mask.Has(xyz.Base)
	fog := RGBFromColor(ps.Scene.FogColor)
	for _, it := range items {
		clr := RGBFromColor(it.node.Mesh.Color)
		if fogged {
			clr = clr.Lerp(fog, FogFactor(ps.Scene.FogDensity, it.depth))
		}
		drawDisc(tg, it.center, it.radius, clr, it.node.Mesh.Opacity)
	}
}

// FogFactor returns the exponential-squared fog blend at the given depth.
func FogFactor(density, depth float32) float32 {
	dd := density * depth
	return 1 - math32.Exp(-dd*dd)
}

// drawDisc fills the pixels whose centers are within radius of center.
// A disc smaller than a pixel still covers the pixel containing center.
func drawDisc(tg *Target, center math32.Vector2, radius float32, clr RGB, alpha float32) {
	sz := tg.Size
	x0 := max(int(math32.Floor(center.X-radius)), 0)
	x1 := min(int(math32.Ceil(center.X+radius)), sz.X-1)
	y0 := max(int(math32.Floor(center.Y-radius)), 0)
	y1 := min(int(math32.Ceil(center.Y+radius)), sz.Y-1)
	r2 := radius * radius
	drawn := false
	for y := y0; y <= y1; y++ {
		dy := float32(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float32(x) + 0.5 - center.X
			if dx*dx+dy*dy > r2 {
				continue
			}
			tg.Blend(x, y, clr, alpha)
			drawn = true
		}
	}
	if drawn {
		return
	}
	cx, cy := int(math32.Floor(center.X)), int(math32.Floor(center.Y))
	if cx >= 0 && cy >= 0 && cx < sz.X && cy < sz.Y {
		tg.Blend(cx, cy, clr, alpha)
	}
}
