// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the selective bloom pipeline for the star
// field: three passes over the same scene, each restricted to one layer,
// merged by an additive composite and tone mapped for display.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/starfield/xyz"
)

// ErrSizeMismatch is returned when the render targets do not match the
// viewport size. It is recovered by [Pipeline.Resize].
var ErrSizeMismatch = errors.New("render target size does not match viewport")

// DefaultExposure is the default tone mapping exposure.
const DefaultExposure = 0.5

// Pipeline renders frames through the bloom, overlay and base passes.
// It owns one target per pass; [Pipeline.Resize] replaces all three.
//
// Pipeline is not safe for concurrent use: every frame must complete
// before the scene, camera or registry are changed.
type Pipeline struct {

	// Bloom is the filter applied to the bloom source.
	Bloom Bloom

	// Exposure scales the composited color before tone mapping.
	Exposure float32

	bloom   *Target
	overlay *Target
	base    *Target

	generation int
	frames     int
	image      *image.RGBA
}

// NewPipeline returns a new pipeline with targets of the given size.
func NewPipeline(sz image.Point, bloom Bloom, exposure float32) *Pipeline {
	pl := &Pipeline{Bloom: bloom, Exposure: exposure}
	pl.Resize(sz)
	return pl
}

// Resize recreates all three targets at the given size. The old targets
// are invalidated.
func (pl *Pipeline) Resize(sz image.Point) {
	for _, tg := range []*Target{pl.bloom, pl.overlay, pl.base} {
		if tg != nil {
			tg.Invalidate()
		}
	}
	pl.generation++
	pl.bloom = NewTarget("bloom", sz, pl.generation)
	pl.overlay = NewTarget("overlay", sz, pl.generation)
	pl.base = NewTarget("base", sz, pl.generation)
}

// Size returns the current size of the targets.
func (pl *Pipeline) Size() image.Point {
	return pl.base.Size
}

// Generation returns the number of times the targets have been created.
func (pl *Pipeline) Generation() int {
	return pl.generation
}

// Frames returns the number of frames rendered.
func (pl *Pipeline) Frames() int {
	return pl.frames
}

// Target returns the target of the pass for the given layer:
// one of [xyz.Base], [xyz.Bloom] or [xyz.Overlay].
func (pl *Pipeline) Target(layer xyz.Layers) *Target {
	switch layer {
	case xyz.Bloom:
		return pl.bloom
	case xyz.Overlay:
		return pl.overlay
	case xyz.Base:
		return pl.base
	}
	return nil
}

// Image returns the last rendered display image, or nil before the first
// frame. It is reused across frames.
func (pl *Pipeline) Image() *image.RGBA {
	return pl.image
}

// CheckSize returns an error wrapping [ErrSizeMismatch] if any target is
// stale relative to the given viewport size.
func (pl *Pipeline) CheckSize(sz image.Point) error {
	for _, tg := range []*Target{pl.bloom, pl.overlay, pl.base} {
		if !tg.Valid() || tg.Size != sz {
			return fmt.Errorf("render.Pipeline: %s target is %v, viewport is %v: %w", tg.Name, tg.Size, sz, ErrSizeMismatch)
		}
	}
	return nil
}

// RenderFrame renders one frame of the scene as seen by the camera:
//  1. the Bloom layer into the bloom target, then the bloom filter in place;
//  2. the Overlay layer into the overlay target;
//  3. the Base layer into the base target, merged with the other two.
//
// The result is tone mapped into [Pipeline.Image]. If the targets do not
// match the scene size, nothing is drawn and an error wrapping
// [ErrSizeMismatch] is returned.
func (pl *Pipeline) RenderFrame(sc *xyz.Scene, cam xyz.Camera) error {
	if err := pl.CheckSize(sc.Size); err != nil {
		return err
	}
	Pass{Scene: sc, Camera: cam, Mask: xyz.Bloom}.Draw(pl.bloom)
	pl.Bloom.Apply(pl.bloom)

	Pass{Scene: sc, Camera: cam, Mask: xyz.Overlay}.Draw(pl.overlay)

	Pass{Scene: sc, Camera: cam, Mask: xyz.Base, Clear: RGBFromColor(sc.Background)}.Draw(pl.base)
	if err := Composite(pl.base, pl.bloom, pl.overlay); err != nil {
		return err
	}
	pl.image = Output(pl.base, pl.Exposure, pl.image)
	pl.frames++
	return nil
}

// Render renders a frame of the scene with its own camera, first
// recreating the targets if the viewport size has changed.
func (pl *Pipeline) Render(sc *xyz.Scene) error {
	if err := pl.CheckSize(sc.Size); err != nil {
		slog.Info("render: recreating targets", "scene", sc.Name, "from", pl.Size(), "to", sc.Size)
		pl.Resize(sc.Size)
	}
	return pl.RenderFrame(sc, sc.Camera)
}
