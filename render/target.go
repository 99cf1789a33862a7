// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors/cam/cie"
)

// RGB is a linear color with unbounded components.
type RGB struct {
	R, G, B float32
}

// RGBFromColor converts an sRGB color to linear RGB, ignoring alpha.
func RGBFromColor(c color.RGBA) RGB {
	r, g, b := cie.SRGBToLinear(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	return RGB{r, g, b}
}

// Add returns the component-wise sum.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// MulScalar returns the color scaled by s.
func (c RGB) MulScalar(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Lerp returns the color moved toward o by t in [0, 1].
func (c RGB) Lerp(o RGB, t float32) RGB {
	return RGB{c.R + (o.R-c.R)*t, c.G + (o.G-c.G)*t, c.B + (o.B-c.B)*t}
}

// Luminance returns the Rec. 709 relative luminance.
func (c RGB) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Target is an offscreen linear color buffer sized to the viewport.
// It is owned by exactly one render pass. When the viewport changes size
// a new Target is made and the old one is invalidated, never shared.
type Target struct {

	// Name of the pass that owns this target.
	Name string

	// Size in pixels.
	Size image.Point

	// Generation counts the recreations of the pipeline's targets;
	// all targets of one pipeline share the same generation.
	Generation int

	// Pix holds 3 components per pixel, in row-major order.
	// It is nil once the target has been invalidated.
	Pix []float32
}

// NewTarget returns a new black target of the given size.
func NewTarget(name string, sz image.Point, gen int) *Target {
	if sz.X < 0 || sz.Y < 0 {
		sz = image.Point{}
	}
	return &Target{Name: name, Size: sz, Generation: gen, Pix: make([]float32, 3*sz.X*sz.Y)}
}

// Valid returns whether the target can still be rendered into.
func (tg *Target) Valid() bool {
	return tg != nil && tg.Pix != nil
}

// Invalidate releases the pixels; the target must not be used after.
func (tg *Target) Invalidate() {
	tg.Pix = nil
}

// Clear sets every pixel to c.
func (tg *Target) Clear(c RGB) {
	for i := 0; i+2 < len(tg.Pix); i += 3 {
		tg.Pix[i], tg.Pix[i+1], tg.Pix[i+2] = c.R, c.G, c.B
	}
}

func (tg *Target) offset(x, y int) int {
	return 3 * (y*tg.Size.X + x)
}

// At returns the color at x, y, which must be in bounds.
func (tg *Target) At(x, y int) RGB {
	i := tg.offset(x, y)
	return RGB{tg.Pix[i], tg.Pix[i+1], tg.Pix[i+2]}
}

// Set sets the color at x, y, which must be in bounds.
func (tg *Target) Set(x, y int, c RGB) {
	i := tg.offset(x, y)
	tg.Pix[i], tg.Pix[i+1], tg.Pix[i+2] = c.R, c.G, c.B
}

// Blend blends c over the color at x, y with the given alpha.
func (tg *Target) Blend(x, y int, c RGB, alpha float32) {
	tg.Set(x, y, tg.At(x, y).Lerp(c, alpha))
}
