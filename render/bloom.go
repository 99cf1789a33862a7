// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/blur"
)

// Bloom is the glow filter applied in place to the bloom source target.
type Bloom struct {

	// Threshold is the luminance below which pixels are zeroed.
	Threshold float32

	// Strength multiplies the blurred glow.
	Strength float32

	// Radius is the spread of the blur kernel, relative to the
	// smaller dimension of the target.
	Radius float32
}

// Defaults sets the default bloom parameters.
func (bl *Bloom) Defaults() {
	bl.Threshold = 0.5
	bl.Strength = 1.5
	bl.Radius = 0.4
}

// PixelRadius returns the blur radius in whole pixels for a target of the
// given size. It is whole so that the Gaussian kernel has an odd length
// and stays centered on each pixel.
func (bl *Bloom) PixelRadius(sz image.Point) float32 {
	if bl.Radius <= 0 {
		return 0
	}
	return max(1, math32.Round(bl.Radius*float32(min(sz.X, sz.Y))/64))
}

// Apply thresholds, blurs and scales the target in place.
func (bl *Bloom) Apply(tg *Target) {
	if tg.Size.X == 0 || tg.Size.Y == 0 {
		return
	}
	bl.threshold(tg)
	if r := bl.PixelRadius(tg.Size); r > 0 {
		img := toNRGBA(tg)
		blurred := blur.Gaussian(img, float64(r))
		fromRGBA(tg, blurred)
	}
	if bl.Strength != 1 {
		for i := range tg.Pix {
			tg.Pix[i] *= bl.Strength
		}
	}
}

// threshold zeroes every pixel whose luminance is below the threshold.
func (bl *Bloom) threshold(tg *Target) {
	for y := range tg.Size.Y {
		for x := range tg.Size.X {
			if tg.At(x, y).Luminance() < bl.Threshold {
				tg.Set(x, y, RGB{})
			}
		}
	}
}

// toNRGBA quantizes the target into an 8-bit image for filtering.
// Components are clamped to [0, 1]; the bloom source is drawn from
// surface colors and never exceeds 1.
func toNRGBA(tg *Target) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, tg.Size.X, tg.Size.Y))
	for i, j := 0, 0; i+2 < len(tg.Pix); i, j = i+3, j+4 {
		img.Pix[j] = quantize(tg.Pix[i])
		img.Pix[j+1] = quantize(tg.Pix[i+1])
		img.Pix[j+2] = quantize(tg.Pix[i+2])
		img.Pix[j+3] = 0xFF
	}
	return img
}

// fromRGBA sets the target from an 8-bit image of the same size.
func fromRGBA(tg *Target, img *image.RGBA) {
	for y := range tg.Size.Y {
		for x := range tg.Size.X {
			o := img.PixOffset(x, y)
			tg.Set(x, y, RGB{
				float32(img.Pix[o]) / 255,
				float32(img.Pix[o+1]) / 255,
				float32(img.Pix[o+2]) / 255,
			})
		}
	}
}

// quantize converts a [0, 1] component to 8 bits, rounding to nearest.
func quantize(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}
