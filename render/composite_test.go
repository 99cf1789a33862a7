// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func uniform(name string, sz image.Point, c RGB) *Target {
	tg := NewTarget(name, sz, 1)
	tg.Clear(c)
	return tg
}

func TestCompositeSum(t *testing.T) {
	sz := image.Point{4, 3}
	base := uniform("base", sz, RGB{0.2, 0, 0})
	bloom := uniform("bloom", sz, RGB{0, 0.3, 0})
	overlay := uniform("overlay", sz, RGB{0, 0, 0.1})
	assert.NoError(t, Composite(base, bloom, overlay))
	for y := range sz.Y {
		for x := range sz.X {
			c := base.At(x, y)
			tolassert.Equal(t, 0.2, c.R)
			tolassert.Equal(t, 0.3, c.G)
			tolassert.Equal(t, 0.1, c.B)
		}
	}
}

func TestCompositeUnclamped(t *testing.T) {
	sz := image.Point{2, 2}
	base := uniform("base", sz, RGB{0.9, 1, 0})
	bloom := uniform("bloom", sz, RGB{0.8, 2, 0})
	overlay := uniform("overlay", sz, RGB{0.5, 0, 0})
	assert.NoError(t, Composite(base, bloom, overlay))
	c := base.At(1, 1)
	tolassert.Equal(t, 2.2, c.R)
	tolassert.Equal(t, 3, c.G)
}

func TestCompositeMismatch(t *testing.T) {
	base := uniform("base", image.Point{4, 4}, RGB{0.2, 0, 0})
	bloom := uniform("bloom", image.Point{4, 3}, RGB{0, 0.3, 0})
	overlay := uniform("overlay", image.Point{4, 4}, RGB{0, 0, 0.1})
	assert.ErrorIs(t, Composite(base, bloom, overlay), ErrSizeMismatch)
	assert.Equal(t, RGB{0.2, 0, 0}, base.At(0, 0))

	bloom = uniform("bloom", image.Point{4, 4}, RGB{0, 0.3, 0})
	overlay.Invalidate()
	assert.ErrorIs(t, Composite(base, bloom, overlay), ErrSizeMismatch)
}

func TestToneMap(t *testing.T) {
	assert.Equal(t, RGB{}, ToneMap(RGB{}, DefaultExposure))
	prev := float32(0)
	for _, v := range []float32{0.1, 0.5, 1, 2, 10, 100} {
		c := ToneMap(RGB{v, v, v}, DefaultExposure)
		assert.Greater(t, c.G, prev)
		assert.LessOrEqual(t, c.G, float32(1))
		prev = c.G
	}
	// more exposure is brighter
	lo := ToneMap(RGB{0.5, 0.5, 0.5}, 0.5)
	hi := ToneMap(RGB{0.5, 0.5, 0.5}, 2)
	assert.Greater(t, hi.R, lo.R)
}

func TestOutput(t *testing.T) {
	tg := uniform("base", image.Point{3, 2}, RGB{})
	tg.Set(1, 1, RGB{100, 100, 100})
	img := Output(tg, DefaultExposure, nil)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Rect)
	o := img.PixOffset(0, 0)
	assert.Equal(t, []uint8{0, 0, 0, 0xFF}, img.Pix[o:o+4])
	o = img.PixOffset(1, 1)
	assert.Greater(t, img.Pix[o], uint8(240))

	// the image is reused when the size is unchanged
	assert.Same(t, img, Output(tg, DefaultExposure, img))
	assert.NotSame(t, img, Output(uniform("base", image.Point{4, 2}, RGB{}), DefaultExposure, img))
}
