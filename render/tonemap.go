// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/colors/cam/cie"
	"cogentcore.org/core/math32"
)

// ACES input and output matrices of the filmic curve fit, in row order.
var (
	acesInput = [3][3]float32{
		{0.59719, 0.35458, 0.04823},
		{0.07600, 0.90834, 0.01566},
		{0.02840, 0.13383, 0.83777},
	}
	acesOutput = [3][3]float32{
		{1.60475, -0.53108, -0.07367},
		{-0.10208, 1.10813, -0.00605},
		{-0.00327, -0.07276, 1.07602},
	}
)

func mulMat3(m *[3][3]float32, c RGB) RGB {
	return RGB{
		m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B,
		m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B,
		m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B,
	}
}

// rrtAndODTFit is the fitted ACES reference rendering and output transform.
func rrtAndODTFit(v float32) float32 {
	a := v*(v+0.0245786) - 0.000090537
	b := v*(0.983729*v+0.4329510) + 0.238081
	return a / b
}

// ToneMap applies exposure and the ACES filmic curve to a linear color,
// returning a linear display color in [0, 1].
func ToneMap(c RGB, exposure float32) RGB {
	c = c.MulScalar(exposure / 0.6)
	c = mulMat3(&acesInput, c)
	c = RGB{rrtAndODTFit(c.R), rrtAndODTFit(c.G), rrtAndODTFit(c.B)}
	c = mulMat3(&acesOutput, c)
	return RGB{math32.Clamp(c.R, 0, 1), math32.Clamp(c.G, 0, 1), math32.Clamp(c.B, 0, 1)}
}

// Output tone maps the target and encodes it as sRGB into dst, which is
// reallocated if nil or of a different size. It returns dst.
func Output(tg *Target, exposure float32, dst *image.RGBA) *image.RGBA {
	rect := image.Rect(0, 0, tg.Size.X, tg.Size.Y)
	if dst == nil || dst.Rect != rect {
		dst = image.NewRGBA(rect)
	}
	for y := range tg.Size.Y {
		for x := range tg.Size.X {
			c := ToneMap(tg.At(x, y), exposure)
			r, g, b := cie.SRGBFromLinear(c.R, c.G, c.B)
			o := dst.PixOffset(x, y)
			dst.Pix[o] = quantize(r)
			dst.Pix[o+1] = quantize(g)
			dst.Pix[o+2] = quantize(b)
			dst.Pix[o+3] = 0xFF
		}
	}
	return dst
}
