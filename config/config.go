// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the starfield tool.
package config

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/starfield/render"
)

// ErrInvalid is wrapped by every error returned from [Config.Validate].
var ErrInvalid = errors.New("invalid config")

// Config is the main config struct that contains all of the
// configuration options for the starfield tool.
type Config struct {

	// BloomThreshold is the luminance below which pixels do not glow.
	BloomThreshold float32 `default:"0.5"`

	// BloomStrength multiplies the blurred glow.
	BloomStrength float32 `default:"1.5"`

	// BloomRadius is the spread of the glow, relative to the viewport.
	BloomRadius float32 `default:"0.4"`

	// ToneMappingExposure scales the composited color before tone mapping.
	ToneMappingExposure float32 `default:"0.5"`

	// StarCount is the number of stars to generate.
	StarCount int `flag:"n,stars" default:"500"`

	// Seed seeds star generation; 0 uses a random seed.
	Seed int64

	// Width is the viewport width in pixels.
	Width int `default:"800"`

	// Height is the viewport height in pixels.
	Height int `default:"600"`

	// StarRadius is the world radius of every star.
	StarRadius float32 `default:"10"`

	// Spread is the side of the cube, centered on the origin,
	// that stars are placed in.
	Spread float32 `default:"4000"`

	// Fog is the exponential-squared fog density; 0 disables fog.
	Fog float32 `default:"0.00003"`

	// Axes adds the axis markers to the overlay layer.
	Axes bool

	// Output is the PNG file written by the render command.
	Output string `cmd:"render" flag:"o,output" default:"starfield.png"`

	// Click, if set, is a pixel position "x,y" that is clicked
	// after the first frame by the render command.
	Click string `cmd:"render"`

	// Date is the date of the memory submitted after Click.
	Date string `cmd:"render"`

	// Text is the text of the memory submitted after Click.
	Text string `cmd:"render"`

	// Attach is an optional file attached to the memory submitted after Click.
	Attach string `cmd:"render"`

	// Watch reloads the config file when it changes in the view command.
	Watch bool `cmd:"view" default:"true"`
}

// Defaults returns a new config with all default values set.
func Defaults() *Config {
	c := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
	return c
}

// Open returns a new config with default values, overridden
// by the values in the given TOML file.
func Open(filename string) (*Config, error) {
	c := Defaults()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, fmt.Errorf("config.Open %q: %w", filename, err)
	}
	return c, nil
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalid)...))
		}
	}
	check(c.BloomThreshold >= 0 && c.BloomThreshold <= 1, "BloomThreshold %g must be in [0, 1]", c.BloomThreshold)
	check(c.BloomStrength >= 0, "BloomStrength %g must be >= 0", c.BloomStrength)
	check(c.BloomRadius >= 0, "BloomRadius %g must be >= 0", c.BloomRadius)
	check(c.ToneMappingExposure > 0, "ToneMappingExposure %g must be > 0", c.ToneMappingExposure)
	check(c.StarCount >= 0, "StarCount %d must be >= 0", c.StarCount)
	check(c.Width > 0 && c.Height > 0, "size %dx%d must be positive", c.Width, c.Height)
	check(c.StarRadius > 0, "StarRadius %g must be > 0", c.StarRadius)
	check(c.Spread >= 0, "Spread %g must be >= 0", c.Spread)
	check(c.Fog >= 0, "Fog %g must be >= 0", c.Fog)
	return errors.Join(errs...)
}

// Size returns the viewport size.
func (c *Config) Size() image.Point {
	return image.Point{c.Width, c.Height}
}

// Bloom returns the bloom filter parameters.
func (c *Config) Bloom() render.Bloom {
	return render.Bloom{Threshold: c.BloomThreshold, Strength: c.BloomStrength, Radius: c.BloomRadius}
}

// Apply updates the rendering parameters of the pipeline. Parameters
// that require regenerating the scene are not applied.
func (c *Config) Apply(pl *render.Pipeline) {
	pl.Bloom = c.Bloom()
	pl.Exposure = c.ToneMappingExposure
}
