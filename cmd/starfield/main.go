// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command starfield renders a field of glowing stars and lets the user
// attach dated memories to them.
package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/starfield/annotate"
	"cogentcore.org/starfield/config"
	"cogentcore.org/starfield/xyz"
)

func main() {
	opts := cli.DefaultOptions("starfield", "Starfield renders a field of glowing stars and lets you attach memories to them.")
	opts.DefaultFiles = []string{"starfield.toml"}
	cli.Run(opts, &config.Config{}, Render, View)
}

// Render renders a single frame to the Output PNG file. If Click is set,
// the star under it is annotated with Date, Text and Attach before the
// frame is rendered, and the memories of all annotated stars are printed.
func Render(c *config.Config) error {
	w, err := newWorld(c)
	if err != nil {
		return err
	}
	if c.Click != "" {
		fs := annotate.Fields{Date: c.Date, Text: c.Text}
		if c.Attach != "" {
			fs.Attachment = fileBlob(c.Attach)
		}
		if err := w.annotate(c.Click, fs); err != nil {
			return err
		}
		w.printMemories()
	}
	if err := w.Pipeline.Render(w.Scene); err != nil {
		return err
	}
	if err := imagex.Save(w.Pipeline.Image(), c.Output); err != nil {
		return fmt.Errorf("starfield render: %w", err)
	}
	slog.Info("starfield: saved frame", "file", c.Output, "size", w.Scene.Size)
	return nil
}

// annotate clicks at the given "x,y" position and submits the form.
// The position "center" clicks the star nearest to the middle of the view.
func (w *world) annotate(click string, fs annotate.Fields) error {
	x, y, err := w.parseClick(click)
	if err != nil {
		return err
	}
	ctl := w.Controller
	errors.Log(ctl.Handle(annotate.PointerClicked{X: x, Y: y}))
	if ctl.State() != annotate.AwaitingInput {
		slog.Warn("starfield: no star at click position", "x", x, "y", y)
		return nil
	}
	return ctl.Handle(annotate.FormSubmitted{Fields: fs})
}

func (w *world) parseClick(click string) (x, y float32, err error) {
	if click == "center" {
		return w.centerStar()
	}
	xs, ys, ok := strings.Cut(click, ",")
	if !ok {
		return 0, 0, fmt.Errorf("starfield: click %q must be x,y or center", click)
	}
	fx, errx := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	fy, erry := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err := errors.Join(errx, erry); err != nil {
		return 0, 0, fmt.Errorf("starfield: click %q: %w", click, err)
	}
	return float32(fx), float32(fy), nil
}

// centerStar returns the pixel position of the visible star whose center
// is closest to the middle of the view.
func (w *world) centerStar() (x, y float32, err error) {
	sz := w.Scene.Size
	mid := math32.Vec2(float32(sz.X)/2, float32(sz.Y)/2)
	best := float32(-1)
	for _, st := range w.Registry.Stars() {
		ndc, _, ok := w.Scene.Camera.Project(st.Pos())
		if !ok || ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 {
			continue
		}
		px := xyz.NDCToPixel(ndc, sz)
		if d := px.DistanceTo(mid); best < 0 || d < best {
			best = d
			x, y = px.X, px.Y
		}
	}
	if best < 0 {
		return 0, 0, errors.New("starfield: no star is visible")
	}
	return x, y, nil
}
