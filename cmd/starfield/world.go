// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/starfield/annotate"
	"cogentcore.org/starfield/base/randx"
	"cogentcore.org/starfield/config"
	"cogentcore.org/starfield/pick"
	"cogentcore.org/starfield/render"
	"cogentcore.org/starfield/star"
	"cogentcore.org/starfield/xyz"
)

// world is everything a frame needs: the scene, the stars in it, the
// pipeline that draws it and the controller that annotates it.
type world struct {
	Scene      *xyz.Scene
	Registry   *star.Registry
	Pipeline   *render.Pipeline
	Controller *annotate.Controller
}

func newWorld(c *config.Config) (*world, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc := xyz.NewScene("starfield")
	sc.SetSize(c.Size())
	sc.FogDensity = c.Fog
	if c.Axes {
		sc.AddAxes(c.Spread / 8)
	}
	rg := star.NewRegistry()
	rg.Generate(sc, randx.NewSysRand(seed), star.GenerateOptions{
		Count:  c.StarCount,
		Radius: c.StarRadius,
		Spread: c.Spread,
	})
	slog.Info("starfield: generated stars", "count", rg.Len(), "seed", seed)

	w := &world{
		Scene:    sc,
		Registry: rg,
		Pipeline: render.NewPipeline(sc.Size, c.Bloom(), c.ToneMappingExposure),
	}
	w.Controller = annotate.NewController(rg, &pick.Picker{Scene: sc, Registry: rg}, annotate.NewAttachments())
	return w, nil
}

// printMemories prints the memories of every annotated star.
func (w *world) printMemories() {
	for _, st := range w.Registry.Annotated() {
		pos := st.Pos()
		fmt.Printf("%s #%d at (%g, %g, %g):\n", st.Name, st.ID(), pos.X, pos.Y, pos.Z)
		for _, m := range st.Memories() {
			fmt.Println("\t" + m.String())
		}
	}
}

// fileBlob is a file on disk attached to a memory.
type fileBlob string

func (fb fileBlob) Name() string {
	return filepath.Base(string(fb))
}

func (fb fileBlob) Open() (io.ReadCloser, error) {
	return os.Open(string(fb))
}
