// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/starfield/annotate"
	"cogentcore.org/starfield/config"
	"cogentcore.org/starfield/star"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// configFile is the config file watched by the view command.
const configFile = "starfield.toml"

// View opens a window that renders the star field continuously.
// Drag to orbit, right drag to pan, scroll to zoom and click a star
// to attach a memory to it.
func View(c *config.Config) error {
	w, err := newWorld(c)
	if err != nil {
		return err
	}
	v := &viewer{world: w}
	w.Controller.OnChange = v.stateChanged
	if c.Watch && errors.Log1(fsx.FileExists(configFile)) {
		cw, err := config.Watch(configFile)
		if err != nil {
			slog.Warn("starfield: not watching config", "file", configFile, "err", err)
		} else {
			defer cw.Close()
			v.changes = cw.Changes
		}
	}
	ebiten.SetWindowTitle("Starfield")
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(v)
}

// formFields are the fields of the in-window form, in Tab order.
const (
	fieldDate = iota
	fieldText
	fieldAttach
	numFields
)

var fieldLabels = [numFields]string{"Date", "Text", "File"}

// viewer is the [ebiten.Game] of the view command. Input, camera
// changes and config reloads are all applied in Update, so that the
// scene never changes while a frame is drawn.
type viewer struct {
	*world

	changes <-chan *config.Config
	frame   *ebiten.Image

	// mouse drag state
	pressed  bool
	dragged  bool
	pressPos image.Point
	lastPos  image.Point

	// form state
	fields  [numFields]string
	focus   int
	formErr string
	chars   []rune
}

// dragSlop is how far the pointer may move, in pixels, before
// a press is a drag rather than a click.
const dragSlop = 4

func (v *viewer) Update() error {
	select {
	case c := <-v.changes:
		c.Apply(v.Pipeline)
		v.Scene.FogDensity = c.Fog
	default:
	}
	if v.Controller.State() == annotate.AwaitingInput {
		v.updateForm()
		return nil
	}
	v.updatePointer()
	return nil
}

func (v *viewer) updatePointer() {
	x, y := ebiten.CursorPosition()
	pos := image.Point{x, y}
	cam := &v.Scene.Camera

	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.Zoom(float32(-wy) * 0.1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		v.pressed, v.dragged = true, false
		v.pressPos, v.lastPos = pos, pos
		return
	}
	if !v.pressed {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		v.pressed = false
		if !v.dragged && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			errors.Log(v.Controller.Handle(annotate.PointerClicked{X: float32(x), Y: float32(y)}))
		}
		return
	}
	d := pos.Sub(v.pressPos)
	if !v.dragged && d.X*d.X+d.Y*d.Y < dragSlop*dragSlop {
		return
	}
	v.dragged = true
	del := pos.Sub(v.lastPos)
	v.lastPos = pos
	switch {
	case left:
		cam.Orbit(float32(-del.X)*0.3, float32(-del.Y)*0.3)
	case right:
		// scale so the point under the pointer follows it
		scale := cam.ViewVector().Length() / float32(v.Scene.Size.Y)
		cam.Pan(float32(del.X)*scale, float32(-del.Y)*scale)
	}
}

func (v *viewer) updateForm() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		errors.Log(v.Controller.Handle(annotate.FormCancelled{}))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		v.submit()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.focus = (v.focus + 1) % numFields
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		f := []rune(v.fields[v.focus])
		if len(f) > 0 {
			v.fields[v.focus] = string(f[:len(f)-1])
		}
		return
	}
	v.chars = ebiten.AppendInputChars(v.chars[:0])
	v.fields[v.focus] += string(v.chars)
}

func (v *viewer) submit() {
	fs := annotate.Fields{Date: v.fields[fieldDate], Text: v.fields[fieldText]}
	if fn := strings.TrimSpace(v.fields[fieldAttach]); fn != "" {
		fs.Attachment = fileBlob(fn)
	}
	err := v.Controller.Handle(annotate.FormSubmitted{Fields: fs})
	if errors.Is(err, annotate.ErrValidation) {
		v.formErr = err.Error()
		return
	}
	errors.Log(err)
}

// stateChanged resets the form each time it is opened.
func (v *viewer) stateChanged(c *annotate.Controller) {
	if c.State() != annotate.AwaitingInput {
		return
	}
	v.fields = [numFields]string{fieldDate: time.Now().Format(star.DateLayout)}
	v.focus = fieldText
	v.formErr = ""
	v.pressed = false
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if err := v.Pipeline.Render(v.Scene); err != nil {
		slog.Error("starfield: render failed", "err", err)
		return
	}
	img := v.Pipeline.Image()
	if v.frame == nil || v.frame.Bounds().Size() != img.Bounds().Size() {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
	}
	v.frame.WritePixels(img.Pix)
	screen.DrawImage(v.frame, nil)
	if id, ok := v.Controller.Selection(); ok {
		v.drawForm(screen, id)
	}
}

// drawForm draws the annotation form for the star with the given id.
func (v *viewer) drawForm(screen *ebiten.Image, id int) {
	st, ok := v.Registry.FindByID(id)
	if !ok {
		return
	}
	const x, y, lh = 20, 20, 18
	vector.DrawFilledRect(screen, x-8, y-8, 420, lh*(numFields+5), color.RGBA{0, 0, 0, 0xC0}, false)
	ebitenutil.DebugPrintAt(screen, "New memory for "+st.Name, x, y)
	for i, label := range fieldLabels {
		val := v.fields[i]
		if i == v.focus {
			val += "_"
		}
		ebitenutil.DebugPrintAt(screen, label+": "+val, x, y+lh*(i+1))
	}
	row := y + lh*(numFields+1)
	if v.formErr != "" {
		ebitenutil.DebugPrintAt(screen, v.formErr, x, row)
	}
	ebitenutil.DebugPrintAt(screen, "Tab: next field  Enter: save  Esc: cancel", x, row+lh)
	if n := st.NumMemories(); n > 0 {
		ebitenutil.DebugPrintAt(screen, st.Memories()[n-1].String(), x, row+2*lh)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.Scene.SetSize(image.Point{outsideWidth, outsideHeight})
	return outsideWidth, outsideHeight
}
