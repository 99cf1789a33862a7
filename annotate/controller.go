// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotate implements the state machine that binds the
// annotation form to a picked star and commits memories to it.
package annotate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/starfield/star"
)

// States are the states of the [Controller].
type States int32

const (
	// Idle has no open form; clicks are passed to the picker.
	Idle States = iota

	// AwaitingInput has the form open, bound to the selected star.
	AwaitingInput

	// Submitting is committing a validated memory to the registry.
	Submitting
)

func (s States) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingInput:
		return "AwaitingInput"
	case Submitting:
		return "Submitting"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// Picker resolves a pointer position in the viewport to a star id.
type Picker interface {
	PickAt(x, y float32) (int, bool)
}

// Controller gates the annotation form. Only one selection exists at a
// time: clicks are only picked while Idle, and are ignored while a form
// is open. It is the only writer of memories into the registry.
//
// Controller is not safe for concurrent use; the host delivers events
// between frames on the render goroutine.
type Controller struct {

	// Registry is where memories are committed.
	Registry *star.Registry

	// Picker resolves clicks to stars.
	Picker Picker

	// Attachments stores attached files; if nil, attachments are dropped.
	Attachments *Attachments

	// OnChange, if set, is called after every state change.
	OnChange func(c *Controller)

	state     States
	selection int
}

// NewController returns a new Idle controller.
func NewController(rg *star.Registry, pk Picker, at *Attachments) *Controller {
	return &Controller{Registry: rg, Picker: pk, Attachments: at}
}

// State returns the current state.
func (c *Controller) State() States {
	return c.state
}

// Selection returns the id of the star bound to the open form,
// and false when Idle.
func (c *Controller) Selection() (int, bool) {
	if c.state == Idle {
		return 0, false
	}
	return c.selection, true
}

func (c *Controller) setState(s States) {
	c.state = s
	if c.OnChange != nil {
		c.OnChange(c)
	}
}

// Handle processes one event. It returns a [*ValidationError] when a
// submitted form is invalid, in which case the state does not change.
// All other outcomes, including a pick miss and a stale selection,
// return nil.
func (c *Controller) Handle(ev Event) error {
	switch ev := ev.(type) {
	case PointerClicked:
		c.click(ev)
	case FormCancelled:
		c.cancel()
	case FormSubmitted:
		return c.submit(ev.Fields)
	default:
		return fmt.Errorf("annotate.Controller: unknown event %T", ev)
	}
	return nil
}

func (c *Controller) click(ev PointerClicked) {
	if c.state != Idle || c.Picker == nil {
		return
	}
	id, ok := c.Picker.PickAt(ev.X, ev.Y)
	if !ok {
		return
	}
	if _, ok := c.Registry.FindByID(id); !ok {
		return
	}
	c.selection = id
	c.setState(AwaitingInput)
}

func (c *Controller) cancel() {
	if c.state != AwaitingInput {
		return
	}
	c.setState(Idle)
}

func (c *Controller) submit(fs Fields) error {
	if c.state != AwaitingInput {
		return nil
	}
	mem, err := fs.Validate()
	if err != nil {
		return err
	}
	c.setState(Submitting)
	if fs.Attachment != nil {
		mem.Attachment = c.attach(fs.Attachment)
	}
	if err := c.Registry.AddMemory(c.selection, mem); err != nil {
		slog.Warn("annotate: selected star no longer exists", "star", c.selection, "err", err)
	} else {
		slog.Info("annotate: memory added", "star", c.selection, "date", mem.Date.Format(star.DateLayout))
	}
	c.setState(Idle)
	return nil
}

// attach stores the blob and returns its handle, or "" if it cannot
// be read: a failed attachment never blocks the memory.
func (c *Controller) attach(b Blob) string {
	if c.Attachments == nil {
		return ""
	}
	handle, err := c.Attachments.Add(b)
	if err != nil {
		slog.Warn("annotate: dropping attachment", "err", err)
		return ""
	}
	return handle
}
