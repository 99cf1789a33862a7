// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

// Event is an input to the [Controller]. The host translates its own
// pointer and form events into these.
type Event interface {
	isEvent()
}

// PointerClicked is a click at a pixel position in the viewport.
type PointerClicked struct {
	X, Y float32
}

// FormSubmitted is the submission of the annotation form.
type FormSubmitted struct {
	Fields Fields
}

// FormCancelled is the dismissal of the annotation form.
type FormCancelled struct{}

func (PointerClicked) isEvent() {}
func (FormSubmitted) isEvent()  {}
func (FormCancelled) isEvent()  {}
