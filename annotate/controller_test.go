// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/starfield/star"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPicker picks the same star everywhere, or nothing if id < 0.
type fixedPicker struct {
	id    int
	calls int
}

func (fp *fixedPicker) PickAt(x, y float32) (int, bool) {
	fp.calls++
	return fp.id, fp.id >= 0
}

type bytesBlob struct {
	name string
	data string
}

func (b bytesBlob) Name() string { return b.name }

func (b bytesBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(b.data)), nil
}

type brokenBlob struct{}

func (brokenBlob) Name() string { return "broken.png" }

func (brokenBlob) Open() (io.ReadCloser, error) {
	return nil, errors.New("permission denied")
}

func newTestController(n, pickID int) (*Controller, *fixedPicker) {
	rg := star.NewRegistry()
	for range n {
		rg.New(nil, star.Options{Radius: 10})
	}
	fp := &fixedPicker{id: pickID}
	c := NewController(rg, fp, NewAttachments())
	return c, fp
}

func TestControllerSubmit(t *testing.T) {
	c, _ := newTestController(10, 7)
	var states []States
	c.OnChange = func(c *Controller) { states = append(states, c.State()) }

	require.NoError(t, c.Handle(PointerClicked{X: 10, Y: 20}))
	assert.Equal(t, AwaitingInput, c.State())
	id, ok := c.Selection()
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	require.NoError(t, c.Handle(FormSubmitted{Fields: Fields{Date: "2024-01-01", Text: "hello"}}))
	assert.Equal(t, Idle, c.State())
	_, ok = c.Selection()
	assert.False(t, ok)

	st, _ := c.Registry.FindByID(7)
	want := star.Memory{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Text: "hello"}
	assert.Equal(t, []star.Memory{want}, st.Memories())
	assert.Equal(t, []States{AwaitingInput, Submitting, Idle}, states)
}

func TestControllerValidation(t *testing.T) {
	c, _ := newTestController(3, 1)
	require.NoError(t, c.Handle(PointerClicked{}))
	st, _ := c.Registry.FindByID(1)
	before := st.NumMemories()

	for _, fs := range []Fields{
		{Date: "2024-01-01", Text: ""},
		{Date: "2024-01-01", Text: "   "},
		{Date: "", Text: "hello"},
		{Date: "01/02/2024", Text: "hello"},
	} {
		err := c.Handle(FormSubmitted{Fields: fs})
		assert.ErrorIs(t, err, ErrValidation, "%+v", fs)
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.NotEmpty(t, ve.Fields)
		assert.Equal(t, AwaitingInput, c.State())
		assert.Equal(t, before, st.NumMemories())
	}

	err := c.Handle(FormSubmitted{Fields: Fields{Date: "", Text: ""}})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "date is required", ve.Fields["date"])
	assert.Equal(t, "text is required", ve.Fields["text"])
	assert.Equal(t, "annotate: date is required; text is required", err.Error())
}

func TestControllerCancel(t *testing.T) {
	c, _ := newTestController(3, 2)
	require.NoError(t, c.Handle(PointerClicked{}))
	assert.Equal(t, AwaitingInput, c.State())
	require.NoError(t, c.Handle(FormCancelled{}))
	assert.Equal(t, Idle, c.State())
	st, _ := c.Registry.FindByID(2)
	assert.Equal(t, 0, st.NumMemories())

	// submitting without an open form does nothing
	require.NoError(t, c.Handle(FormSubmitted{Fields: Fields{Date: "2024-01-01", Text: "x"}}))
	assert.Equal(t, 0, st.NumMemories())
}

func TestControllerIgnoresSecondPick(t *testing.T) {
	c, fp := newTestController(5, 3)
	require.NoError(t, c.Handle(PointerClicked{}))
	fp.id = 4
	require.NoError(t, c.Handle(PointerClicked{}))
	id, _ := c.Selection()
	assert.Equal(t, 3, id)
	assert.Equal(t, 1, fp.calls)
}

func TestControllerPickMiss(t *testing.T) {
	c, _ := newTestController(5, -1)
	require.NoError(t, c.Handle(PointerClicked{}))
	assert.Equal(t, Idle, c.State())

	// an id that does not resolve never becomes a selection
	c2, _ := newTestController(5, 42)
	require.NoError(t, c2.Handle(PointerClicked{}))
	assert.Equal(t, Idle, c2.State())
}

func TestControllerStaleSelection(t *testing.T) {
	c, _ := newTestController(5, 3)
	require.NoError(t, c.Handle(PointerClicked{}))
	old := c.Registry
	c.Registry = star.NewRegistry()
	require.NoError(t, c.Handle(FormSubmitted{Fields: Fields{Date: "2024-01-01", Text: "hello"}}))
	assert.Equal(t, Idle, c.State())
	st, _ := old.FindByID(3)
	assert.Equal(t, 0, st.NumMemories())
}

func TestControllerAttachment(t *testing.T) {
	c, _ := newTestController(2, 0)
	require.NoError(t, c.Handle(PointerClicked{}))
	require.NoError(t, c.Handle(FormSubmitted{Fields: Fields{
		Date: "2024-02-03", Text: "photo", Attachment: bytesBlob{"sky.jpg", "jpegdata"},
	}}))
	st, _ := c.Registry.FindByID(0)
	mems := st.Memories()
	require.Len(t, mems, 1)
	assert.True(t, strings.HasPrefix(mems[0].Attachment, "blob:"))
	at, ok := c.Attachments.Get(mems[0].Attachment)
	require.True(t, ok)
	assert.Equal(t, "sky.jpg", at.Name)
	assert.True(t, bytes.Equal([]byte("jpegdata"), at.Data))

	// a broken attachment still records the memory
	require.NoError(t, c.Handle(PointerClicked{}))
	require.NoError(t, c.Handle(FormSubmitted{Fields: Fields{
		Date: "2024-02-04", Text: "lost", Attachment: brokenBlob{},
	}}))
	mems = st.Memories()
	require.Len(t, mems, 2)
	assert.Equal(t, "", mems[1].Attachment)
	assert.Equal(t, "photo", mems[0].Text)
	assert.Equal(t, 1, c.Attachments.Len())
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "AwaitingInput", AwaitingInput.String())
	assert.Equal(t, "States(9)", States(9).String())
}
