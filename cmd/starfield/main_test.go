// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/starfield/annotate"
	"cogentcore.org/starfield/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	c := config.Defaults()
	c.Seed = 7
	c.StarCount = 200
	c.Width, c.Height = 160, 120
	c.Output = filepath.Join(t.TempDir(), "frame.png")
	return c
}

func TestRender(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, Render(c))
	info, err := os.Stat(c.Output)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderInvalidConfig(t *testing.T) {
	c := testConfig(t)
	c.ToneMappingExposure = -1
	assert.ErrorIs(t, Render(c), config.ErrInvalid)
}

func TestWorldAnnotate(t *testing.T) {
	c := testConfig(t)
	w, err := newWorld(c)
	require.NoError(t, err)
	assert.Equal(t, 200, w.Registry.Len())

	attach := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(attach, []byte("hello"), 0666))

	require.NoError(t, w.annotate("center", annotate.Fields{
		Date: "2024-01-01", Text: "first light", Attachment: fileBlob(attach),
	}))
	ann := w.Registry.Annotated()
	require.Len(t, ann, 1)
	mems := ann[0].Memories()
	require.Len(t, mems, 1)
	assert.Equal(t, "first light", mems[0].Text)
	assert.True(t, strings.HasPrefix(mems[0].Attachment, "blob:"))
	assert.Equal(t, annotate.Idle, w.Controller.State())

	err = w.annotate("center", annotate.Fields{Date: "2024-01-01"})
	assert.ErrorIs(t, err, annotate.ErrValidation)
}

func TestParseClick(t *testing.T) {
	w, err := newWorld(testConfig(t))
	require.NoError(t, err)
	x, y, err := w.parseClick(" 10, 20.5")
	require.NoError(t, err)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20.5), y)

	_, _, err = w.parseClick("10")
	assert.Error(t, err)
	_, _, err = w.parseClick("a,b")
	assert.Error(t, err)
}
