// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayers(t *testing.T) {
	ls := DefaultLayers
	assert.True(t, ls.Has(Base))
	assert.True(t, ls.Has(Bloom))
	assert.True(t, ls.Has(Base|Bloom))
	assert.False(t, ls.Has(Overlay))
	assert.False(t, ls.Has(NoLayers))
	assert.True(t, ls.Intersects(Bloom|Overlay))
	assert.False(t, ls.Intersects(Overlay))

	ls.Set(Overlay, true)
	assert.Equal(t, AllLayers, ls)
	ls.Set(Bloom, false)
	assert.Equal(t, Base|Overlay, ls)
	assert.Equal(t, "Base|Overlay", ls.String())
	assert.Equal(t, "None", NoLayers.String())
}
