// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRand(t *testing.T) {
	a, b := NewSysRand(42), NewSysRand(42)
	for range 100 {
		fa, fb := a.Float32(), b.Float32()
		assert.Equal(t, fa, fb)
		assert.GreaterOrEqual(t, fa, float32(0))
		assert.Less(t, fa, float32(1))
		ia := a.Intn(5)
		assert.Equal(t, ia, b.Intn(5))
		assert.GreaterOrEqual(t, ia, 0)
		assert.Less(t, ia, 5)
	}
}

func TestGlobalRand(t *testing.T) {
	var r Rand = NewGlobalRand()
	for range 100 {
		assert.Less(t, r.Intn(3), 3)
		assert.Less(t, r.Float32(), float32(1))
	}
}
