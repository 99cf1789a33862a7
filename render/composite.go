// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "fmt"

// Composite is the merge pass: it adds the bloom and overlay targets
// into the base target, pixel by pixel, without clamping. All three must
// have the same size, otherwise an error wrapping [ErrSizeMismatch] is
// returned and base is left unchanged.
func Composite(base, bloom, overlay *Target) error {
	for _, tg := range []*Target{bloom, overlay} {
		if tg.Size != base.Size || !tg.Valid() || !base.Valid() {
			return fmt.Errorf("render.Composite: %s target %v vs %s target %v: %w", tg.Name, tg.Size, base.Name, base.Size, ErrSizeMismatch)
		}
	}
	for i := range base.Pix {
		base.Pix[i] += bloom.Pix[i] + overlay.Pix[i]
	}
	return nil
}
