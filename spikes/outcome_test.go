// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeCode(t *testing.T) {
	cases := []struct {
		label string
		code  float64
	}{
		{"correct", Correct},
		{"incorrect", Incorrect},
		{"early", Early},
		{"early_response", Early},
		{"no_response", NoResponse},
		{"CORRECT", Correct},
		{"  correct ", Correct},
		{"hit", Correct},
		{"miss", Incorrect},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, OutcomeCode(c.label), "label %q", c.label)
	}
}

func TestOutcomeCodeUnknown(t *testing.T) {
	for _, lbl := range []string{"", "bogus", "correct!", "n/a"} {
		assert.True(t, math.IsNaN(OutcomeCode(lbl)), "label %q should be missing", lbl)
		assert.False(t, KnownOutcome(lbl))
	}
	assert.True(t, KnownOutcome("no_response"))
}
