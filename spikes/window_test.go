// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-8

func cmpF64(t *testing.T, got, cor []float64) {
	t.Helper()
	if len(got) != len(cor) {
		t.Fatalf("length mismatch: got %v, cor %v", got, cor)
	}
	for i := range got {
		if math.Abs(got[i]-cor[i]) > difTol {
			t.Errorf("idx: %v, got: %v, cor: %v", i, got[i], cor[i])
		}
	}
}

func TestAlign(t *testing.T) {
	win := Window{Start: -1, End: 2}
	spks := []float64{8.5, 9.2, 10.3, 11.9, 13.5}
	al := Align(spks, 10, win)
	cmpF64(t, al, []float64{-0.8, 0.3, 1.9})
}

func TestAlignBoundsInclusive(t *testing.T) {
	win := Window{Start: -1, End: 2}
	al := Align([]float64{9, 12, 8.999, 12.001}, 10, win)
	cmpF64(t, al, []float64{-1, 2})
}

func TestAlignSortsUnordered(t *testing.T) {
	win := Window{Start: -1, End: 1}
	al := Align([]float64{10.5, 9.5, 10}, 10, win)
	cmpF64(t, al, []float64{-0.5, 0, 0.5})
}

func TestAlignEmpty(t *testing.T) {
	win := Window{Start: -1, End: 2}
	assert.Empty(t, Align(nil, 10, win))
	assert.Empty(t, Align([]float64{0, 100}, 10, win))
}

func TestWindowWidth(t *testing.T) {
	assert.InDelta(t, 3.0, Window{Start: -1, End: 2}.Width(), difTol)
	assert.True(t, Window{Start: -1, End: 2}.Contains(-1))
	assert.True(t, Window{Start: -1, End: 2}.Contains(2))
	assert.False(t, Window{Start: -1, End: 2}.Contains(2.01))
}
