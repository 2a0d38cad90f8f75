// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logreg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sepData returns a cleanly separable dataset: class 1 has high counts.
func sepData(n int, rng *rand.Rand) (xs, ys []float64) {
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			xs = append(xs, 20+5*rng.Float64())
			ys = append(ys, 1)
		} else {
			xs = append(xs, 2+3*rng.Float64())
			ys = append(ys, 0)
		}
	}
	return
}

func TestFitSeparable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	xs, ys := sepData(100, rng)
	m := NewModel()
	require.NoError(t, m.Fit(xs, ys))

	assert.Greater(t, m.Coef, 0.0, "higher counts predict class 1")
	assert.GreaterOrEqual(t, m.Accuracy(xs, ys), 0.95)
	assert.Greater(t, m.Prob(25), 0.5)
	assert.Less(t, m.Prob(3), 0.5)
	assert.Equal(t, 1.0, m.Predict(25))
	assert.Equal(t, 0.0, m.Predict(3))
}

func TestFitErrors(t *testing.T) {
	m := NewModel()
	assert.Error(t, m.Fit(nil, nil))
	assert.Error(t, m.Fit([]float64{1, 2}, []float64{1}))
}

func TestFitConstantFeature(t *testing.T) {
	// zero variance must not blow up
	m := NewModel()
	require.NoError(t, m.Fit([]float64{5, 5, 5, 5}, []float64{1, 0, 1, 0}))
	assert.False(t, m.Prob(5) < 0 || m.Prob(5) > 1)
}

func TestCrossVal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xs, ys := sepData(100, rng)
	accs, err := CrossVal(xs, ys, 5, rng)
	require.NoError(t, err)
	require.Len(t, accs, 5)
	mean, std := Summary(accs)
	assert.GreaterOrEqual(t, mean, 0.9)
	assert.GreaterOrEqual(t, std, 0.0)
	for _, a := range accs {
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)
	}
}

func TestCrossValErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := CrossVal([]float64{1, 2, 3}, []float64{0, 1, 0}, 1, rng)
	assert.Error(t, err)
	_, err = CrossVal([]float64{1, 2}, []float64{0, 1}, 5, rng)
	assert.Error(t, err)
	_, err = CrossVal([]float64{1}, []float64{0, 1}, 2, rng)
	assert.Error(t, err)
}
