// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logreg

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// CrossVal runs k-fold cross-validation: samples are shuffled with rng,
// partitioned into k folds, and for each fold a fresh model is fit on
// the remaining folds and scored on the held-out one.  It returns the
// per-fold accuracies in fold order.
func CrossVal(xs, ys []float64, k int, rng *rand.Rand) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("logreg: feature and target lengths differ: %d != %d", len(xs), len(ys))
	}
	if k < 2 {
		return nil, fmt.Errorf("logreg: need at least 2 folds, got %d", k)
	}
	if len(xs) < k {
		return nil, fmt.Errorf("logreg: %d samples is fewer than %d folds", len(xs), k)
	}
	perm := rng.Perm(len(xs))
	accs := make([]float64, k)
	for f := 0; f < k; f++ {
		var trx, try, tex, tey []float64
		for i, pi := range perm {
			if i%k == f {
				tex = append(tex, xs[pi])
				tey = append(tey, ys[pi])
			} else {
				trx = append(trx, xs[pi])
				try = append(try, ys[pi])
			}
		}
		m := NewModel()
		if err := m.Fit(trx, try); err != nil {
			return nil, err
		}
		accs[f] = m.Accuracy(tex, tey)
	}
	return accs, nil
}

// Summary returns the mean and sample standard deviation of the
// per-fold accuracies.
func Summary(accs []float64) (mean, std float64) {
	return stat.MeanStdDev(accs, nil)
}
