// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logreg is a small single-feature binary logistic regression,
// used to relate per-trial spike counts to behavioral outcome.
package logreg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Model is a binary logistic regression with one input feature.
// The feature is standardized internally during fitting; Coef and
// Intercept are reported on the original feature scale.
type Model struct {

	// fitted weight on the original feature scale
	Coef float64

	// fitted intercept on the original feature scale
	Intercept float64

	// learning rate for gradient descent
	LRate float64

	// number of full passes over the data
	Epochs int
}

// NewModel returns a Model with default fitting parameters.
func NewModel() *Model {
	return &Model{LRate: 0.1, Epochs: 500}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Fit fits the model to features xs and binary targets ys (0 or 1) by
// batch gradient descent on the cross-entropy loss.
func (m *Model) Fit(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("logreg: feature and target lengths differ: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("logreg: no samples")
	}
	mean, std := stat.MeanStdDev(xs, nil)
	if std == 0 || math.IsNaN(std) {
		std = 1
	}
	n := float64(len(xs))
	w, b := 0.0, 0.0
	for ep := 0; ep < m.Epochs; ep++ {
		gw, gb := 0.0, 0.0
		for i, x := range xs {
			z := (x - mean) / std
			err := sigmoid(w*z+b) - ys[i]
			gw += err * z
			gb += err
		}
		w -= m.LRate * gw / n
		b -= m.LRate * gb / n
	}
	// undo the standardization so coefficients apply to raw counts
	m.Coef = w / std
	m.Intercept = b - w*mean/std
	return nil
}

// Prob returns the predicted probability of class 1 for feature x.
func (m *Model) Prob(x float64) float64 {
	return sigmoid(m.Coef*x + m.Intercept)
}

// Predict returns the predicted class (0 or 1) for feature x.
func (m *Model) Predict(x float64) float64 {
	if m.Prob(x) >= 0.5 {
		return 1
	}
	return 0
}

// Accuracy returns the fraction of samples the model classifies correctly.
func (m *Model) Accuracy(xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	nc := 0
	for i, x := range xs {
		if m.Predict(x) == ys[i] {
			nc++
		}
	}
	return float64(nc) / float64(len(xs))
}
