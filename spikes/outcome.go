// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"math"
	"strings"
)

// Numeric outcome codes recorded in the trial table.  These match the
// coding used in the behavioral task definitions.
const (
	Incorrect  = 0
	Correct    = 1
	Early      = 2
	NoResponse = 3
)

// outcomeCodes maps behavioral outcome labels to their numeric codes.
// Labels are matched case-insensitively after trimming whitespace.
var outcomeCodes = map[string]float64{
	"correct":        Correct,
	"hit":            Correct,
	"incorrect":      Incorrect,
	"miss":           Incorrect,
	"early":          Early,
	"early_response": Early,
	"no_response":    NoResponse,
	"ignore":         NoResponse,
}

// OutcomeCode maps a trial outcome label to its numeric code.
// Unrecognized or empty labels map to NaN (missing); it never fails.
func OutcomeCode(label string) float64 {
	if c, ok := outcomeCodes[strings.ToLower(strings.TrimSpace(label))]; ok {
		return c
	}
	return math.NaN()
}

// KnownOutcome reports whether the given label has a numeric code.
func KnownOutcome(label string) bool {
	_, ok := outcomeCodes[strings.ToLower(strings.TrimSpace(label))]
	return ok
}
