// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import "sort"

// Window is a time interval relative to an aligning event, in seconds.
// Both bounds are inclusive.  Start is typically negative (before the event).
type Window struct {

	// start of the window relative to the event, in seconds
	Start float64

	// end of the window relative to the event, in seconds
	End float64
}

// Width returns the total extent of the window in seconds.
func (w Window) Width() float64 {
	return w.End - w.Start
}

// Contains reports whether relative time t falls within the window,
// bounds inclusive.
func (w Window) Contains(t float64) bool {
	return t >= w.Start && t <= w.End
}

// Align shifts absolute spike times to be relative to the given event time,
// keeps only those falling within the window, and returns them sorted
// ascending.  The input slice is not modified and need not be sorted.
func Align(spks []float64, event float64, win Window) []float64 {
	rel := make([]float64, 0, len(spks))
	for _, t := range spks {
		rt := t - event
		if win.Contains(rt) {
			rel = append(rel, rt)
		}
	}
	sort.Float64s(rel)
	return rel
}
