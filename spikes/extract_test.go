// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"spikesight/sessdb"
)

func testSession() *sessdb.Session {
	return &sessdb.Session{
		Subject: "01",
		Session: "01",
		Trials: []sessdb.Trial{
			{Index: 0, StartTime: 0, EventOffset: 1, Outcome: "correct"},
			{Index: 1, StartTime: 10, EventOffset: 1, Outcome: "incorrect"},
			{Index: 2, StartTime: 20, EventOffset: 1, Outcome: "weird"},
		},
		Units: []sessdb.Unit{
			// trial events at t = 1, 11, 21
			{ID: 0, Label: "u0", Spikes: []float64{1.1, 1.5, 5.0, 11.2, 21.9}},
			{ID: 1, Label: "u1", Spikes: []float64{0.5, 2.9, 11.5, 12.9, 13.5}},
		},
	}
}

func TestExtractCounts(t *testing.T) {
	countWin := Window{Start: 0, End: 2}
	rasterWin := Window{Start: -1, End: 2}
	se := testSession()
	dt := NewTrialTable()
	rows := Extract(se, countWin, rasterWin, dt)

	require.Equal(t, 3, dt.Rows)
	require.Len(t, rows, 6) // 3 trials x 2 units

	// trial 0: u0 has 1.1, 1.5 in [1, 3]; u1 has 2.9
	assert.Equal(t, 3.0, dt.Float("SpikeCount", 0))
	// trial 1: u0 has 11.2; u1 has 11.5, 12.9
	assert.Equal(t, 3.0, dt.Float("SpikeCount", 1))
	// trial 2: u0 has 21.9; u1 none
	assert.Equal(t, 1.0, dt.Float("SpikeCount", 2))

	// per-trial count equals the sum of per-unit windowed counts
	for ti := 0; ti < dt.Rows; ti++ {
		sum := 0
		ev := se.Trials[ti].EventTime()
		for ui := range se.Units {
			sum += len(Align(se.Units[ui].Spikes, ev, countWin))
		}
		assert.Equal(t, float64(sum), dt.Float("SpikeCount", ti), "trial %d", ti)
	}

	assert.Equal(t, Correct, int(dt.Float("Outcome", 0)))
	assert.Equal(t, Incorrect, int(dt.Float("Outcome", 1)))
	assert.True(t, math.IsNaN(dt.Float("Outcome", 2)))
	assert.Equal(t, "01", dt.StringValue("Subject", 0))
}

func TestExtractRasterRows(t *testing.T) {
	countWin := Window{Start: 0, End: 2}
	rasterWin := Window{Start: -1, End: 2}
	se := testSession()
	dt := NewTrialTable()
	rows := Extract(se, countWin, rasterWin, dt)

	// rows are in trial order then unit order
	assert.Equal(t, 0, rows[0].Trial)
	assert.Equal(t, 0, rows[0].Unit)
	assert.Equal(t, 0, rows[1].Trial)
	assert.Equal(t, 1, rows[1].Unit)
	assert.Equal(t, 2, rows[5].Trial)

	// trial 0 unit 1: spikes 0.5, 2.9 relative to event 1 -> -0.5, 1.9
	cmpF64(t, rows[1].Times, []float64{-0.5, 1.9})
	// trial 1 unit 1: 11.5, 12.9 -> 0.5, 1.9 (13.5 out of window)
	cmpF64(t, rows[3].Times, []float64{0.5, 1.9})
}

func TestExtractEmpty(t *testing.T) {
	countWin := Window{Start: 0, End: 2}
	rasterWin := Window{Start: -1, End: 2}

	noUnits := testSession()
	noUnits.Units = nil
	dt := NewTrialTable()
	rows := Extract(noUnits, countWin, rasterWin, dt)
	assert.Len(t, rows, 0)
	assert.Equal(t, 0, dt.Rows) // empty contribution, not zero-count rows

	noTrials := testSession()
	noTrials.Trials = nil
	dt = NewTrialTable()
	rows = Extract(noTrials, countWin, rasterWin, dt)
	assert.Len(t, rows, 0)
	assert.Equal(t, 0, dt.Rows)
}
