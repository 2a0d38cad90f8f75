// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spikes windows spike trains around behavioral events and builds
// the per-trial and per-(trial, unit) summary tables used for plotting
// and classification.
package spikes

import (
	"strconv"

	"cogentcore.org/core/tensor/table"
	"spikesight/sessdb"
)

// LogPrec is precision for saving float values in tables
const LogPrec = 4

// RasterRow holds the aligned, windowed spike times for one
// (trial, unit) pair.
type RasterRow struct {

	// subject id
	Subject string

	// session id
	Session string

	// trial index within session
	Trial int

	// unit id within session
	Unit int

	// spike times relative to the trial event, windowed, ascending
	Times []float64
}

// NewTrialTable returns an empty trial summary table with the standard
// columns: Subject, Session, Trial, SpikeCount, Outcome.
func NewTrialTable() *table.Table {
	dt := table.NewTable("Trials")
	dt.SetMetaData("name", "Trials")
	dt.SetMetaData("desc", "per-trial spike counts and behavioral outcomes")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	dt.AddStringColumn("Subject")
	dt.AddStringColumn("Session")
	dt.AddIntColumn("Trial")
	dt.AddFloat64Column("SpikeCount")
	dt.AddFloat64Column("Outcome")
	return dt
}

// Extract computes the contribution of one session: it appends one row per
// trial to dt (spike count summed across units in countWin, outcome code)
// and returns one RasterRow per (trial, unit) pair windowed by rasterWin.
// A session with no trials or no units contributes zero rows: dt is left
// untouched and no raster rows are returned.
func Extract(se *sessdb.Session, countWin, rasterWin Window, dt *table.Table) []RasterRow {
	if len(se.Trials) == 0 || len(se.Units) == 0 {
		return nil
	}
	rows := make([]RasterRow, 0, len(se.Trials)*len(se.Units))
	for ti := range se.Trials {
		tr := &se.Trials[ti]
		ev := tr.EventTime()
		count := 0
		for ui := range se.Units {
			un := &se.Units[ui]
			count += len(Align(un.Spikes, ev, countWin))
			rows = append(rows, RasterRow{
				Subject: se.Subject,
				Session: se.Session,
				Trial:   tr.Index,
				Unit:    un.ID,
				Times:   Align(un.Spikes, ev, rasterWin),
			})
		}
		row := dt.Rows
		dt.AddRows(1)
		dt.SetString("Subject", row, se.Subject)
		dt.SetString("Session", row, se.Session)
		dt.SetFloat("Trial", row, float64(tr.Index))
		dt.SetFloat("SpikeCount", row, float64(count))
		dt.SetFloat("Outcome", row, OutcomeCode(tr.Outcome))
	}
	return rows
}
