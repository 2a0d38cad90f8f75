// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sessdb reads and writes neurophysiology session recordings
// exported to SQLite form, one database file per subject / session,
// and discovers them in the standard directory layout:
//
//	<root>/sub-<subject>/sub-<subject>_ses-<session>_ecephys.db
//
// Each database holds a single-row sessions table, a trials table of
// behavioral trial interval metadata, a units table of sorted units,
// and a spikes table of absolute spike timestamps per unit.
package sessdb

// Trial is the interval metadata for one behavioral trial.
type Trial struct {

	// trial index within the session, in recorded order
	Index int

	// absolute start time of the trial, in seconds
	StartTime float64

	// offset of the behavioral (cue) event from trial start, in seconds
	EventOffset float64

	// behavioral outcome label, e.g. correct, incorrect, early, no_response
	Outcome string
}

// EventTime returns the absolute time of the trial's aligning event.
func (tr *Trial) EventTime() float64 {
	return tr.StartTime + tr.EventOffset
}

// Unit is one recorded / sorted neural unit and its spike train.
type Unit struct {

	// unit id within the session
	ID int

	// label from the sorting pipeline, e.g. probe and channel
	Label string

	// absolute spike timestamps in seconds, ascending
	Spikes []float64
}

// Session is the full contents of one session recording file.
type Session struct {

	// subject identifier
	Subject string

	// session identifier within subject
	Session string

	// free-form session description
	Description string

	Trials []Trial
	Units  []Unit
}

// NumSpikes returns the total spike count across all units.
func (se *Session) NumSpikes() int {
	n := 0
	for i := range se.Units {
		n += len(se.Units[i].Spikes)
	}
	return n
}
