// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sessdb

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE sessions (subject TEXT, session TEXT, description TEXT);
CREATE TABLE trials (id INTEGER PRIMARY KEY, start_time REAL, event_offset REAL, outcome TEXT);
CREATE TABLE units (id INTEGER PRIMARY KEY, label TEXT);
CREATE TABLE spikes (unit_id INTEGER, t REAL);
CREATE INDEX spikes_unit ON spikes (unit_id);
`

// Write creates a new session database at path with the standard schema
// and writes the full contents of se into it.  The file must not already
// contain session tables.
func Write(path string, se *Session) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sessdb: create %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sessdb: create schema: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sessdb: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO sessions (subject, session, description) VALUES (?, ?, ?)`,
		se.Subject, se.Session, se.Description); err != nil {
		return fmt.Errorf("sessdb: write session: %w", err)
	}
	for i := range se.Trials {
		tr := &se.Trials[i]
		if _, err := tx.Exec(`INSERT INTO trials (id, start_time, event_offset, outcome) VALUES (?, ?, ?, ?)`,
			tr.Index, tr.StartTime, tr.EventOffset, tr.Outcome); err != nil {
			return fmt.Errorf("sessdb: write trial %d: %w", tr.Index, err)
		}
	}
	for i := range se.Units {
		un := &se.Units[i]
		if _, err := tx.Exec(`INSERT INTO units (id, label) VALUES (?, ?)`, un.ID, un.Label); err != nil {
			return fmt.Errorf("sessdb: write unit %d: %w", un.ID, err)
		}
		for _, t := range un.Spikes {
			if _, err := tx.Exec(`INSERT INTO spikes (unit_id, t) VALUES (?, ?)`, un.ID, t); err != nil {
				return fmt.Errorf("sessdb: write spikes for unit %d: %w", un.ID, err)
			}
		}
	}
	return tx.Commit()
}
