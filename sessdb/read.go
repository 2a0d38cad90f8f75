// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sessdb

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Read opens the session database at path, reads it fully, and closes it
// before returning.  A database without a trials or units table yields a
// Session with zero trials or zero units rather than an error: such files
// simply contribute no data.  A missing or malformed file is an error.
func Read(path string) (*Session, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sessdb: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sessdb: open %s: %w", path, err)
	}
	defer db.Close()

	se := &Session{}
	if err := readInfo(db, se); err != nil {
		return nil, err
	}
	ok, err := hasTable(db, "trials")
	if err != nil {
		return nil, err
	}
	if ok {
		if err := readTrials(db, se); err != nil {
			return nil, err
		}
	}
	ok, err = hasTable(db, "units")
	if err != nil {
		return nil, err
	}
	if ok {
		if err := readUnits(db, se); err != nil {
			return nil, err
		}
	}
	return se, nil
}

// hasTable reports whether the database contains the named table.
// It also serves as the malformed-file check: a non-database file fails here.
func hasTable(db *sql.DB, name string) (bool, error) {
	row := db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("sessdb: not a session database: %w", err)
	}
	return n > 0, nil
}

func readInfo(db *sql.DB, se *Session) error {
	ok, err := hasTable(db, "sessions")
	if err != nil {
		return err
	}
	if !ok {
		return nil // ids fall back to the filename convention
	}
	row := db.QueryRow(`SELECT subject, session, description FROM sessions LIMIT 1`)
	err = row.Scan(&se.Subject, &se.Session, &se.Description)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sessdb: sessions table: %w", err)
	}
	return nil
}

func readTrials(db *sql.DB, se *Session) error {
	rows, err := db.Query(`SELECT id, start_time, event_offset, outcome FROM trials ORDER BY id`)
	if err != nil {
		return fmt.Errorf("sessdb: trials table: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tr Trial
		if err := rows.Scan(&tr.Index, &tr.StartTime, &tr.EventOffset, &tr.Outcome); err != nil {
			return fmt.Errorf("sessdb: trials table: %w", err)
		}
		se.Trials = append(se.Trials, tr)
	}
	return rows.Err()
}

func readUnits(db *sql.DB, se *Session) error {
	rows, err := db.Query(`SELECT id, label FROM units ORDER BY id`)
	if err != nil {
		return fmt.Errorf("sessdb: units table: %w", err)
	}
	for rows.Next() {
		var un Unit
		if err := rows.Scan(&un.ID, &un.Label); err != nil {
			rows.Close()
			return fmt.Errorf("sessdb: units table: %w", err)
		}
		se.Units = append(se.Units, un)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	ok, err := hasTable(db, "spikes")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for i := range se.Units {
		un := &se.Units[i]
		srows, err := db.Query(`SELECT t FROM spikes WHERE unit_id = ? ORDER BY t`, un.ID)
		if err != nil {
			return fmt.Errorf("sessdb: spikes table: %w", err)
		}
		for srows.Next() {
			var t float64
			if err := srows.Scan(&t); err != nil {
				srows.Close()
				return fmt.Errorf("sessdb: spikes table: %w", err)
			}
			un.Spikes = append(un.Spikes, t)
		}
		if err := srows.Err(); err != nil {
			srows.Close()
			return err
		}
		srows.Close()
	}
	return nil
}
