// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sessdb

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
)

// File is one discovered session recording file.
type File struct {

	// full path to the database file
	Path string

	// subject id parsed from the filename
	Subject string

	// session id parsed from the filename
	Session string
}

// fileRe matches the session filename convention:
// sub-<subject>_ses-<session>_ecephys.db
var fileRe = regexp.MustCompile(`^sub-([A-Za-z0-9]+)_ses-([A-Za-z0-9]+)_ecephys\.db$`)

// subjDirRe matches subject subdirectory names.
var subjDirRe = regexp.MustCompile(`^sub-[A-Za-z0-9]+$`)

// Find walks the dataset root and returns all session files matching the
// naming convention, in sorted walk order (subjects, then sessions within
// subject).  Files outside sub-* directories or with other names are
// ignored.  A missing root is an error.
func Find(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !subjDirRe.MatchString(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		m := fileRe.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}
		files = append(files, File{Path: path, Subject: m[1], Session: m[2]})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sessdb: find %s: %w", root, err)
	}
	return files, nil
}

// Filename returns the conventional filename for a subject / session pair,
// relative to the dataset root.
func Filename(subject, session string) string {
	return filepath.Join("sub-"+subject, fmt.Sprintf("sub-%s_ses-%s_ecephys.db", subject, session))
}
