// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikesight is the overall repository for the spikesight session
analysis tool, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* sessdb: reading, writing and discovering session recording files (SQLite
exports of subject / session recordings, one file per session).

* spikes: the core analysis -- aligning spike trains to behavioral events,
windowing and counting them, mapping outcome labels to numeric codes, and
building the trial, raster and PSTH tables.

* logreg: a small binary logistic regression with k-fold cross-validation,
relating per-trial spike counts to behavioral outcome.

* analysis: the pipeline tying the above together over a dataset directory,
with per-file log-and-skip error handling.

* cmd/spikesight: the command-line front end, including the plot window
and a synthetic dataset generator.
*/
package spikesight
