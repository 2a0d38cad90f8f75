// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sessdb

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// GenConfig are the parameters for generating a synthetic dataset.
type GenConfig struct {

	// number of subjects to generate
	Subjects int

	// sessions per subject
	Sessions int

	// trials per session
	Trials int

	// units per session
	Units int

	// baseline firing rate in Hz
	BaseRate float64

	// added post-event rate on correct trials in Hz, so that outcome is
	// decodable from spike counts
	CorrectBoost float64

	// trial-to-trial interval in seconds
	TrialSpacing float64

	// offset of the cue event from trial start in seconds
	EventOffset float64
}

// GenDefaults returns generation parameters producing a small dataset
// where outcome is reliably decodable from windowed spike counts.
func GenDefaults() GenConfig {
	return GenConfig{
		Subjects:     2,
		Sessions:     2,
		Trials:       60,
		Units:        8,
		BaseRate:     5,
		CorrectBoost: 10,
		TrialSpacing: 10,
		EventOffset:  1,
	}
}

// genOutcomes is the label distribution used for synthetic trials.
var genOutcomes = []string{"correct", "correct", "correct", "incorrect", "incorrect", "early", "no_response"}

// Generate writes a synthetic dataset under root in the standard layout,
// returning the paths written.  Spike trains are Poisson with the baseline
// rate, plus an elevated rate for two seconds after the event on correct
// trials.
func Generate(root string, cfg GenConfig, rng *rand.Rand) ([]string, error) {
	var paths []string
	for si := 0; si < cfg.Subjects; si++ {
		subj := fmt.Sprintf("%02d", si+1)
		dir := filepath.Join(root, "sub-"+subj)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sessdb: generate: %w", err)
		}
		for ssi := 0; ssi < cfg.Sessions; ssi++ {
			sess := fmt.Sprintf("%02d", ssi+1)
			se := genSession(subj, sess, cfg, rng)
			path := filepath.Join(root, Filename(subj, sess))
			if err := Write(path, se); err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func genSession(subj, sess string, cfg GenConfig, rng *rand.Rand) *Session {
	se := &Session{
		Subject:     subj,
		Session:     sess,
		Description: "synthetic session generated by spikesight gen",
	}
	for ti := 0; ti < cfg.Trials; ti++ {
		se.Trials = append(se.Trials, Trial{
			Index:       ti,
			StartTime:   float64(ti) * cfg.TrialSpacing,
			EventOffset: cfg.EventOffset,
			Outcome:     genOutcomes[rng.Intn(len(genOutcomes))],
		})
	}
	for ui := 0; ui < cfg.Units; ui++ {
		un := Unit{ID: ui, Label: fmt.Sprintf("probe0-ch%02d", ui)}
		for ti := range se.Trials {
			tr := &se.Trials[ti]
			t0 := tr.StartTime
			t1 := t0 + cfg.TrialSpacing
			un.Spikes = append(un.Spikes, genPoisson(t0, t1, cfg.BaseRate, rng)...)
			if tr.Outcome == "correct" && cfg.CorrectBoost > 0 {
				ev := tr.EventTime()
				un.Spikes = append(un.Spikes, genPoisson(ev, ev+2, cfg.CorrectBoost, rng)...)
			}
		}
		se.Units = append(se.Units, un)
	}
	return se
}

// genPoisson generates a homogeneous Poisson spike train on [t0, t1)
// with the given rate in Hz, via exponential inter-spike intervals.
func genPoisson(t0, t1, rate float64, rng *rand.Rand) []float64 {
	if rate <= 0 {
		return nil
	}
	var spks []float64
	t := t0 + rng.ExpFloat64()/rate
	for t < t1 {
		spks = append(spks, t)
		t += rng.ExpFloat64() / rate
	}
	return spks
}
