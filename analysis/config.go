// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"spikesight/spikes"
)

// Config are the analysis parameters.  Defaults reproduce the original
// single-researcher workflow; a YAML file and command flags can override.
type Config struct {

	// root directory of the dataset (sub-* subject subdirectories)
	DataRoot string `yaml:"data_root"`

	// post-event window for per-trial spike counting, in seconds
	CountWindow spikes.Window `yaml:"count_window"`

	// window around the event for the raster and PSTH, in seconds
	RasterWindow spikes.Window `yaml:"raster_window"`

	// number of PSTH bins over the raster window
	PSTHBins int `yaml:"psth_bins"`

	// number of cross-validation folds
	Folds int `yaml:"folds"`

	// random seed for shuffling in cross-validation
	Seed int64 `yaml:"seed"`
}

// Defaults sets the standard analysis parameters.
func (cf *Config) Defaults() {
	cf.DataRoot = "data"
	cf.CountWindow = spikes.Window{Start: 0, End: 2}
	cf.RasterWindow = spikes.Window{Start: -1, End: 2}
	cf.PSTHBins = 30
	cf.Folds = 5
	cf.Seed = 1
}

// OpenYAML loads config values from a YAML file over the current values.
func (cf *Config) OpenYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("analysis: config: %w", err)
	}
	if err := yaml.Unmarshal(b, cf); err != nil {
		return fmt.Errorf("analysis: config %s: %w", path, err)
	}
	return nil
}

// Validate checks the parameters for basic sanity.
func (cf *Config) Validate() error {
	if cf.DataRoot == "" {
		return fmt.Errorf("analysis: config: data_root is required")
	}
	if cf.CountWindow.Width() <= 0 {
		return fmt.Errorf("analysis: config: count_window has non-positive width")
	}
	if cf.RasterWindow.Width() <= 0 {
		return fmt.Errorf("analysis: config: raster_window has non-positive width")
	}
	if cf.PSTHBins <= 0 {
		return fmt.Errorf("analysis: config: psth_bins must be positive")
	}
	if cf.Folds < 2 {
		return fmt.Errorf("analysis: config: folds must be at least 2")
	}
	return nil
}
