// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spikesight extracts spike-timing and behavioral-outcome data from a
// directory of session recordings, plots the aggregate raster and PSTH,
// and fits a cross-validated logistic regression of outcome on spike
// count.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "spikesight",
	Short: "spike-timing and behavioral-outcome session analysis",
	Long: `spikesight reads a directory tree of session recordings
(sub-<subject>/sub-<subject>_ses-<session>_ecephys.db), aligns each
unit's spikes to the behavioral event of each trial, and produces:

  - a combined per-trial table of windowed spike counts and outcomes
  - an aggregate spike raster and peri-stimulus time histogram
  - a cross-validated logistic regression of outcome on spike count

Run without arguments to analyze ./data and display the plots.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalysis,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
	addRunFlags(rootCmd)
	addRunFlags(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
