// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"cogentcore.org/core/tensor/table"
	"github.com/spf13/cobra"
	"spikesight/analysis"
)

var (
	cfgFile  string
	dataRoot string
	psthBins int
	folds    int
	seed     int64
	noGUI    bool
	savePfx  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the analysis over a dataset",
	RunE:  runAnalysis,
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file overriding the default parameters")
	cmd.Flags().StringVar(&dataRoot, "data", "", "dataset root directory (default from config: data)")
	cmd.Flags().IntVar(&psthBins, "bins", 0, "number of PSTH bins (default from config)")
	cmd.Flags().IntVar(&folds, "folds", 0, "number of cross-validation folds (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for cross-validation shuffling (default from config)")
	cmd.Flags().BoolVar(&noGUI, "nogui", false, "print the report without opening the plot window")
	cmd.Flags().StringVar(&savePfx, "save", "", "with --nogui, save result tables as <prefix>_trials.tsv etc.")
}

func runConfig() (analysis.Config, error) {
	var cfg analysis.Config
	cfg.Defaults()
	if cfgFile != "" {
		if err := cfg.OpenYAML(cfgFile); err != nil {
			return cfg, err
		}
	}
	if dataRoot != "" {
		cfg.DataRoot = dataRoot
	}
	if psthBins > 0 {
		cfg.PSTHBins = psthBins
	}
	if folds > 0 {
		cfg.Folds = folds
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := runConfig()
	if err != nil {
		return err
	}
	pl := analysis.New(cfg, logger)
	res, err := pl.Run()
	if err != nil {
		return err
	}
	fmt.Println(pl.Report())
	if res.Model != nil {
		fmt.Printf("outcome ~ sigmoid(%.4g * spike_count + %.4g)\n",
			res.Model.Coef, res.Model.Intercept)
	}
	if noGUI {
		if savePfx != "" {
			return saveTables(res, savePfx)
		}
		return nil
	}
	showGUI(pl, res)
	return nil
}

// saveTables writes the result tables as tab-separated files.
// Saving is opt-in: a default run writes nothing.
func saveTables(res *analysis.Results, pfx string) error {
	tbls := map[string]*table.Table{
		pfx + "_trials.tsv": res.Trials,
		pfx + "_raster.tsv": res.RasterPlot,
		pfx + "_psth.tsv":   res.PSTH,
	}
	for fnm, dt := range tbls {
		f, err := os.Create(fnm)
		if err != nil {
			return fmt.Errorf("saving %s: %w", fnm, err)
		}
		err = dt.WriteCSV(f, table.Tab, table.Headers)
		f.Close()
		if err != nil {
			return fmt.Errorf("saving %s: %w", fnm, err)
		}
		fmt.Printf("saved %s\n", fnm)
	}
	return nil
}
