// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis runs the full session analysis pipeline: discover
// session files, extract per-trial and per-(trial, unit) spike summaries,
// build the raster and PSTH tables, aggregate by outcome, and fit the
// outcome classifier.
package analysis

import (
	"math"
	"math/rand"
	"os"

	"cogentcore.org/core/tensor/stats/split"
	"cogentcore.org/core/tensor/stats/stats"
	"cogentcore.org/core/tensor/table"
	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/estats"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"spikesight/logreg"
	"spikesight/sessdb"
	"spikesight/spikes"
)

// Results are the derived artifacts of one pipeline run.  They are not
// mutated after Run returns.
type Results struct {

	// combined per-trial table, in file discovery order then trial order
	Trials *table.Table

	// one row per (trial, unit) pair, aligned and windowed
	Raster []spikes.RasterRow

	// flattened raster scatter table for plotting
	RasterPlot *table.Table

	// peri-stimulus time histogram table for plotting
	PSTH *table.Table

	// mean spike count and trial count grouped by outcome code
	OutcomeStats *table.Table

	// fitted outcome classifier, nil if too few binary-outcome trials
	Model *logreg.Model

	// per-fold cross-validation accuracies, nil if the model was skipped
	FoldAccs []float64
}

// Pipeline runs the analysis over one dataset.
type Pipeline struct {

	// analysis parameters
	Config Config

	// run statistics: file, trial and row counts, accuracy, coefficients
	Stats estats.Stats

	// tag identifying this run in log output
	RunID string

	Log *zap.Logger
}

// New returns a Pipeline with the given config, logging to lg.
func New(cfg Config, lg *zap.Logger) *Pipeline {
	pl := &Pipeline{Config: cfg, RunID: uuid.NewString(), Log: lg}
	pl.Stats.Init()
	return pl
}

// Run processes every discovered session file in order and returns the
// combined results.  A file that cannot be read or extracted is logged
// and skipped; it contributes no rows and the run continues.  Only a
// missing dataset root is a run-level error.
func (pl *Pipeline) Run() (*Results, error) {
	cfg := &pl.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	files, err := sessdb.Find(cfg.DataRoot)
	if err != nil {
		return nil, err
	}
	pl.Log.Info("starting analysis run",
		zap.String("run", pl.RunID),
		zap.String("root", cfg.DataRoot),
		zap.Int("files", len(files)))

	res := &Results{Trials: spikes.NewTrialTable()}
	pl.Stats.SetInt("ModelTrials", 0)
	nskip := 0
	for _, f := range files {
		rows, err := pl.processFile(f, res.Trials)
		if err != nil {
			// log-and-skip: a bad file contributes no data
			pl.Log.Warn("skipping session file",
				zap.String("file", f.Path), zap.Error(err))
			nskip++
			continue
		}
		res.Raster = append(res.Raster, rows...)
	}

	res.RasterPlot = spikes.RasterTable(res.Raster)
	res.PSTH = spikes.PSTH(res.Raster, cfg.RasterWindow, cfg.PSTHBins)
	res.OutcomeStats = outcomeStats(res.Trials)
	pl.fitModel(res)

	pl.Stats.SetInt("Files", len(files))
	pl.Stats.SetInt("FilesSkipped", nskip)
	pl.Stats.SetInt("Trials", res.Trials.Rows)
	pl.Stats.SetInt("RasterRows", len(res.Raster))
	pl.Log.Info("analysis run done",
		zap.String("run", pl.RunID),
		zap.Int("trials", res.Trials.Rows),
		zap.Int("rasterRows", len(res.Raster)),
		zap.Int("skipped", nskip))
	return res, nil
}

// processFile reads one session file and appends its contribution to the
// trial table, returning its raster rows.  The file is fully read and
// closed before extraction.
func (pl *Pipeline) processFile(f sessdb.File, dt *table.Table) ([]spikes.RasterRow, error) {
	fi, err := os.Stat(f.Path)
	if err != nil {
		return nil, err
	}
	se, err := sessdb.Read(f.Path)
	if err != nil {
		return nil, err
	}
	// filename convention wins over absent in-file metadata
	if se.Subject == "" {
		se.Subject = f.Subject
	}
	if se.Session == "" {
		se.Session = f.Session
	}
	pl.Log.Info("processing session",
		zap.String("subject", se.Subject),
		zap.String("session", se.Session),
		zap.String("size", datasize.ByteSize(fi.Size()).HumanReadable()),
		zap.Int("trials", len(se.Trials)),
		zap.Int("units", len(se.Units)))
	return spikes.Extract(se, pl.Config.CountWindow, pl.Config.RasterWindow, dt), nil
}

// outcomeStats groups the trial table by outcome code and computes the
// mean spike count and trial count per group.
func outcomeStats(dt *table.Table) *table.Table {
	if dt.Rows == 0 {
		return table.NewTable("OutcomeStats")
	}
	ix := table.NewIndexView(dt)
	spl := split.GroupBy(ix, "Outcome")
	split.AggColumn(spl, "SpikeCount", stats.Mean)
	split.AggColumn(spl, "SpikeCount", stats.Count)
	ags := spl.AggsToTable(table.AddAggName)
	ags.SetMetaData("name", "OutcomeStats")
	return ags
}

// fitModel fits the cross-validated logistic regression of outcome on
// spike count, over trials with binary (correct / incorrect) outcomes.
// With fewer usable trials than folds the model is skipped.
func (pl *Pipeline) fitModel(res *Results) {
	dt := res.Trials
	var xs, ys []float64
	for i := 0; i < dt.Rows; i++ {
		o := dt.Float("Outcome", i)
		if math.IsNaN(o) || (o != spikes.Correct && o != spikes.Incorrect) {
			continue
		}
		xs = append(xs, dt.Float("SpikeCount", i))
		ys = append(ys, o)
	}
	if len(xs) < pl.Config.Folds {
		pl.Log.Warn("too few binary-outcome trials for classification",
			zap.Int("trials", len(xs)), zap.Int("folds", pl.Config.Folds))
		return
	}
	rng := rand.New(rand.NewSource(pl.Config.Seed))
	accs, err := logreg.CrossVal(xs, ys, pl.Config.Folds, rng)
	if err != nil {
		pl.Log.Warn("cross-validation failed", zap.Error(err))
		return
	}
	m := logreg.NewModel()
	if err := m.Fit(xs, ys); err != nil {
		pl.Log.Warn("final fit failed", zap.Error(err))
		return
	}
	res.Model = m
	res.FoldAccs = accs
	mean, std := logreg.Summary(accs)
	pl.Stats.SetInt("ModelTrials", len(xs))
	pl.Stats.SetFloat("CVAccuracy", mean)
	pl.Stats.SetFloat("CVAccuracySD", std)
	pl.Stats.SetFloat("Coef", m.Coef)
	pl.Stats.SetFloat("Intercept", m.Intercept)
}

// Report returns a summary line of the run statistics for printing.
func (pl *Pipeline) Report() string {
	nms := []string{"Files", "FilesSkipped", "Trials", "RasterRows"}
	if pl.Stats.Int("ModelTrials") > 0 {
		nms = append(nms, "ModelTrials", "CVAccuracy", "CVAccuracySD", "Coef", "Intercept")
	}
	return pl.Stats.Print(nms)
}
