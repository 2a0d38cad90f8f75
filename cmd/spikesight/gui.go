// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/plot/plotcore"
	"github.com/emer/emergent/v2/egui"
	"github.com/emer/emergent/v2/etime"
	"spikesight/analysis"
)

// Viewer holds the GUI state for displaying run results.
type Viewer struct {

	// results being displayed
	Results *analysis.Results `display:"-"`

	// run statistics summary
	Report string

	GUI egui.GUI `display:"-"`
}

// ConfigGUI builds the plot window: Raster and PSTH tabs over the
// result tables.
func (vw *Viewer) ConfigGUI() {
	vw.GUI.MakeBody(vw, "spikesight", "Spikesight",
		`Aggregate spike raster and PSTH across all processed sessions, aligned to the trial event.`)
	if vw.GUI.Plots == nil {
		vw.GUI.Plots = make(map[etime.ScopeKey]*plotcore.PlotEditor)
	}

	pt, _ := vw.GUI.Tabs.NewTab("Raster")
	plt := plotcore.NewPlotEditor(pt)
	vw.GUI.Plots["Raster"] = plt
	plt.SetTable(vw.Results.RasterPlot)

	pt, _ = vw.GUI.Tabs.NewTab("PSTH")
	plt = plotcore.NewPlotEditor(pt)
	vw.GUI.Plots["PSTH"] = plt
	plt.SetTable(vw.Results.PSTH)

	vw.GUI.FinalizeGUI(false)
}

// showGUI displays the plots and blocks until the operator closes the
// window.
func showGUI(pl *analysis.Pipeline, res *analysis.Results) {
	vw := &Viewer{Results: res, Report: pl.Report()}
	vw.ConfigGUI()
	vw.GUI.Body.RunMainWindow()
}
