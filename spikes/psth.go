// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"strconv"

	"cogentcore.org/core/tensor/stats/histogram"
	"cogentcore.org/core/tensor/table"
)

// PSTH computes the peri-stimulus time histogram over all raster rows:
// a histogram of every aligned spike time across rows, divided by the
// number of rows and the bin width, giving the mean firing rate per bin
// in Hz.  The returned table has Time (bin center) and Rate columns and
// is configured for line plotting.  Zero rows yields all-zero rates.
func PSTH(rows []RasterRow, win Window, nbins int) *table.Table {
	var vals []float64
	for i := range rows {
		vals = append(vals, rows[i].Times...)
	}
	var hist []float64
	histogram.F64(&hist, vals, nbins, win.Start, win.End)

	dt := table.NewTable("PSTH")
	dt.SetMetaData("name", "PSTH")
	dt.SetMetaData("desc", "peri-stimulus time histogram, mean rate across all (trial, unit) rows")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	dt.SetMetaData("XAxis", "Time")
	dt.SetMetaData("Type", "XY")
	dt.SetMetaData("Time:On", "-")
	dt.SetMetaData("Rate:On", "+")
	dt.SetMetaData("Rate:FixMin", "+")
	dt.SetMetaData("Rate:Min", "0")
	dt.AddFloat64Column("Time")
	dt.AddFloat64Column("Rate")
	dt.SetNumRows(nbins)

	binw := win.Width() / float64(nbins)
	nrows := float64(len(rows))
	for i := 0; i < nbins; i++ {
		dt.SetFloat("Time", i, win.Start+(float64(i)+0.5)*binw)
		rate := 0.0
		if nrows > 0 {
			rate = hist[i] / (nrows * binw)
		}
		dt.SetFloat("Rate", i, rate)
	}
	return dt
}
