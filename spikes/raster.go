// Copyright (c) 2026, The Spikesight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikes

import (
	"strconv"

	"cogentcore.org/core/tensor/table"
)

// RasterTable flattens raster rows into one point per spike for the
// aggregate raster scatter plot: X is time relative to the event, Y is
// the (trial, unit) row index in extraction order.  The table is
// configured for points-only plotting.
func RasterTable(rows []RasterRow) *table.Table {
	n := 0
	for i := range rows {
		n += len(rows[i].Times)
	}
	dt := table.NewTable("Raster")
	dt.SetMetaData("name", "Raster")
	dt.SetMetaData("desc", "aggregate spike raster, one row per (trial, unit) pair")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	dt.SetMetaData("XAxis", "Time")
	dt.SetMetaData("Type", "XY")
	dt.SetMetaData("Lines", "-")
	dt.SetMetaData("Points", "+")
	dt.SetMetaData("Time:On", "-")
	dt.SetMetaData("Row:On", "+")
	dt.AddFloat64Column("Time")
	dt.AddFloat64Column("Row")
	dt.SetNumRows(n)

	p := 0
	for ri := range rows {
		for _, t := range rows[ri].Times {
			dt.SetFloat("Time", p, t)
			dt.SetFloat("Row", p, float64(ri))
			p++
		}
	}
	return dt
}
