// =============================================================================
// Projected Journal Generator - Wide Time-Series Processor
// =============================================================================
//
// Processes a cash grid in the wide-time-series layout: one row per
// counterparty and exactly 13 uniformly-numeric columns, one per weekly
// period. The grid is unpivoted into one intermediate row per non-zero
// (row, period-column) cell.
//
// Period columns map to calendar dates positionally, left to right: period i
// (0-indexed) falls i weeks after the injected anchor date. The mapping is
// NOT derived from column headers, so two runs on different days produce
// different absolute dates; the 7-day offsets between periods are the stable
// property.
//
// =============================================================================

package normalize

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/grid"
)

// daysPerWeek converts a period index into a calendar offset.
const daysPerWeek = 7

// processWideTimeSeries unpivots a wide-time-series grid into intermediate
// rows. The anchor is the run's "current date"; it must already be truncated
// to midnight.
func processWideTimeSeries(g *grid.Grid, anchor time.Time) ([]stageRow, error) {
	var periodCols []grid.Column
	var textCols []grid.Column

	for _, col := range g.Columns {
		if col.IsNumeric() {
			periodCols = append(periodCols, col)
		} else {
			textCols = append(textCols, col)
		}
	}

	if len(textCols) == 0 {
		return nil, errs.Unsupportedf(
			"wide-time-series grid needs at least one non-numeric column to identify the counterparty; found %d numeric columns and no text columns",
			len(periodCols))
	}

	// The first non-numeric column carries the counterparty.
	counterparty := textCols[0]

	var staged []stageRow
	for rowIdx := 0; rowIdx < g.NumRows(); rowIdx++ {
		name := ""
		if rowIdx < len(counterparty.Cells) {
			name = counterparty.Cells[rowIdx].String()
		}

		for periodIdx, col := range periodCols {
			cell := col.Cells[rowIdx]
			if cell.IsBlank() {
				continue // no activity in that period
			}
			amount, ok := cell.AsNumber()
			if !ok || amount.IsZero() {
				continue
			}

			staged = append(staged, stageRow{
				counterparty: name,
				scheduled:    anchor.AddDate(0, 0, periodIdx*daysPerWeek),
				amount:       amount,
				source:       fmt.Sprintf("%d:%s", rowIdx, col.Name),
			})
		}
	}

	return staged, nil
}
