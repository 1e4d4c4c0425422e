// =============================================================================
// Projected Journal Generator - Cash Grid Normalization
// =============================================================================
//
// This package is the cash-grid normalization engine: it accepts an AP/AR
// worksheet of unknown, varying layout and converts it into the canonical
// five-column transaction table. The whole engine is one deterministic
// forward pass per input grid - no retries, no backtracking, no state shared
// between invocations:
//
//   raw grid -> layout detector (via column classifier)
//            -> selected layout processor (wide-time-series | event-list)
//            -> transaction-type inferencer
//            -> canonicalizer
//            -> canonical table
//
// The engine does no I/O. Concurrent callers may normalize different grids
// in parallel with no coordination.
//
// =============================================================================

package normalize

import (
	"log/slog"
	"time"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/grid"
	"github.com/ginjaninja78/projected-journal/internal/models"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options tune one normalization call.
type Options struct {
	// Clock supplies the "current date" anchoring the wide-time-series
	// period mapping. Defaults to time.Now. Tests inject a fixed value;
	// the 7-day offsets between periods are stable regardless of anchor.
	Clock func() time.Time

	// HorizonWeeks is the projection window length. The wide-time-series
	// layout is recognised by exactly this many uniformly-numeric columns.
	// Defaults to the 13-week horizon.
	HorizonWeeks int
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.HorizonWeeks == 0 {
		o.HorizonWeeks = models.HorizonWeeks
	}
	return o
}

// =============================================================================
// ENTRY POINT
// =============================================================================

// Normalize converts a raw cash grid into the canonical transaction table.
// sheetHint is the worksheet/tab name, used only by the transaction-type
// inferencer; pass "" when unknown.
//
// Failure is one of two condition kinds: *errs.UnsupportedFormatError when
// the layout cannot be classified or a processor prerequisite is missing,
// and *errs.SchemaError when the grid is empty or canonicalization finds an
// internal contract violation. No partial output accompanies an error.
func Normalize(g *grid.Grid, sheetHint string, opts Options) ([]Row, error) {
	if g.IsEmpty() {
		return nil, errs.Schemaf("cash grid is empty: nothing to normalize")
	}
	opts = opts.withDefaults()

	layout := DetectLayout(g, opts.HorizonWeeks)
	slog.Debug("detected cash grid layout",
		"layout", layout.String(),
		"horizon_weeks", opts.HorizonWeeks,
		"columns", len(g.Columns),
		"rows", g.NumRows())

	var staged []stageRow
	var err error

	switch layout {
	case LayoutWideTimeSeries:
		anchor := grid.Midnight(opts.Clock())
		staged, err = processWideTimeSeries(g, anchor)
	case LayoutEventList:
		staged, err = processEventList(g)
	default:
		return nil, errs.Unsupportedf(
			"grid matches neither supported layout: expected exactly %d uniformly-numeric weekly columns (wide-time-series) or at least one date column plus one amount column (event-list)",
			opts.HorizonWeeks)
	}
	if err != nil {
		return nil, err
	}

	rows, err := canonicalize(inferTxnTypes(staged, sheetHint))
	if err != nil {
		return nil, err
	}

	slog.Debug("normalized cash grid", "input_rows", g.NumRows(), "output_rows", len(rows))
	return rows, nil
}
