// =============================================================================
// Projected Journal Generator - Layout Detector
// =============================================================================
//
// The layout detector classifies a raw cash grid into exactly one of the two
// supported layout families, or reports it as unsupported. Detection is
// total: every grid maps to exactly one outcome, and the outcome is terminal
// for that invocation.
//
//   1. Exactly horizon-weeks uniformly-numeric columns (13 by default)
//      -> wide-time-series. The count is a strict equality (one more or one
//      fewer falls through) and this check takes priority over the
//      event-list check, so a grid of 13 numeric weekly columns is
//      wide-time-series even if one of them is named "Date".
//   2. Otherwise, at least one date-like and one amount-like column
//      (per the column classifier)           -> event-list.
//   3. Otherwise                             -> unsupported.
//
// =============================================================================

package normalize

import "github.com/ginjaninja78/projected-journal/internal/grid"

// =============================================================================
// LAYOUT VARIANTS
// =============================================================================

// Layout is the tagged classification of a cash grid's shape.
type Layout int

const (
	// LayoutUnsupported means neither layout family matched.
	LayoutUnsupported Layout = iota

	// LayoutWideTimeSeries is one row per counterparty, one numeric column
	// per weekly period.
	LayoutWideTimeSeries

	// LayoutEventList is one row per transaction with explicit date and
	// amount columns.
	LayoutEventList
)

// String returns the layout name for logs and error messages.
func (l Layout) String() string {
	switch l {
	case LayoutWideTimeSeries:
		return "wide-time-series"
	case LayoutEventList:
		return "event-list"
	default:
		return "unsupported"
	}
}

// =============================================================================
// DETECTOR
// =============================================================================

// DetectLayout classifies the grid into one of the three outcomes.
// horizonWeeks is the numeric-column count that selects the wide layout;
// callers without a configured horizon pass the 13-week default.
func DetectLayout(g *grid.Grid, horizonWeeks int) Layout {
	if countNumericColumns(g) == horizonWeeks {
		return LayoutWideTimeSeries
	}

	if ClassifyColumns(g).HasDateAndAmount() {
		return LayoutEventList
	}

	return LayoutUnsupported
}

// countNumericColumns counts columns whose values are uniformly numeric.
func countNumericColumns(g *grid.Grid) int {
	n := 0
	for _, col := range g.Columns {
		if col.IsNumeric() {
			n++
		}
	}
	return n
}
