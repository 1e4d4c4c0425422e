// =============================================================================
// Projected Journal Generator - Event List Processor
// =============================================================================
//
// Processes a cash grid in the event-list layout: one row per transaction
// with explicit date and amount columns. The processor uses the FIRST
// detected date column and the FIRST detected amount column in the grid's
// original column order and ignores any further candidates.
//
// A counterparty column is searched for by name; when none exists every row
// receives the "Unknown" sentinel. Rows whose date fails to parse, or whose
// amount is missing or zero, are dropped - one bad row among valid rows is
// not an error.
//
// =============================================================================

package normalize

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/grid"
)

// counterpartyNamePatterns identify the column carrying the vendor/customer
// identity, matched case-insensitively with underscores treated as spaces.
var counterpartyNamePatterns = []string{
	"vendor", "customer", "counterparty", "party",
	"description", "memo", "details", "name", "company",
}

// processEventList converts an event-list grid into intermediate rows.
func processEventList(g *grid.Grid) ([]stageRow, error) {
	classified := ClassifyColumns(g)
	if !classified.HasDateAndAmount() {
		return nil, errs.Unsupportedf(
			"event-list grid needs one date column and one amount column; detected %d date and %d amount candidates",
			len(classified.DateColumns), len(classified.AmountColumns))
	}

	dateCol, _ := g.Column(classified.DateColumns[0])
	amountCol, _ := g.Column(classified.AmountColumns[0])
	counterpartyCol, hasCounterparty := findCounterpartyColumn(g)

	source := fmt.Sprintf("%s+%s", dateCol.Name, amountCol.Name)

	var staged []stageRow
	for rowIdx := 0; rowIdx < g.NumRows(); rowIdx++ {
		scheduled, dateOK := dateCol.Cells[rowIdx].AsDate()
		amount, amountOK := amountCol.Cells[rowIdx].AsNumber()

		// Unparseable dates and missing/zero amounts drop the row here, not
		// the whole grid.
		if !dateOK || !amountOK || amount.IsZero() {
			continue
		}

		name := ""
		if hasCounterparty {
			name = counterpartyCol.Cells[rowIdx].String()
		}

		staged = append(staged, stageRow{
			counterparty: name,
			scheduled:    scheduled,
			amount:       amount,
			source:       fmt.Sprintf("%d:%s", rowIdx, source),
		})
	}

	return staged, nil
}

// findCounterpartyColumn scans the grid's columns in original order and
// returns the first whose name matches a counterparty pattern.
func findCounterpartyColumn(g *grid.Grid) (grid.Column, bool) {
	for _, col := range g.Columns {
		name := strings.ToLower(strings.ReplaceAll(col.Name, "_", " "))
		for _, pattern := range counterpartyNamePatterns {
			if strings.Contains(name, pattern) {
				return col, true
			}
		}
	}
	return grid.Column{}, false
}
