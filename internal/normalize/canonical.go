// =============================================================================
// Projected Journal Generator - Canonicalizer
// =============================================================================
//
// The canonicalizer is the boundary where permissive intermediate rows become
// the strict five-field canonical transaction table:
//
//   txn_type, counterparty, scheduled_date, amount, line_source
//
// It fills missing counterparties with the "Unknown" sentinel, moves the
// direction entirely into txn_type (amounts become absolute), quantizes
// amounts to exactly two fraction digits, drops degenerate rows, and then
// verifies every surviving row satisfies the full contract. A row that still
// violates the contract at that point is a processor bug, reported loudly as
// a schema condition rather than padded over.
//
// =============================================================================

package normalize

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/projected-journal/internal/errs"
)

// UnknownCounterparty is the sentinel for rows with no counterparty source.
const UnknownCounterparty = "Unknown"

// amountPlaces is the fixed fraction-digit count of canonical amounts.
const amountPlaces = 2

// =============================================================================
// ROW TYPES
// =============================================================================

// stageRow is the permissive intermediate row the layout processors emit.
// Amounts are still signed; counterparties may be empty.
type stageRow struct {
	counterparty string
	scheduled    time.Time
	amount       decimal.Decimal
	source       string
}

// typedRow is a stageRow after transaction-type inference.
type typedRow struct {
	stageRow
	txnType TxnType
}

// Row is one line of the canonical transaction table. All five fields are
// present on every row; amount is strictly positive with exactly two
// fraction digits.
type Row struct {
	// TxnType is the cash-flow direction, AP or AR.
	TxnType TxnType

	// Counterparty is never empty; "Unknown" when the source had none.
	Counterparty string

	// ScheduledDate is the calendar date cash is expected to move.
	ScheduledDate time.Time

	// Amount is strictly positive; direction lives in TxnType.
	Amount decimal.Decimal

	// LineSource ties the row back to its source row/column for audit.
	LineSource string
}

// =============================================================================
// CANONICALIZER
// =============================================================================

// canonicalize enforces the output contract on typed intermediate rows.
func canonicalize(typed []typedRow) ([]Row, error) {
	rows := make([]Row, 0, len(typed))

	for _, t := range typed {
		counterparty := t.counterparty
		if counterparty == "" {
			counterparty = UnknownCounterparty
		}

		// Direction now lives entirely in TxnType; quantize after taking the
		// absolute value so a sub-cent cell cannot escape as 0.00.
		amount := t.amount.Abs().Round(amountPlaces)
		if amount.IsZero() {
			continue
		}

		rows = append(rows, Row{
			TxnType:       t.txnType,
			Counterparty:  counterparty,
			ScheduledDate: t.scheduled,
			Amount:        amount,
			LineSource:    t.source,
		})
	}

	if err := verifyContract(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// verifyContract checks every canonical field on every row. A violation here
// is an internal invariant breach (a processor bug), not a user input
// problem, so it fails loudly instead of dropping the row.
func verifyContract(rows []Row) error {
	for i, row := range rows {
		switch {
		case row.TxnType != AP && row.TxnType != AR:
			return errs.Schemaf("canonical row %d has invalid txn_type %q", i, row.TxnType)
		case row.Counterparty == "":
			return errs.Schemaf("canonical row %d has an empty counterparty", i)
		case row.ScheduledDate.IsZero():
			return errs.Schemaf("canonical row %d has no scheduled_date", i)
		case row.Amount.Sign() <= 0:
			return errs.Schemaf("canonical row %d has non-positive amount %s", i, row.Amount)
		case row.LineSource == "":
			return errs.Schemaf("canonical row %d has no line_source", i)
		}
	}
	return nil
}
