// =============================================================================
// Projected Journal Generator - Shared Models
// =============================================================================
//
// This package contains the data models shared across multiple modules to
// avoid import cycles. It defines:
//   - The fixed 17-column journal schema and its row type
//   - The three fixed-schema input workbook row types
//   - The Bundle container holding everything loaded for one run
//
// The flexible-schema AP/AR cash grid is NOT modelled here; it only becomes
// typed once the normalize package has converted it to canonical rows.
//
// =============================================================================

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/projected-journal/internal/grid"
)

// =============================================================================
// JOURNAL SCHEMA CONSTANTS
// =============================================================================

// Journal17Columns is the fixed output schema, in order. Every exported
// journal carries exactly these columns; anything else is a schema violation.
var Journal17Columns = []string{
	"JournalID", "TxnID", "TxnDate", "CashDate",
	"DCFlag", "GAAPAccount", "CashFlowSection",
	"Department", "Product", "CustomerID", "VendorID",
	"Location", "Class", "Amount", "CurrencyCode",
	"CreatedAt", "UpdatedAt",
}

// MandatoryCurrency is the only currency the journal may carry. The pipeline
// performs no conversion; non-USD inputs are a validation error.
const MandatoryCurrency = "USD"

// HorizonWeeks is the length of the projection window. The wide-time-series
// cash grid layout is recognised by having exactly this many numeric columns.
const HorizonWeeks = 13

// =============================================================================
// INPUT WORKBOOK ROW TYPES (fixed schemas)
// =============================================================================

// BeginningBSRow is one line of the Beginning Balance Sheet workbook.
type BeginningBSRow struct {
	// Account is the GL account code.
	Account string

	// Description is the human-readable account description.
	Description string

	// Balance is the opening balance. Maximum two decimal places.
	Balance decimal.Decimal

	// AccountType classifies the account: "Asset", "Liability" or "Equity".
	AccountType string
}

// GAAPMappingRow maps a GL account onto the GAAP chart of accounts.
type GAAPMappingRow struct {
	// GAAPAccount is the GAAP account code.
	GAAPAccount string

	// Description is the mapping description.
	Description string

	// AccountType is the GAAP account classification.
	AccountType string

	// NormalBalance is the account's normal balance side, exactly "D" or "C"
	// (case sensitive).
	NormalBalance string
}

// CashflowMappingRow assigns a GAAP account to a cash-flow statement section.
type CashflowMappingRow struct {
	// GAAPAccount is the GAAP account code being mapped.
	GAAPAccount string

	// CashFlowSection is the cash-flow statement section
	// (e.g. "Operating", "Investing", "Financing").
	CashFlowSection string

	// Description is the mapping description.
	Description string
}

// =============================================================================
// JOURNAL ROW TYPE
// =============================================================================

// JournalRow is one line of the final 17-column projected journal. Field
// order mirrors Journal17Columns.
type JournalRow struct {
	JournalID       string
	TxnID           string
	TxnDate         time.Time
	CashDate        time.Time
	DCFlag          string
	GAAPAccount     string
	CashFlowSection string
	Department      string
	Product         string
	CustomerID      string
	VendorID        string
	Location        string
	Class           string
	Amount          decimal.Decimal
	CurrencyCode    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// =============================================================================
// BUNDLE
// =============================================================================

// Bundle holds everything loaded from the four input workbooks for one run.
type Bundle struct {
	// BeginningBS is the parsed Beginning Balance Sheet.
	BeginningBS []BeginningBSRow

	// GAAPMapping is the parsed GAAP chart-of-accounts mapping.
	GAAPMapping []GAAPMappingRow

	// CashflowMapping is the parsed cash-flow section mapping.
	CashflowMapping []CashflowMappingRow

	// CashGrid is the raw AP/AR cash grid, still in its unknown layout.
	// The normalize package owns converting it to canonical rows.
	CashGrid *grid.Grid

	// CashGridSheet is the sheet/tab name the cash grid was read from. Used
	// only as a transaction-type hint during normalization.
	CashGridSheet string
}
