// =============================================================================
// Projected Journal Generator - Fixed-Schema Validation
// =============================================================================
//
// This module validates the three fixed-schema workbooks and the business
// rules that tie them together. Errors are collected, not thrown: every
// check returns a list of detail entries so the user sees all problems in
// one run. The CLI decides what a non-empty list means (it aborts).
//
// Checks:
//   - Beginning Balance Sheet: account present, type in {Asset, Liability,
//     Equity}, balance precision at most 2 decimal places
//   - Balance-sheet balancing: Assets = Liabilities + Equity
//   - GAAP mapping: NormalBalance exactly "D" or "C" (case sensitive),
//     no duplicate accounts
//   - Cashflow mapping: section present, no duplicate accounts
//   - Mapping coverage: every GAAP account has a cash-flow section
//   - Currency: the configured currency must be the mandatory USD
//
// =============================================================================

package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/models"
)

// Workbook file labels used in error details.
const (
	fileBeginningBS     = "Beginning Balance Sheet.xlsx"
	fileGAAPMapping     = "GAAP Mapping.xlsx"
	fileCashflowMapping = "Cashflow Mapping.xlsx"
)

// headerOffset converts a 0-based data row index to a 1-based workbook row
// number (one header row).
const headerOffset = 2

// =============================================================================
// AGGREGATE VALIDATION
// =============================================================================

// All runs every schema validation over the bundle and returns the combined
// detail list, empty when everything passes. Mapping coverage is a separate
// condition kind and is checked via MappingCoverage.
func All(b *models.Bundle, currency string) []errs.Detail {
	var details []errs.Detail
	details = append(details, BeginningBS(b.BeginningBS)...)
	details = append(details, BalanceSheetBalanced(b.BeginningBS)...)
	details = append(details, GAAPMapping(b.GAAPMapping)...)
	details = append(details, CashflowMapping(b.CashflowMapping)...)
	details = append(details, Currency(currency)...)
	return details
}

// =============================================================================
// BEGINNING BALANCE SHEET
// =============================================================================

// BeginningBS validates the balance sheet rows against their fixed schema.
func BeginningBS(rows []models.BeginningBSRow) []errs.Detail {
	var details []errs.Detail

	if len(rows) == 0 {
		return []errs.Detail{{
			File:  fileBeginningBS,
			Issue: "No balance sheet entries found",
			Hint:  "Ensure the Beginning Balance Sheet workbook contains account rows.",
		}}
	}

	for i, row := range rows {
		rowNum := i + headerOffset

		if row.Account == "" {
			details = append(details, errs.Detail{
				File:  fileBeginningBS,
				Row:   rowNum,
				Issue: "Account code is empty",
				Hint:  "Every balance sheet row needs a GL account code.",
			})
		}

		switch row.AccountType {
		case "Asset", "Liability", "Equity":
		default:
			details = append(details, errs.Detail{
				File:  fileBeginningBS,
				Row:   rowNum,
				Issue: fmt.Sprintf("Invalid account type %q", row.AccountType),
				Hint:  "AccountType must be Asset, Liability or Equity.",
			})
		}

		if row.Balance.Exponent() < -2 {
			details = append(details, errs.Detail{
				File:  fileBeginningBS,
				Row:   rowNum,
				Issue: fmt.Sprintf("Balance %s has more than 2 decimal places", row.Balance),
				Hint:  "Balances must have at most 2 decimal places.",
			})
		}
	}

	return details
}

// BalanceSheetBalanced verifies Assets = Liabilities + Equity.
func BalanceSheetBalanced(rows []models.BeginningBSRow) []errs.Detail {
	if len(rows) == 0 {
		return nil
	}

	assets, liabilities, equity := decimal.Zero, decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch row.AccountType {
		case "Asset":
			assets = assets.Add(row.Balance)
		case "Liability":
			liabilities = liabilities.Add(row.Balance)
		case "Equity":
			equity = equity.Add(row.Balance)
		}
	}

	if diff := assets.Sub(liabilities.Add(equity)); !diff.IsZero() {
		return []errs.Detail{{
			File: fileBeginningBS,
			Issue: fmt.Sprintf("Balance sheet is not balanced: Assets %s, Liabilities %s, Equity %s (difference %s)",
				assets, liabilities, equity, diff),
			Hint: "Assets must equal Liabilities plus Equity.",
		}}
	}
	return nil
}

// =============================================================================
// MAPPING WORKBOOKS
// =============================================================================

// GAAPMapping validates the GAAP chart-of-accounts mapping rows.
func GAAPMapping(rows []models.GAAPMappingRow) []errs.Detail {
	var details []errs.Detail
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		rowNum := i + headerOffset

		if row.GAAPAccount == "" {
			details = append(details, errs.Detail{
				File:  fileGAAPMapping,
				Row:   rowNum,
				Issue: "GAAPAccount is empty",
				Hint:  "Every mapping row needs a GAAP account code.",
			})
			continue
		}

		// Case sensitive on purpose: "d" is a data-entry mistake, not a flag.
		if row.NormalBalance != "D" && row.NormalBalance != "C" {
			details = append(details, errs.Detail{
				File:  fileGAAPMapping,
				Row:   rowNum,
				Issue: fmt.Sprintf("Invalid NormalBalance %q", row.NormalBalance),
				Hint:  "NormalBalance must be exactly 'D' or 'C' (case sensitive).",
			})
		}

		if firstRow, dup := seen[row.GAAPAccount]; dup {
			details = append(details, errs.Detail{
				File:  fileGAAPMapping,
				Row:   rowNum,
				Issue: fmt.Sprintf("Duplicate mapping for GAAPAccount %s (first defined on row %d)", row.GAAPAccount, firstRow),
				Hint:  "Remove the duplicate row or correct the account code.",
			})
		} else {
			seen[row.GAAPAccount] = rowNum
		}
	}

	return details
}

// CashflowMapping validates the cash-flow section mapping rows.
func CashflowMapping(rows []models.CashflowMappingRow) []errs.Detail {
	var details []errs.Detail
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		rowNum := i + headerOffset

		if row.CashFlowSection == "" {
			details = append(details, errs.Detail{
				File:  fileCashflowMapping,
				Row:   rowNum,
				Issue: fmt.Sprintf("GAAPAccount %s has no cash flow section", row.GAAPAccount),
				Hint:  "Assign each account to a cash flow statement section.",
			})
		}

		if firstRow, dup := seen[row.GAAPAccount]; dup && row.GAAPAccount != "" {
			details = append(details, errs.Detail{
				File:  fileCashflowMapping,
				Row:   rowNum,
				Issue: fmt.Sprintf("Duplicate mapping for GAAPAccount %s (first defined on row %d)", row.GAAPAccount, firstRow),
				Hint:  "Remove the duplicate row or correct the account code.",
			})
		} else {
			seen[row.GAAPAccount] = rowNum
		}
	}

	return details
}

// MappingCoverage checks that every GAAP account also has a cash-flow
// section mapping. Gaps here are a mapping conflict, not a schema problem,
// so the caller raises them as their own condition kind.
func MappingCoverage(gaap []models.GAAPMappingRow, cf []models.CashflowMappingRow) []errs.Detail {
	mapped := make(map[string]bool, len(cf))
	for _, row := range cf {
		mapped[row.GAAPAccount] = true
	}

	var details []errs.Detail
	for i, row := range gaap {
		if row.GAAPAccount == "" || mapped[row.GAAPAccount] {
			continue
		}
		details = append(details, errs.Detail{
			File:  fileCashflowMapping,
			Row:   i + headerOffset,
			Issue: fmt.Sprintf("GAAPAccount %s missing in cashflow mapping", row.GAAPAccount),
			Hint:  fmt.Sprintf("Add %s to the cashflow mapping or remove it from the GAAP mapping.", row.GAAPAccount),
		})
	}
	return details
}

// =============================================================================
// CURRENCY
// =============================================================================

// Currency enforces the single-currency rule: the journal is USD only.
func Currency(code string) []errs.Detail {
	if code == models.MandatoryCurrency {
		return nil
	}
	return []errs.Detail{{
		File:  "config",
		Issue: fmt.Sprintf("Unsupported currency %q", code),
		Hint:  fmt.Sprintf("The journal is generated in %s only; currency conversion is out of scope.", models.MandatoryCurrency),
	}}
}
