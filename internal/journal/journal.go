// =============================================================================
// Projected Journal Generator - Journal Assembly
// =============================================================================
//
// This module merges the balance-sheet seed rows and the normalized AP/AR
// cash rows into the final 17-column projected journal. It is deterministic
// plumbing on a known schema:
//
//   1. Balance-sheet entries become opening seed rows anchored at the run
//      date, flagged by the account's normal balance.
//   2. Canonical AP/AR rows become cash rows: AR debits cash ("D"), AP
//      credits cash ("C"); the counterparty lands in CustomerID or VendorID
//      by direction.
//   3. Cash-flow sections come from the cashflow mapping, falling back to
//      the "Unscheduled Cash" bucket for unmapped accounts.
//   4. JournalID/TxnID are sequential (J000001/T000001...), rows are sorted
//      by CashDate then TxnID, and metadata (timestamps, currency) is
//      stamped on every row.
//
// A row failing the final field check is an internal contract violation and
// fails the run loudly.
//
// =============================================================================

package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/grid"
	"github.com/ginjaninja78/projected-journal/internal/models"
	"github.com/ginjaninja78/projected-journal/internal/normalize"
)

// UnscheduledSection is the bucket for accounts with no cash-flow mapping.
const UnscheduledSection = "Unscheduled Cash"

// =============================================================================
// PARAMETERS
// =============================================================================

// Params configure one assembly run.
type Params struct {
	// Now is the run timestamp, used for the balance-sheet anchor date and
	// the CreatedAt/UpdatedAt metadata.
	Now time.Time

	// Currency is stamped on every row.
	Currency string

	// APAccount is the GAAP account for normalized AP rows.
	APAccount string

	// ARAccount is the GAAP account for normalized AR rows.
	ARAccount string
}

// =============================================================================
// ASSEMBLY
// =============================================================================

// Build assembles the projected journal from the validated bundle and the
// canonical cash rows.
func Build(bundle *models.Bundle, cashRows []normalize.Row, p Params) ([]models.JournalRow, error) {
	sections := sectionIndex(bundle.CashflowMapping)
	balances := normalBalanceIndex(bundle.GAAPMapping)
	anchor := grid.Midnight(p.Now)

	out := make([]models.JournalRow, 0, len(bundle.BeginningBS)+len(cashRows))
	seq := 0
	next := func() (string, string) {
		seq++
		return fmt.Sprintf("J%06d", seq), fmt.Sprintf("T%06d", seq)
	}

	// Opening balance-sheet seed rows.
	for _, bs := range bundle.BeginningBS {
		journalID, txnID := next()

		flag := balances[bs.Account]
		if flag == "" {
			flag = defaultFlagForType(bs.AccountType)
		}
		// A negative opening balance sits on the opposite side of the
		// account's normal balance.
		if bs.Balance.Sign() < 0 {
			flag = flipFlag(flag)
		}

		out = append(out, models.JournalRow{
			JournalID:       journalID,
			TxnID:           txnID,
			TxnDate:         anchor,
			CashDate:        anchor,
			DCFlag:          flag,
			GAAPAccount:     bs.Account,
			CashFlowSection: sectionFor(sections, bs.Account),
			Amount:          bs.Balance.Abs().Round(2),
			CurrencyCode:    p.Currency,
			CreatedAt:       p.Now,
			UpdatedAt:       p.Now,
		})
	}

	// Normalized AP/AR cash rows.
	for _, row := range cashRows {
		journalID, txnID := next()

		jr := models.JournalRow{
			JournalID:    journalID,
			TxnID:        txnID,
			TxnDate:      row.ScheduledDate,
			CashDate:     row.ScheduledDate,
			Amount:       row.Amount,
			CurrencyCode: p.Currency,
			CreatedAt:    p.Now,
			UpdatedAt:    p.Now,
		}

		switch row.TxnType {
		case normalize.AR:
			jr.DCFlag = "D" // cash coming in debits cash
			jr.GAAPAccount = p.ARAccount
			jr.CustomerID = row.Counterparty
		case normalize.AP:
			jr.DCFlag = "C" // cash going out credits cash
			jr.GAAPAccount = p.APAccount
			jr.VendorID = row.Counterparty
		default:
			return nil, errs.Schemaf("canonical row %s has invalid txn_type %q", row.LineSource, row.TxnType)
		}
		jr.CashFlowSection = sectionFor(sections, jr.GAAPAccount)

		out = append(out, jr)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CashDate.Equal(out[j].CashDate) {
			return out[i].CashDate.Before(out[j].CashDate)
		}
		return out[i].TxnID < out[j].TxnID
	})

	if err := verifyRows(out); err != nil {
		return nil, err
	}
	return out, nil
}

// =============================================================================
// LOOKUPS
// =============================================================================

// sectionIndex maps GAAP accounts to their cash-flow sections.
func sectionIndex(rows []models.CashflowMappingRow) map[string]string {
	index := make(map[string]string, len(rows))
	for _, row := range rows {
		index[row.GAAPAccount] = row.CashFlowSection
	}
	return index
}

// normalBalanceIndex maps GAAP accounts to their normal balance flags.
func normalBalanceIndex(rows []models.GAAPMappingRow) map[string]string {
	index := make(map[string]string, len(rows))
	for _, row := range rows {
		index[row.GAAPAccount] = row.NormalBalance
	}
	return index
}

// sectionFor resolves an account's cash-flow section, falling back to the
// unscheduled bucket.
func sectionFor(sections map[string]string, account string) string {
	if section, ok := sections[account]; ok && section != "" {
		return section
	}
	return UnscheduledSection
}

// defaultFlagForType is the conventional normal balance by account type.
func defaultFlagForType(accountType string) string {
	if accountType == "Asset" {
		return "D"
	}
	return "C"
}

// flipFlag swaps the debit/credit side.
func flipFlag(flag string) string {
	if flag == "D" {
		return "C"
	}
	return "D"
}

// =============================================================================
// FINAL CONTRACT CHECK
// =============================================================================

// verifyRows asserts the 17-column contract on every assembled row. Failing
// it means an assembly bug, never a user input problem.
func verifyRows(rows []models.JournalRow) error {
	for i, row := range rows {
		switch {
		case row.JournalID == "" || row.TxnID == "":
			return errs.Schemaf("journal row %d is missing identifiers", i)
		case row.TxnDate.IsZero() || row.CashDate.IsZero():
			return errs.Schemaf("journal row %d (%s) is missing dates", i, row.TxnID)
		case row.DCFlag != "D" && row.DCFlag != "C":
			return errs.Schemaf("journal row %d (%s) has invalid DCFlag %q", i, row.TxnID, row.DCFlag)
		case row.GAAPAccount == "":
			return errs.Schemaf("journal row %d (%s) has no GAAP account", i, row.TxnID)
		case row.CashFlowSection == "":
			return errs.Schemaf("journal row %d (%s) has no cash flow section", i, row.TxnID)
		case row.Amount.Sign() < 0:
			return errs.Schemaf("journal row %d (%s) has negative amount %s", i, row.TxnID, row.Amount)
		case row.CurrencyCode == "":
			return errs.Schemaf("journal row %d (%s) has no currency code", i, row.TxnID)
		}
	}
	return nil
}
