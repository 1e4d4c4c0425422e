// =============================================================================
// Projected Journal Generator - Journal Assembly Tests
// =============================================================================

package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/projected-journal/internal/models"
	"github.com/ginjaninja78/projected-journal/internal/normalize"
)

var runTime = time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)

func testParams() Params {
	return Params{
		Now:       runTime,
		Currency:  "USD",
		APAccount: "2000-AP",
		ARAccount: "1100-AR",
	}
}

func testBundle() *models.Bundle {
	return &models.Bundle{
		BeginningBS: []models.BeginningBSRow{
			{Account: "1000-Cash", AccountType: "Asset", Balance: decimal.RequireFromString("1000.00")},
			{Account: "2000-AP", AccountType: "Liability", Balance: decimal.RequireFromString("400.00")},
			{Account: "3000-Equity", AccountType: "Equity", Balance: decimal.RequireFromString("600.00")},
		},
		GAAPMapping: []models.GAAPMappingRow{
			{GAAPAccount: "1000-Cash", NormalBalance: "D"},
			{GAAPAccount: "2000-AP", NormalBalance: "C"},
			{GAAPAccount: "3000-Equity", NormalBalance: "C"},
			{GAAPAccount: "1100-AR", NormalBalance: "D"},
		},
		CashflowMapping: []models.CashflowMappingRow{
			{GAAPAccount: "1100-AR", CashFlowSection: "Operating"},
			{GAAPAccount: "2000-AP", CashFlowSection: "Operating"},
			{GAAPAccount: "1000-Cash", CashFlowSection: "Operating"},
		},
	}
}

func cashRow(txnType normalize.TxnType, name, date, amount, source string) normalize.Row {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return normalize.Row{
		TxnType:       txnType,
		Counterparty:  name,
		ScheduledDate: d,
		Amount:        decimal.RequireFromString(amount),
		LineSource:    source,
	}
}

func TestBuildSeedsBalanceSheetRows(t *testing.T) {
	rows, err := Build(testBundle(), nil, testParams())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	anchor := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	for _, row := range rows {
		assert.Equal(t, anchor, row.TxnDate)
		assert.Equal(t, anchor, row.CashDate)
		assert.Equal(t, "USD", row.CurrencyCode)
		assert.Equal(t, runTime, row.CreatedAt)
		assert.Equal(t, runTime, row.UpdatedAt)
	}

	// Normal balance from the GAAP mapping decides the flag.
	assert.Equal(t, "D", rows[0].DCFlag)
	assert.Equal(t, "1000-Cash", rows[0].GAAPAccount)
	assert.Equal(t, "C", rows[1].DCFlag)
	assert.Equal(t, "C", rows[2].DCFlag)
}

func TestBuildSeedRowFlagFallbacks(t *testing.T) {
	bundle := testBundle()
	bundle.GAAPMapping = nil // no normal-balance index: account type decides

	rows, err := Build(bundle, nil, testParams())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "D", rows[0].DCFlag, "Asset defaults to debit")
	assert.Equal(t, "C", rows[1].DCFlag, "Liability defaults to credit")
	assert.Equal(t, "C", rows[2].DCFlag, "Equity defaults to credit")
}

func TestBuildNegativeBalanceFlipsFlag(t *testing.T) {
	bundle := testBundle()
	bundle.BeginningBS = []models.BeginningBSRow{
		{Account: "1000-Cash", AccountType: "Asset", Balance: decimal.RequireFromString("-250.00")},
	}

	rows, err := Build(bundle, nil, testParams())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "C", rows[0].DCFlag, "overdrawn cash sits on the credit side")
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("250.00")), "amount is absolute")
}

func TestBuildCashRowsByDirection(t *testing.T) {
	cash := []normalize.Row{
		cashRow(normalize.AR, "Acme Corp", "2026-02-15", "1200.50", "0:Due Date+Amount"),
		cashRow(normalize.AP, "Globex", "2026-02-22", "300.00", "1:Due Date+Amount"),
	}

	rows, err := Build(testBundle(), cash, testParams())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// Sorted by CashDate: the three seed rows precede both cash rows.
	ar, ap := rows[3], rows[4]

	assert.Equal(t, "D", ar.DCFlag, "receivables debit cash")
	assert.Equal(t, "1100-AR", ar.GAAPAccount)
	assert.Equal(t, "Operating", ar.CashFlowSection)
	assert.Equal(t, "Acme Corp", ar.CustomerID)
	assert.Empty(t, ar.VendorID)

	assert.Equal(t, "C", ap.DCFlag, "payables credit cash")
	assert.Equal(t, "2000-AP", ap.GAAPAccount)
	assert.Equal(t, "Globex", ap.VendorID)
	assert.Empty(t, ap.CustomerID)
}

func TestBuildUnmappedAccountFallsToUnscheduled(t *testing.T) {
	bundle := testBundle()
	bundle.CashflowMapping = nil

	cash := []normalize.Row{
		cashRow(normalize.AR, "Acme", "2026-02-15", "100.00", "0:src"),
	}

	rows, err := Build(bundle, cash, testParams())
	require.NoError(t, err)
	for _, row := range rows {
		assert.Equal(t, UnscheduledSection, row.CashFlowSection)
	}
}

func TestBuildSequentialIDsAndSortOrder(t *testing.T) {
	// The second cash row is dated BEFORE the first; sorting is by CashDate
	// while IDs keep assignment order.
	cash := []normalize.Row{
		cashRow(normalize.AR, "Late", "2026-03-01", "10.00", "0:src"),
		cashRow(normalize.AP, "Early", "2026-01-10", "20.00", "1:src"),
	}

	rows, err := Build(testBundle(), cash, testParams())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "J000001", rows[0].JournalID)
	assert.Equal(t, "T000001", rows[0].TxnID)

	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].CashDate.Before(rows[i-1].CashDate),
			"rows must be ordered by CashDate")
	}

	// The early AP row (assigned T000005) lands before the late AR row.
	assert.Equal(t, "Early", rows[3].VendorID)
	assert.Equal(t, "T000005", rows[3].TxnID)
	assert.Equal(t, "Late", rows[4].CustomerID)
	assert.Equal(t, "T000004", rows[4].TxnID)
}

func TestBuildRejectsInvalidTxnType(t *testing.T) {
	cash := []normalize.Row{
		{
			TxnType:       "XX",
			Counterparty:  "Acme",
			ScheduledDate: runTime,
			Amount:        decimal.RequireFromString("10.00"),
			LineSource:    "0:src",
		},
	}

	_, err := Build(testBundle(), cash, testParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid txn_type")
}

func TestBuildEmptyInputs(t *testing.T) {
	bundle := testBundle()
	bundle.BeginningBS = nil

	rows, err := Build(bundle, nil, testParams())
	require.NoError(t, err)
	assert.Empty(t, rows, "emptiness is the validators' concern, not assembly's")
}
