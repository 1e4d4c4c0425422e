// =============================================================================
// Projected Journal Generator - Workbook Loader
// =============================================================================
//
// This module reads the four input XLSX workbooks into memory:
//
//   - The AP/AR cash grid is loaded as a raw typed grid (no layout assumed;
//     the normalize package owns making sense of it).
//   - The other three workbooks have fixed schemas and are parsed straight
//     into their row models, with header matching tolerant of case, spaces
//     and underscores.
//
// Structural problems (missing file, no sheets, empty workbook, missing
// required header) surface as schema conditions with per-file details.
//
// =============================================================================

package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/projected-journal/internal/errs"
	"github.com/ginjaninja78/projected-journal/internal/grid"
	"github.com/ginjaninja78/projected-journal/internal/models"
)

// =============================================================================
// GRID LOADING
// =============================================================================

// LoadGrid reads one worksheet into a raw grid. An empty sheet name selects
// the workbook's first sheet. The chosen sheet's name is returned so callers
// can pass it to the transaction-type inferencer as a hint.
func LoadGrid(path, sheet string) (*grid.Grid, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", errs.Schemaf("failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, "", errs.Schemaf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, "", errs.Schemaf("failed to read sheet %q of %s: %v", sheet, path, err)
	}
	if len(rows) < 2 {
		return nil, "", errs.Schemaf("workbook %s is empty: expected a header row and at least one data row", path)
	}

	return grid.FromStrings(rows[0], rows[1:]), sheet, nil
}

// =============================================================================
// FIXED-SCHEMA LOADERS
// =============================================================================

// LoadBeginningBS parses the Beginning Balance Sheet workbook.
//
// Required columns: Account, Description, Balance, AccountType.
func LoadBeginningBS(path string) ([]models.BeginningBSRow, error) {
	g, _, err := LoadGrid(path, "")
	if err != nil {
		return nil, err
	}

	cols, details := requireColumns(g, filepath.Base(path),
		"account", "description", "balance", "accounttype")
	if len(details) > 0 {
		return nil, errs.SchemaWithDetails("beginning balance sheet is missing required columns", details)
	}

	rows := make([]models.BeginningBSRow, 0, g.NumRows())
	for i := 0; i < g.NumRows(); i++ {
		if rowIsBlank(g, i) {
			continue
		}

		balance, ok := cols["balance"].Cells[i].AsNumber()
		if !ok {
			details = append(details, errs.Detail{
				File:  filepath.Base(path),
				Row:   i + 2, // 1-based plus header row
				Issue: fmt.Sprintf("Balance %q is not numeric", cols["balance"].Cells[i].String()),
				Hint:  "Enter the opening balance as a number with at most 2 decimal places.",
			})
			continue
		}

		rows = append(rows, models.BeginningBSRow{
			Account:     cols["account"].Cells[i].String(),
			Description: cols["description"].Cells[i].String(),
			Balance:     balance,
			AccountType: cols["accounttype"].Cells[i].String(),
		})
	}

	if len(details) > 0 {
		return nil, errs.SchemaWithDetails("beginning balance sheet has malformed rows", details)
	}
	return rows, nil
}

// LoadGAAPMapping parses the GAAP chart-of-accounts mapping workbook.
//
// Required columns: GAAPAccount, Description, AccountType, NormalBalance.
func LoadGAAPMapping(path string) ([]models.GAAPMappingRow, error) {
	g, _, err := LoadGrid(path, "")
	if err != nil {
		return nil, err
	}

	cols, details := requireColumns(g, filepath.Base(path),
		"gaapaccount", "description", "accounttype", "normalbalance")
	if len(details) > 0 {
		return nil, errs.SchemaWithDetails("GAAP mapping is missing required columns", details)
	}

	rows := make([]models.GAAPMappingRow, 0, g.NumRows())
	for i := 0; i < g.NumRows(); i++ {
		if rowIsBlank(g, i) {
			continue
		}
		rows = append(rows, models.GAAPMappingRow{
			GAAPAccount:   cols["gaapaccount"].Cells[i].String(),
			Description:   cols["description"].Cells[i].String(),
			AccountType:   cols["accounttype"].Cells[i].String(),
			NormalBalance: cols["normalbalance"].Cells[i].String(),
		})
	}
	return rows, nil
}

// LoadCashflowMapping parses the cash-flow section mapping workbook.
//
// Required columns: GAAPAccount, CashFlowSection, Description.
func LoadCashflowMapping(path string) ([]models.CashflowMappingRow, error) {
	g, _, err := LoadGrid(path, "")
	if err != nil {
		return nil, err
	}

	cols, details := requireColumns(g, filepath.Base(path),
		"gaapaccount", "cashflowsection", "description")
	if len(details) > 0 {
		return nil, errs.SchemaWithDetails("cashflow mapping is missing required columns", details)
	}

	rows := make([]models.CashflowMappingRow, 0, g.NumRows())
	for i := 0; i < g.NumRows(); i++ {
		if rowIsBlank(g, i) {
			continue
		}
		rows = append(rows, models.CashflowMappingRow{
			GAAPAccount:     cols["gaapaccount"].Cells[i].String(),
			CashFlowSection: cols["cashflowsection"].Cells[i].String(),
			Description:     cols["description"].Cells[i].String(),
		})
	}
	return rows, nil
}

// =============================================================================
// BUNDLE LOADING
// =============================================================================

// Paths names the four input workbooks for one run.
type Paths struct {
	APGrid          string
	APGridSheet     string
	BeginningBS     string
	GAAPMapping     string
	CashflowMapping string
}

// LoadBundle loads all four workbooks. The first structural failure aborts
// the load; per-row validation beyond parseability is the validate package's
// job.
func LoadBundle(p Paths) (*models.Bundle, error) {
	bs, err := LoadBeginningBS(p.BeginningBS)
	if err != nil {
		return nil, err
	}

	gaap, err := LoadGAAPMapping(p.GAAPMapping)
	if err != nil {
		return nil, err
	}

	cf, err := LoadCashflowMapping(p.CashflowMapping)
	if err != nil {
		return nil, err
	}

	cashGrid, sheet, err := LoadGrid(p.APGrid, p.APGridSheet)
	if err != nil {
		return nil, err
	}

	return &models.Bundle{
		BeginningBS:     bs,
		GAAPMapping:     gaap,
		CashflowMapping: cf,
		CashGrid:        cashGrid,
		CashGridSheet:   sheet,
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// requireColumns resolves required columns by normalized header name and
// reports a detail entry per missing column.
func requireColumns(g *grid.Grid, file string, names ...string) (map[string]grid.Column, []errs.Detail) {
	index := make(map[string]grid.Column, len(g.Columns))
	for _, col := range g.Columns {
		index[normalizeHeader(col.Name)] = col
	}

	cols := make(map[string]grid.Column, len(names))
	var details []errs.Detail
	for _, name := range names {
		col, ok := index[name]
		if !ok {
			details = append(details, errs.Detail{
				File:  file,
				Row:   1,
				Issue: fmt.Sprintf("Required column missing: %q", name),
				Hint:  fmt.Sprintf("Add a %q column to the workbook header row.", name),
			})
			continue
		}
		cols[name] = col
	}
	return cols, details
}

// normalizeHeader lowercases a header and strips spaces and underscores, so
// "Account Type", "account_type" and "AccountType" all match.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(name)
}

// rowIsBlank reports whether every cell of data row i is blank.
func rowIsBlank(g *grid.Grid, i int) bool {
	for _, col := range g.Columns {
		if i < len(col.Cells) && !col.Cells[i].IsBlank() {
			return false
		}
	}
	return true
}
