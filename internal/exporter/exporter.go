// =============================================================================
// Projected Journal Generator - Styled Excel Export
// =============================================================================
//
// Writes the assembled 17-column journal to a styled XLSX workbook:
//   - single "Journal" sheet with the fixed header row
//   - frozen header row, bold centered header cells
//   - content-fit column widths (sampled, capped)
//   - green banded Excel table (TableStyleMedium9)
//
// Export refuses an empty journal; an empty result upstream always came with
// its own condition, so reaching here with zero rows is a caller bug.
//
// =============================================================================

package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/projected-journal/internal/models"
	"github.com/ginjaninja78/projected-journal/pkg/utils"
)

// SheetName is the journal worksheet name.
const SheetName = "Journal"

// Formatting limits for column sizing.
const (
	widthPadding  = 2
	widthCap      = 50
	widthSampleSz = 100
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04:05"
)

// =============================================================================
// EXPORT
// =============================================================================

// WriteJournal writes the journal rows to path, creating parent directories
// as needed.
func WriteJournal(rows []models.JournalRow, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("cannot export an empty journal")
	}

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name journal sheet: %w", err)
	}

	cells := toCells(rows)
	if err := writeRows(f, cells); err != nil {
		return err
	}
	if err := styleSheet(f, cells); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write journal workbook %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// ROW RENDERING
// =============================================================================

// toCells renders the header plus every journal row into display values.
// Amounts stay numeric so the exported table still supports arithmetic.
func toCells(rows []models.JournalRow) [][]any {
	out := make([][]any, 0, len(rows)+1)

	header := make([]any, len(models.Journal17Columns))
	for i, name := range models.Journal17Columns {
		header[i] = name
	}
	out = append(out, header)

	for _, row := range rows {
		out = append(out, []any{
			row.JournalID,
			row.TxnID,
			row.TxnDate.Format(dateFormat),
			row.CashDate.Format(dateFormat),
			row.DCFlag,
			row.GAAPAccount,
			row.CashFlowSection,
			row.Department,
			row.Product,
			row.CustomerID,
			row.VendorID,
			row.Location,
			row.Class,
			row.Amount.InexactFloat64(),
			row.CurrencyCode,
			row.CreatedAt.Format(timestampFormat),
			row.UpdatedAt.Format(timestampFormat),
		})
	}
	return out
}

// writeRows streams every rendered row onto the sheet.
func writeRows(f *excelize.File, cells [][]any) error {
	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell coordinate: %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write journal row %d: %w", i+1, err)
		}
	}
	return nil
}

// =============================================================================
// STYLING
// =============================================================================

// styleSheet freezes and formats the header, fits column widths and lays the
// green table over the data range.
func styleSheet(f *excelize.File, cells [][]any) error {
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(models.Journal17Columns))
	if err != nil {
		return fmt.Errorf("failed to compute last column: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	if err := fitColumnWidths(f, cells); err != nil {
		return err
	}

	showStripes := true
	if err := f.AddTable(SheetName, &excelize.Table{
		Range:          fmt.Sprintf("A1:%s%d", lastCol, len(cells)),
		Name:           "ProjectedJournal",
		StyleName:      "TableStyleMedium9", // green banded style
		ShowRowStripes: &showStripes,
	}); err != nil {
		return fmt.Errorf("failed to add journal table: %w", err)
	}
	return nil
}

// fitColumnWidths sizes each column to its longest rendered value, sampling
// the first rows for performance and capping the width.
func fitColumnWidths(f *excelize.File, cells [][]any) error {
	sample := cells
	if len(sample) > widthSampleSz {
		sample = sample[:widthSampleSz]
	}

	for col := range models.Journal17Columns {
		maxLen := 0
		for _, row := range sample {
			if col >= len(row) {
				continue
			}
			if l := len(fmt.Sprint(row[col])); l > maxLen {
				maxLen = l
			}
		}

		width := maxLen + widthPadding
		if width > widthCap {
			width = widthCap
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to compute column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}
	return nil
}
