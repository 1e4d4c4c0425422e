// =============================================================================
// Projected Journal Generator - Raw Grid Model
// =============================================================================
//
// This package models a raw spreadsheet table as an ordered sequence of named
// columns, each an ordered sequence of heterogeneously-typed cells (blank,
// text, number, date). No column order or naming is assumed; the grid is how
// the workbook loader hands tabular data to the rest of the pipeline.
//
// Grids are received by reference and never mutated by consumers. All cell
// coercion helpers are pure.
//
// =============================================================================

package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CELLS
// =============================================================================

// CellKind discriminates the value held by a Cell.
type CellKind int

const (
	// KindBlank is an empty cell.
	KindBlank CellKind = iota

	// KindText is a free-text cell.
	KindText

	// KindNumber is a numeric cell.
	KindNumber

	// KindDate is a calendar-date cell.
	KindDate
)

// Cell is a single spreadsheet cell. Exactly one of Text, Number or Date is
// meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
	Date   time.Time
}

// Blank returns an empty cell.
func Blank() Cell { return Cell{Kind: KindBlank} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(d decimal.Decimal) Cell { return Cell{Kind: KindNumber, Number: d} }

// Date returns a date cell, truncated to midnight UTC.
func Date(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: Midnight(t)}
}

// IsBlank reports whether the cell is empty (or whitespace-only text).
func (c Cell) IsBlank() bool {
	if c.Kind == KindBlank {
		return true
	}
	return c.Kind == KindText && strings.TrimSpace(c.Text) == ""
}

// AsNumber coerces the cell to a decimal. Text cells are accepted when they
// parse as a monetary-looking number (currency symbols, thousands separators
// and accounting-style parentheses are tolerated).
func (c Cell) AsNumber() (decimal.Decimal, bool) {
	switch c.Kind {
	case KindNumber:
		return c.Number, true
	case KindText:
		return ParseNumber(c.Text)
	default:
		return decimal.Zero, false
	}
}

// AsDate coerces the cell to a calendar date. Text cells are accepted when
// they parse under one of the supported date layouts.
func (c Cell) AsDate() (time.Time, bool) {
	switch c.Kind {
	case KindDate:
		return c.Date, true
	case KindText:
		return ParseDate(c.Text)
	default:
		return time.Time{}, false
	}
}

// String renders the cell for pass-through use (e.g. counterparty names).
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return c.Number.String()
	case KindDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}

// =============================================================================
// COLUMNS
// =============================================================================

// Column is a named, ordered sequence of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// IsNumeric reports whether the column's values are uniformly numeric: at
// least one non-blank cell, and every non-blank cell coercible to a number.
// Blank cells do not break numericness; in a wide time-series grid they mean
// "no activity in that period".
func (c Column) IsNumeric() bool {
	seen := false
	for _, cell := range c.Cells {
		if cell.IsBlank() {
			continue
		}
		if _, ok := cell.AsNumber(); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// Sample returns the first n non-blank cells of the column.
func (c Column) Sample(n int) []Cell {
	out := make([]Cell, 0, n)
	for _, cell := range c.Cells {
		if cell.IsBlank() {
			continue
		}
		out = append(out, cell)
		if len(out) == n {
			break
		}
	}
	return out
}

// =============================================================================
// GRID
// =============================================================================

// Grid is an ordered collection of columns sharing one row count.
type Grid struct {
	Columns []Column
}

// NumRows returns the number of data rows in the grid.
func (g *Grid) NumRows() int {
	if len(g.Columns) == 0 {
		return 0
	}
	return len(g.Columns[0].Cells)
}

// IsEmpty reports whether the grid has no columns or no data rows.
func (g *Grid) IsEmpty() bool {
	return g == nil || len(g.Columns) == 0 || g.NumRows() == 0
}

// Column returns the column with the given name and whether it exists.
func (g *Grid) Column(name string) (Column, bool) {
	for _, col := range g.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// =============================================================================
// COERCION HELPERS
// =============================================================================

// dateLayouts are the supported textual date formats, most specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate attempts to parse text as a calendar date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Midnight(t), true
		}
	}
	return time.Time{}, false
}

// ParseNumber attempts to parse text as a decimal number. Currency symbols,
// thousands separators, surrounding whitespace and accounting parentheses
// ("(1,000.00)" meaning -1000.00) are tolerated.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// Midnight truncates a timestamp to a calendar date at midnight UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FromStrings builds a grid from a header row and string data rows, coercing
// each cell to its most specific kind (number, then date, then text). Ragged
// rows are padded with blank cells. Columns with empty header names are kept
// and given positional names so provenance tags stay meaningful.
func FromStrings(headers []string, rows [][]string) *Grid {
	g := &Grid{Columns: make([]Column, len(headers))}
	for i, name := range headers {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		g.Columns[i] = Column{Name: strings.TrimSpace(name), Cells: make([]Cell, len(rows))}
	}
	for r, row := range rows {
		for c := range g.Columns {
			if c >= len(row) {
				g.Columns[c].Cells[r] = Blank()
				continue
			}
			g.Columns[c].Cells[r] = CoerceCell(row[c])
		}
	}
	return g
}

// CoerceCell classifies one raw string cell.
func CoerceCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Blank()
	}
	if d, ok := ParseNumber(trimmed); ok {
		return Number(d)
	}
	if t, ok := ParseDate(trimmed); ok {
		return Date(t)
	}
	return Text(trimmed)
}
