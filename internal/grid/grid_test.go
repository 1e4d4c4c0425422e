// =============================================================================
// Projected Journal Generator - Raw Grid Model Tests
// =============================================================================

package grid

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain integer", "100", "100", true},
		{"plain decimal", "1234.56", "1234.56", true},
		{"currency symbol", "$1,200.50", "1200.5", true},
		{"thousands separators", "1,000,000", "1000000", true},
		{"accounting negative", "(1,000.00)", "-1000", true},
		{"leading whitespace", "  42.00 ", "42", true},
		{"negative sign", "-75.25", "-75.25", true},
		{"empty string", "", "", false},
		{"plain text", "Acme Corp", "", false},
		{"lone parentheses", "()", "", false},
		{"date-looking text", "2026-02-15", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"ISO date", "2026-02-15", true},
		{"slash date", "2026/02/15", true},
		{"US date", "02/15/2026", true},
		{"US date short", "2/15/2026", true},
		{"month name", "Feb 15, 2026", true},
		{"full month name", "February 15, 2026", true},
		{"empty string", "", false},
		{"free text", "next tuesday", false},
		{"bare number", "42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(want), "got %s, want %s", got, want)
			}
		})
	}
}

func TestParseDateTruncatesToMidnight(t *testing.T) {
	got, ok := ParseDate("2026-02-15 13:45:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestCoerceCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  CellKind
	}{
		{"blank", "", KindBlank},
		{"whitespace only", "   ", KindBlank},
		{"number", "1,200.50", KindNumber},
		{"date", "2026-02-15", KindDate},
		{"text", "Acme Corp", KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, CoerceCell(tt.input).Kind)
		})
	}
}

func TestCellIsBlank(t *testing.T) {
	assert.True(t, Blank().IsBlank())
	assert.True(t, Text("   ").IsBlank())
	assert.False(t, Text("x").IsBlank())
	assert.False(t, Number(decimal.Zero).IsBlank())
}

func TestColumnIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  bool
	}{
		{
			name:  "all numbers",
			cells: []Cell{Number(decimal.New(1, 0)), Number(decimal.New(2, 0))},
			want:  true,
		},
		{
			name:  "numbers with blanks",
			cells: []Cell{Number(decimal.New(1, 0)), Blank(), Number(decimal.New(2, 0))},
			want:  true,
		},
		{
			name:  "numeric-looking text",
			cells: []Cell{Text("$1,000.00"), Text("(250.00)")},
			want:  true,
		},
		{
			name:  "one text cell breaks it",
			cells: []Cell{Number(decimal.New(1, 0)), Text("n/a")},
			want:  false,
		},
		{
			name:  "all blanks",
			cells: []Cell{Blank(), Blank()},
			want:  false,
		},
		{
			name:  "empty column",
			cells: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := Column{Name: "test", Cells: tt.cells}
			assert.Equal(t, tt.want, col.IsNumeric())
		})
	}
}

func TestColumnSample(t *testing.T) {
	col := Column{Cells: []Cell{Blank(), Text("a"), Blank(), Text("b"), Text("c")}}

	sample := col.Sample(2)
	require.Len(t, sample, 2)
	assert.Equal(t, "a", sample[0].Text)
	assert.Equal(t, "b", sample[1].Text)

	assert.Len(t, col.Sample(10), 3)
}

func TestFromStrings(t *testing.T) {
	g := FromStrings(
		[]string{"Vendor", "Amount", ""},
		[][]string{
			{"Acme", "100.00", "2026-02-15"},
			{"Globex", "(50.00)"}, // ragged row
		},
	)

	require.Len(t, g.Columns, 3)
	assert.Equal(t, 2, g.NumRows())
	assert.Equal(t, "Vendor", g.Columns[0].Name)
	assert.Equal(t, "Column_3", g.Columns[2].Name, "blank headers get positional names")

	assert.Equal(t, KindText, g.Columns[0].Cells[0].Kind)
	assert.Equal(t, KindNumber, g.Columns[1].Cells[0].Kind)
	assert.Equal(t, KindDate, g.Columns[2].Cells[0].Kind)
	assert.True(t, g.Columns[2].Cells[1].IsBlank(), "ragged rows pad with blanks")

	amount, ok := g.Columns[1].Cells[1].AsNumber()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("-50")))
}

func TestGridAccessors(t *testing.T) {
	var nilGrid *Grid
	assert.True(t, nilGrid.IsEmpty())
	assert.True(t, (&Grid{}).IsEmpty())

	g := FromStrings([]string{"A"}, [][]string{{"x"}})
	assert.False(t, g.IsEmpty())

	col, ok := g.Column("A")
	require.True(t, ok)
	assert.Equal(t, "A", col.Name)

	_, ok = g.Column("missing")
	assert.False(t, ok)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 8, 24, 17, 30, 45, 123, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), Midnight(in))
}
