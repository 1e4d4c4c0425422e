// =============================================================================
// Projected Journal Generator - Column Classifier Tests
// =============================================================================

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/projected-journal/internal/grid"
)

func TestClassifyColumnsByName(t *testing.T) {
	g := grid.FromStrings(
		[]string{"Due Date", "Vendor Name", "Amount", "Invoice Total"},
		[][]string{
			{"2026-02-15", "Acme Corp", "1200.50", "1200.50"},
			{"2026-03-01", "Globex", "75.00", "75.00"},
		},
	)

	c := ClassifyColumns(g)

	assert.Equal(t, []string{"Due Date"}, c.DateColumns)
	assert.Equal(t, []string{"Amount", "Invoice Total"}, c.AmountColumns)
	assert.True(t, c.HasDateAndAmount())
}

func TestClassifyColumnsAmountExclusionVeto(t *testing.T) {
	// "cash_date" contains the amount pattern "cash" but the "date" exclusion
	// vetoes it entirely, even though its values also fail numeric coercion.
	g := grid.FromStrings(
		[]string{"cash_date", "cash_amount"},
		[][]string{
			{"2026-02-15", "100.00"},
			{"2026-03-01", "200.00"},
		},
	)

	c := ClassifyColumns(g)

	assert.Equal(t, []string{"cash_date"}, c.DateColumns)
	assert.Equal(t, []string{"cash_amount"}, c.AmountColumns)
}

func TestClassifyColumnsExclusionBeatsNumericContent(t *testing.T) {
	// The date/time exclusion vetoes the whole amount path: a uniformly
	// numeric column named with an excluded token is not an amount column.
	g := grid.FromStrings(
		[]string{"Vendor", "Year_Total", "Total"},
		[][]string{
			{"Acme", "1200.00", "1200.00"},
			{"Globex", "300.00", "300.00"},
		},
	)

	c := ClassifyColumns(g)

	assert.Equal(t, []string{"Total"}, c.AmountColumns)
	assert.Empty(t, c.DateColumns)
}

func TestClassifyColumnsNumericContentFallback(t *testing.T) {
	// "Week 3" matches no amount pattern by name; its uniformly numeric
	// content makes it an amount column anyway. Blanks do not break it.
	g := grid.FromStrings(
		[]string{"Counterparty", "Week 3"},
		[][]string{
			{"Acme", "100.00"},
			{"Globex", ""},
			{"Initech", "(50.00)"},
		},
	)

	c := ClassifyColumns(g)

	assert.Empty(t, c.DateColumns)
	assert.Equal(t, []string{"Week 3"}, c.AmountColumns)
	assert.False(t, c.HasDateAndAmount())
}

func TestClassifyColumnsNeitherKind(t *testing.T) {
	g := grid.FromStrings(
		[]string{"Notes", "Status"},
		[][]string{
			{"call back", "open"},
			{"escalated", "closed"},
		},
	)

	c := ClassifyColumns(g)

	assert.Empty(t, c.DateColumns)
	assert.Empty(t, c.AmountColumns)
	assert.False(t, c.HasDateAndAmount())
}

func TestIsDateColumnContentProbe(t *testing.T) {
	dates := grid.Column{Name: "xdatex", Cells: []grid.Cell{
		grid.Text("2026-02-15"),
		grid.Text("2026-03-01"),
	}}
	assert.True(t, isDateColumn(dates))

	mixed := grid.Column{Name: "xdatex", Cells: []grid.Cell{
		grid.Text("2026-02-15"),
		grid.Text("not a date"),
	}}
	// One non-date value in the sample rejects the column.
	assert.True(t, isDateColumn(mixed), "name pattern match wins before the probe")

	noDateName := grid.Column{Name: "period", Cells: []grid.Cell{
		grid.Text("2026-02-15"),
	}}
	assert.False(t, isDateColumn(noDateName), "probe only runs for names mentioning date")
}

func TestProbeDateValues(t *testing.T) {
	assert.False(t, probeDateValues(grid.Column{Name: "d"}), "empty column fails the probe")

	good := grid.Column{Name: "d", Cells: []grid.Cell{grid.Text("01/15/2026"), grid.Blank()}}
	assert.True(t, probeDateValues(good))

	bad := grid.Column{Name: "d", Cells: []grid.Cell{grid.Text("01/15/2026"), grid.Text("soon")}}
	assert.False(t, probeDateValues(bad))
}
