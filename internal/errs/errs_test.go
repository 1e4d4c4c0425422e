// =============================================================================
// Projected Journal Generator - Error Condition Tests
// =============================================================================

package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionClassification(t *testing.T) {
	unsupported := Unsupportedf("no weekly columns")
	schema := Schemaf("empty table")

	assert.True(t, IsUnsupportedFormat(unsupported))
	assert.False(t, IsSchema(unsupported))
	assert.True(t, IsSchema(schema))
	assert.False(t, IsUnsupportedFormat(schema))

	// Classification survives wrapping.
	wrapped := fmt.Errorf("pipeline failed: %w", unsupported)
	assert.True(t, IsUnsupportedFormat(wrapped))

	assert.False(t, IsSchema(errors.New("plain")))
}

func TestConditionMessages(t *testing.T) {
	assert.Equal(t,
		"unsupported cash grid format: grid has 12 numeric columns",
		Unsupportedf("grid has %d numeric columns", 12).Error())
	assert.Equal(t,
		"schema error: table is empty",
		Schemaf("table is empty").Error())
	assert.Equal(t,
		"mapping conflict: unmapped accounts",
		MappingConflict("unmapped accounts", nil).Error())
}

func TestDetailsOf(t *testing.T) {
	details := []Detail{
		{File: "GAAP Mapping.xlsx", Row: 42, Issue: "GAAPAccount 5100 missing", Hint: "Add it."},
	}

	assert.Equal(t, details, DetailsOf(SchemaWithDetails("bad mapping", details)))
	assert.Equal(t, details, DetailsOf(MappingConflict("bad mapping", details)))

	// Conditions without details still yield a reportable entry.
	fallback := DetailsOf(Unsupportedf("no layout matched"))
	require.Len(t, fallback, 1)
	assert.Contains(t, fallback[0].Issue, "no layout matched")
	assert.NotEmpty(t, fallback[0].Hint)
}

func TestReportJSON(t *testing.T) {
	out, err := ReportJSON([]Detail{
		{File: "Beginning BS.xlsx", Row: 3, Issue: "Balance not numeric", Hint: "Fix row 3."},
		{File: "config", Issue: "Unsupported currency", Hint: "Use USD."},
	})
	require.NoError(t, err)

	var report struct {
		Status string `json:"status"`
		Errors []struct {
			File  string `json:"file"`
			Row   int    `json:"row"`
			Issue string `json:"issue"`
			Hint  string `json:"hint"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(out, &report))

	assert.Equal(t, "error", report.Status)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 3, report.Errors[0].Row)
	assert.Equal(t, 0, report.Errors[1].Row, "file-level entries omit the row")
	assert.NotContains(t, string(out), `"row": 0`, "row is omitempty")
}
