// =============================================================================
// Projected Journal Generator - Error Conditions
// =============================================================================
//
// This package defines the two condition kinds the normalization core can
// raise, plus the mapping-conflict condition used by the fixed-schema
// validators:
//
//   - UnsupportedFormatError : the cash grid's layout cannot be classified,
//     or a selected processor's structural prerequisite is absent. Always
//     names the missing structural requirement.
//   - SchemaError            : an input table is empty, a fixed-schema
//     workbook is malformed, or canonicalization discovered an internal
//     contract violation.
//   - MappingConflictError   : GL accounts cannot be mapped to GAAP or
//     cash-flow buckets.
//
// All three are terminal. Nothing in this repository catches and suppresses
// them; they propagate to the CLI, which renders them as a JSON report.
//
// =============================================================================

package errs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// =============================================================================
// ERROR DETAILS
// =============================================================================

// Detail is one structured entry of an error report. The JSON shape is part
// of the CLI contract:
//
//	{"file": "GAAP Mapping.xlsx", "row": 42,
//	 "issue": "GAAPAccount 5100 missing in mapping",
//	 "hint": "Add 5100-COGS to the mapping or correct the AP grid reference."}
type Detail struct {
	// File is the workbook the problem was found in.
	File string `json:"file"`

	// Row is the 1-based row number, 0 when the problem is file-level.
	Row int `json:"row,omitempty"`

	// Issue describes what is wrong.
	Issue string `json:"issue"`

	// Hint tells the user how to fix it.
	Hint string `json:"hint"`
}

// Report is the JSON document the CLI prints to stderr on failure.
type Report struct {
	Status string   `json:"status"`
	Errors []Detail `json:"errors"`
}

// ReportJSON renders a list of details as an indented JSON error report.
func ReportJSON(details []Detail) ([]byte, error) {
	return json.MarshalIndent(Report{Status: "error", Errors: details}, "", "  ")
}

// =============================================================================
// CONDITION TYPES
// =============================================================================

// UnsupportedFormatError reports a cash grid whose structure the pipeline
// cannot work with. The Reason names the missing structural requirement.
type UnsupportedFormatError struct {
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported cash grid format: %s", e.Reason)
}

// SchemaError reports a malformed input or a violated internal contract.
type SchemaError struct {
	Reason  string
	Details []Detail
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Reason)
}

// MappingConflictError reports GL accounts that cannot be mapped to GAAP or
// cash-flow buckets.
type MappingConflictError struct {
	Reason  string
	Details []Detail
}

func (e *MappingConflictError) Error() string {
	return fmt.Sprintf("mapping conflict: %s", e.Reason)
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// Unsupportedf builds an UnsupportedFormatError from a format string.
func Unsupportedf(format string, args ...any) *UnsupportedFormatError {
	return &UnsupportedFormatError{Reason: fmt.Sprintf(format, args...)}
}

// Schemaf builds a SchemaError from a format string.
func Schemaf(format string, args ...any) *SchemaError {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}

// SchemaWithDetails builds a SchemaError carrying structured detail entries.
func SchemaWithDetails(reason string, details []Detail) *SchemaError {
	return &SchemaError{Reason: reason, Details: details}
}

// MappingConflict builds a MappingConflictError carrying detail entries.
func MappingConflict(reason string, details []Detail) *MappingConflictError {
	return &MappingConflictError{Reason: reason, Details: details}
}

// =============================================================================
// CLASSIFICATION HELPERS
// =============================================================================

// IsUnsupportedFormat reports whether err is an Unsupported-Format condition.
func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

// IsSchema reports whether err is a Schema condition.
func IsSchema(err error) bool {
	var target *SchemaError
	return errors.As(err, &target)
}

// DetailsOf extracts the structured details carried by a condition, if any.
// Conditions without details yield a single file-level entry built from the
// error message so the CLI always has something to report.
func DetailsOf(err error) []Detail {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) && len(schemaErr.Details) > 0 {
		return schemaErr.Details
	}
	var mapErr *MappingConflictError
	if errors.As(err, &mapErr) && len(mapErr.Details) > 0 {
		return mapErr.Details
	}
	return []Detail{{
		Issue: err.Error(),
		Hint:  "Check the input workbooks and re-run. Use --verbose for more detail.",
	}}
}
