// =============================================================================
// Projected Journal Generator - Transaction-Type Inferencer
// =============================================================================
//
// Assigns the AP/AR direction to every intermediate row. A sheet/tab name
// hint wins unconditionally when it identifies a direction; otherwise the
// amount sign decides per row. This is the only stage where sign carries
// meaning - after it, sign is discarded.
//
// =============================================================================

package normalize

import "strings"

// TxnType is the direction of a scheduled cash movement.
type TxnType string

const (
	// AP is accounts payable: cash the entity owes.
	AP TxnType = "AP"

	// AR is accounts receivable: cash owed to the entity.
	AR TxnType = "AR"
)

// hintTxnType resolves a sheet-name hint to a direction. The boolean is
// false when the hint names neither direction (or is empty), in which case
// per-row sign inference applies.
func hintTxnType(sheetHint string) (TxnType, bool) {
	hint := strings.ToLower(sheetHint)

	if strings.Contains(hint, "payable") || containsToken(hint, "ap") {
		return AP, true
	}
	if strings.Contains(hint, "receivable") || containsToken(hint, "ar") {
		return AR, true
	}
	return "", false
}

// inferTxnTypes labels every staged row. A resolvable hint overrides sign
// inference for all rows; otherwise amount >= 0 means AR and amount < 0
// means AP.
func inferTxnTypes(staged []stageRow, sheetHint string) []typedRow {
	hinted, hasHint := hintTxnType(sheetHint)

	typed := make([]typedRow, len(staged))
	for i, row := range staged {
		txnType := hinted
		if !hasHint {
			if row.amount.Sign() >= 0 {
				txnType = AR
			} else {
				txnType = AP
			}
		}
		typed[i] = typedRow{stageRow: row, txnType: txnType}
	}
	return typed
}

// containsToken reports whether the literal token appears in the hint when
// split on non-alphanumeric characters, so "AP_Schedule" matches "ap" but
// "graph" does not.
func containsToken(hint, token string) bool {
	isSep := func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}
	for _, part := range strings.FieldsFunc(hint, isSep) {
		if part == token {
			return true
		}
	}
	return false
}
