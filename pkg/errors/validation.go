package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxPanelIDLength bounds panel identifiers; they end up in log lines and
// terminal labels.
const maxPanelIDLength = 128

// ValidatePanelID validates a panel identifier.
//
// The rules are:
//   - No empty ids
//   - No control characters or surrounding whitespace
//   - Maximum length of 128 characters
func ValidatePanelID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSpec, "panel id cannot be empty")
	}

	if len(id) > maxPanelIDLength {
		return New(ErrCodeInvalidSpec, "panel id too long (max %d characters)", maxPanelIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSpec, "panel id %q contains control characters", id)
		}
	}

	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidSpec, "panel id %q has leading or trailing whitespace", id)
	}

	return nil
}

// ValidateSize checks that a declared size or bound is a finite,
// non-negative number.
func ValidateSize(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSpec, "%s must be a finite number", field)
	}
	if v < 0 {
		return New(ErrCodeInvalidSpec, "%s cannot be negative (got %v)", field, v)
	}
	return nil
}
