package errors

import (
	"math"
	"unicode"
)

// ValidateObjectName validates a scene object name.
//
// The validation rules are intentionally conservative:
//   - No empty names (loaders generate names before validating)
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Names are used as node labels in rendered support graphs and as lookup
// keys for selections and anchors, so they must stay printable and short.
func ValidateObjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "object name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidScene, "object name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "object name %q contains control characters", name)
		}
	}

	return nil
}

// ValidatePadding validates a padding value supplied by a user or an API
// request. Padding is an extra gap between stacked boxes and must be a
// finite, non-negative number.
func ValidatePadding(padding float64) error {
	if math.IsNaN(padding) || math.IsInf(padding, 0) {
		return New(ErrCodeInvalidInput, "padding must be a finite number")
	}
	if padding < 0 {
		return New(ErrCodeInvalidInput, "padding must not be negative, got %v", padding)
	}
	return nil
}
