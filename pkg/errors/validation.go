package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateSize validates a vertex size request.
//
// The layout engine treats sizes as physical lengths in inches, so both
// dimensions must be strictly positive and finite. Zero, negative, NaN, and
// infinite values are rejected before any graph state mutates.
func ValidateSize(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return New(ErrCodeInvalidSize, "width must be finite, got %v", width)
	}
	if math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidSize, "height must be finite, got %v", height)
	}
	if width <= 0 {
		return New(ErrCodeInvalidSize, "width must be positive, got %v", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidSize, "height must be positive, got %v", height)
	}
	return nil
}

// ValidateAttributeKey validates a caller-supplied attribute role key.
//
// Keys become column names in the presentation row stores, so the rules are
// intentionally conservative:
//   - No empty keys
//   - No control characters
//   - Maximum length of 256 characters
func ValidateAttributeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "attribute key cannot be empty")
	}

	if len(key) > 256 {
		return New(ErrCodeInvalidKey, "attribute key too long (max 256 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "attribute key contains invalid control characters")
		}
	}

	return nil
}

// ValidateSplineParam validates a B-spline evaluation parameter.
// The curve is defined over the closed interval [0, 1].
func ValidateSplineParam(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return New(ErrCodeInvalidParam, "spline parameter must be in [0, 1], got %v", t)
	}
	return nil
}

// ValidateDPI validates a dots-per-inch scale factor.
func ValidateDPI(dpi float64) error {
	if math.IsNaN(dpi) || math.IsInf(dpi, 0) || dpi <= 0 {
		return New(ErrCodeInvalidInput, "dpi must be a positive finite number, got %v", dpi)
	}
	return nil
}

// layoutNameRegex matches valid stored-layout names.
var layoutNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateLayoutName validates a name under which a layout is stored.
//
// Names are used as document keys and cache scopes, so the rules are
// intentionally conservative:
//   - No empty names
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
//   - Must match ^[A-Za-z0-9][A-Za-z0-9._-]*$
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "layout name too long (max 128 characters)")
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "layout name cannot contain path separators")
	}

	if !layoutNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid layout name: %q", name)
	}

	return nil
}
