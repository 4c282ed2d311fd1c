package domain

import dErrors "saudiid/pkg/domain-errors"

// Category is a domain value that classifies the holder of a national ID.
// Invariant: the value must be one of the two supported holder categories.
//
// Usage: construct via ParseCategory at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Category string

// Supported holder categories. The category is encoded in the leading digit
// of the ID: 1 for citizens, 2 for residents.
const (
	CategoryCitizen  Category = "citizen"
	CategoryResident Category = "resident"
)

const (
	citizenPrefix  byte = 1
	residentPrefix byte = 2
)

// categoryPrefixes is the single source of truth for category digits.
var categoryPrefixes = map[Category]byte{
	CategoryCitizen:  citizenPrefix,
	CategoryResident: residentPrefix,
}

// ParseCategory constructs a Category from external input.
//
// Usage: call from handlers/adapters when parsing requests.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported; no
// other errors are expected.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "category cannot be empty")
	}
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid category")
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	_, ok := categoryPrefixes[c]
	return ok
}

// Digit returns the leading digit that encodes this category (1 or 2).
// Returns 0 for an invalid category.
func (c Category) Digit() byte {
	return categoryPrefixes[c]
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// categoryForDigit maps a leading digit back to its category.
func categoryForDigit(d byte) (Category, bool) {
	switch d {
	case citizenPrefix:
		return CategoryCitizen, true
	case residentPrefix:
		return CategoryResident, true
	default:
		return "", false
	}
}
