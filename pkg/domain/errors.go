package domain

import (
	"errors"
	"fmt"
)

// ParseKind defines the normalized parse failure taxonomy. The set is closed:
// every rejected input maps to exactly one kind, and re-parsing the same
// input reproduces the same kind.
type ParseKind string

const (
	// ParseWrongLength indicates the input is not exactly 10 characters.
	ParseWrongLength ParseKind = "wrong_length"

	// ParseNonDigit indicates a character outside ASCII 0-9.
	ParseNonDigit ParseKind = "non_digit"

	// ParseInvalidCategory indicates a leading digit outside {1, 2}.
	ParseInvalidCategory ParseKind = "invalid_category"

	// ParseChecksumMismatch indicates the trailing digit does not match the
	// checksum computed from the payload.
	ParseChecksumMismatch ParseKind = "checksum_mismatch"
)

// ParseError reports why an input string was rejected by ParseNationalID.
// Only the fields relevant to the Kind are populated.
type ParseError struct {
	Kind ParseKind

	// Length is the actual character count (ParseWrongLength).
	Length int

	// Position and Char locate the offending character (ParseNonDigit).
	Position int
	Char     byte

	// Digit is the rejected leading digit (ParseInvalidCategory).
	Digit byte

	// Expected and Actual are check digits (ParseChecksumMismatch).
	Expected byte
	Actual   byte
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseWrongLength:
		return fmt.Sprintf("national ID must be exactly %d digits, got %d", idLength, e.Length)
	case ParseNonDigit:
		return fmt.Sprintf("national ID contains non-digit character %q at position %d", e.Char, e.Position)
	case ParseInvalidCategory:
		return fmt.Sprintf("national ID must start with 1 (citizen) or 2 (resident), got %d", e.Digit)
	case ParseChecksumMismatch:
		return fmt.Sprintf("national ID check digit mismatch: expected %d, got %d", e.Expected, e.Actual)
	default:
		return "national ID is invalid"
	}
}

// ParseKindOf extracts the parse failure kind from an error. Returns the
// empty kind when err is not a ParseError.
func ParseKindOf(err error) ParseKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// GenerateKind defines the normalized generation failure taxonomy.
type GenerateKind string

const (
	// GenerateRandomnessUnavailable indicates the randomness source failed.
	GenerateRandomnessUnavailable GenerateKind = "randomness_unavailable"

	// GenerateInvalidCategory indicates an unsupported category or a payload
	// whose leading digit is outside {1, 2}.
	GenerateInvalidCategory GenerateKind = "invalid_category"

	// GenerateInvalidPayload indicates a payload digit outside 0-9.
	GenerateInvalidPayload GenerateKind = "invalid_payload"
)

// GenerateError reports why national ID generation failed.
type GenerateError struct {
	Kind GenerateKind

	// Position and Digit locate the offending payload digit
	// (GenerateInvalidPayload, GenerateInvalidCategory).
	Position int
	Digit    byte

	// Underlying carries the randomness source failure
	// (GenerateRandomnessUnavailable).
	Underlying error
}

// Error implements the error interface.
func (e *GenerateError) Error() string {
	switch e.Kind {
	case GenerateRandomnessUnavailable:
		return fmt.Sprintf("randomness source unavailable: %v", e.Underlying)
	case GenerateInvalidCategory:
		return fmt.Sprintf("payload must start with 1 (citizen) or 2 (resident), got %d", e.Digit)
	case GenerateInvalidPayload:
		return fmt.Sprintf("payload digit at position %d is out of range: %d", e.Position, e.Digit)
	default:
		return "national ID generation failed"
	}
}

// Unwrap supports error unwrapping for the randomness source failure.
func (e *GenerateError) Unwrap() error {
	return e.Underlying
}

// GenerateKindOf extracts the generation failure kind from an error. Returns
// the empty kind when err is not a GenerateError.
func GenerateKindOf(err error) GenerateKind {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}
