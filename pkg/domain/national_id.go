// Package domain holds the typed value objects shared across the service.
//
// Values are constructed via ParseXxx functions at trust boundaries so that
// invalid states are unrepresentable once a value exists. The packages here
// contain only pure domain logic with no I/O and no context.Context.
package domain

// idLength is the fixed digit count of a Saudi national ID.
const idLength = 10

// PayloadLength is the number of digits feeding the checksum: the category
// digit plus eight body digits. The tenth digit is the check digit.
const PayloadLength = 9

// NationalID is a validated Saudi national identification number.
//
// Invariants (hold for every non-zero value):
//   - exactly 10 digits, each 0-9
//   - leading digit is 1 (citizen) or 2 (resident)
//   - trailing digit satisfies the checksum over the first nine digits
//
// The zero value represents "absent" and is never a valid ID (a valid ID
// cannot have a leading zero). NationalID is immutable and safe to copy and
// compare with ==.
type NationalID struct {
	digits [idLength]byte
}

// ParseNationalID constructs a NationalID from external input.
//
// The input must be exactly 10 ASCII decimal digits: no separators, no sign,
// no surrounding whitespace. Callers that tolerate whitespace must trim
// before parsing.
//
// Errors: returns *ParseError with kind ParseWrongLength, ParseNonDigit,
// ParseInvalidCategory, or ParseChecksumMismatch. Parsing is deterministic:
// the same input always yields the same result.
func ParseNationalID(raw string) (NationalID, error) {
	if len(raw) != idLength {
		return NationalID{}, &ParseError{Kind: ParseWrongLength, Length: len(raw)}
	}

	var digits [idLength]byte
	for i := 0; i < idLength; i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return NationalID{}, &ParseError{Kind: ParseNonDigit, Position: i, Char: c}
		}
		digits[i] = c - '0'
	}

	if _, ok := categoryForDigit(digits[0]); !ok {
		return NationalID{}, &ParseError{Kind: ParseInvalidCategory, Digit: digits[0]}
	}

	var payload [PayloadLength]byte
	copy(payload[:], digits[:PayloadLength])
	expected := ComputeCheckDigit(payload)
	if digits[idLength-1] != expected {
		return NationalID{}, &ParseError{
			Kind:     ParseChecksumMismatch,
			Expected: expected,
			Actual:   digits[idLength-1],
		}
	}

	return NationalID{digits: digits}, nil
}

// Category returns the holder category encoded in the leading digit.
// Total on any valid (non-zero) NationalID.
func (n NationalID) Category() Category {
	c, _ := categoryForDigit(n.digits[0])
	return c
}

// Payload returns the first nine digits, category digit included. This is
// the checksum input.
func (n NationalID) Payload() [PayloadLength]byte {
	var payload [PayloadLength]byte
	copy(payload[:], n.digits[:PayloadLength])
	return payload
}

// CheckDigit returns the trailing validation digit.
func (n NationalID) CheckDigit() byte {
	return n.digits[idLength-1]
}

// String renders the canonical 10-digit form. Round-trips exactly with
// ParseNationalID for any value produced by parsing or generation. Returns
// the empty string for the zero value.
func (n NationalID) String() string {
	if n.IsZero() {
		return ""
	}
	buf := make([]byte, idLength)
	for i, d := range n.digits {
		buf[i] = '0' + d
	}
	return string(buf)
}

// IsZero reports whether this is the absent sentinel value.
func (n NationalID) IsZero() bool {
	return n == NationalID{}
}
