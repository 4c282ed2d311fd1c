package domain

import "io"

// GenerateNationalID assembles a new valid NationalID: the category digit,
// eight digits drawn from src, and the computed check digit. The result
// satisfies every NationalID invariant by construction.
//
// The randomness source is injected so callers control determinism: pass
// crypto/rand.Reader in production and a seeded reader in tests. src must be
// safe for concurrent use per its own contract.
//
// Errors: returns *GenerateError with kind GenerateInvalidCategory for an
// unsupported category, or GenerateRandomnessUnavailable wrapping the reader
// failure. A failing source is surfaced immediately, never retried.
func GenerateNationalID(category Category, src io.Reader) (NationalID, error) {
	if !category.IsValid() {
		return NationalID{}, &GenerateError{Kind: GenerateInvalidCategory}
	}

	var digits [idLength]byte
	digits[0] = category.Digit()
	for i := 1; i < PayloadLength; i++ {
		d, err := randomDigit(src)
		if err != nil {
			return NationalID{}, &GenerateError{Kind: GenerateRandomnessUnavailable, Underlying: err}
		}
		digits[i] = d
	}

	var payload [PayloadLength]byte
	copy(payload[:], digits[:PayloadLength])
	digits[idLength-1] = ComputeCheckDigit(payload)

	return NationalID{digits: digits}, nil
}

// GenerateFromPayload builds a NationalID from a caller-supplied payload by
// computing and appending its check digit. Deterministic variant of
// GenerateNationalID, useful for tests and fixtures.
//
// Errors: returns *GenerateError with kind GenerateInvalidPayload when a
// digit is outside 0-9, or GenerateInvalidCategory when payload[0] is not
// 1 or 2.
func GenerateFromPayload(payload [PayloadLength]byte) (NationalID, error) {
	for i, d := range payload {
		if d > 9 {
			return NationalID{}, &GenerateError{Kind: GenerateInvalidPayload, Position: i, Digit: d}
		}
	}
	if _, ok := categoryForDigit(payload[0]); !ok {
		return NationalID{}, &GenerateError{Kind: GenerateInvalidCategory, Digit: payload[0]}
	}

	var digits [idLength]byte
	copy(digits[:], payload[:])
	digits[idLength-1] = ComputeCheckDigit(payload)

	return NationalID{digits: digits}, nil
}

// randomDigit draws one unbiased decimal digit from src. Bytes 250-255 are
// rejected so each digit keeps equal probability.
func randomDigit(src io.Reader) (byte, error) {
	var buf [1]byte
	for {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return 0, err
		}
		if buf[0] < 250 {
			return buf[0] % 10, nil
		}
	}
}
