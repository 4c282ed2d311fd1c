package domain

// The check digit is a Luhn-family double-and-fold scheme over the first
// nine digits. Indexing is from the left with the category digit at index 0,
// which for a nine-digit payload coincides with the standard Luhn doubling
// pattern (every second digit from the right, starting next to the check
// digit).

// ComputeCheckDigit returns the check digit for a nine-digit payload.
//
// Digits at even indexes are doubled and folded (values >= 10 have 9
// subtracted, equivalent to summing their decimal digits); odd indexes pass
// through. The check digit makes the full ten-digit fold-sum congruent to
// 0 mod 10.
//
// Pure and total: payload digits are assumed in range 0-9, which every
// caller in this module guarantees before invoking.
func ComputeCheckDigit(payload [PayloadLength]byte) byte {
	sum := 0
	for i, d := range payload {
		v := int(d)
		if i%2 == 0 {
			v *= 2
			if v >= 10 {
				v -= 9
			}
		}
		sum += v
	}
	return byte((10 - sum%10) % 10)
}

// VerifyCheckDigit reports whether the claimed check digit matches the one
// computed from the payload.
func VerifyCheckDigit(payload [PayloadLength]byte, claimed byte) bool {
	return claimed == ComputeCheckDigit(payload)
}
