package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeCheckDigit_KnownVectors pins the algorithm to hand-computed
// values so a refactor cannot silently change the scheme.
func TestComputeCheckDigit_KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		payload [PayloadLength]byte
		want    byte
	}{
		// fold-sum S = 1*2 = 2, check = (10-2)%10
		{"citizen all zero", [PayloadLength]byte{1, 0, 0, 0, 0, 0, 0, 0, 0}, 8},
		// fold-sum S = 2*2 = 4
		{"resident all zero", [PayloadLength]byte{2, 0, 0, 0, 0, 0, 0, 0, 0}, 6},
		// S = 2+5+7+1+7+7+4+3+1 = 37
		{"citizen mixed", [PayloadLength]byte{1, 5, 8, 1, 8, 7, 2, 3, 5}, 3},
		// S = 4+4+3+8+2+3+1+7+9 = 41
		{"resident mixed", [PayloadLength]byte{2, 4, 6, 8, 1, 3, 5, 7, 9}, 9},
		// doubling 9 folds to 9, so all-nines sums to 9*9 = 81
		{"citizen-less all nines", [PayloadLength]byte{9, 9, 9, 9, 9, 9, 9, 9, 9}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCheckDigit(tt.payload))
		})
	}
}

// TestVerifyCheckDigit_Correctness sweeps payloads one digit at a time and
// asserts verify(p, compute(p)) always holds and every other claimed digit
// is rejected.
func TestVerifyCheckDigit_Correctness(t *testing.T) {
	base := [PayloadLength]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for pos := 0; pos < PayloadLength; pos++ {
		for d := byte(0); d <= 9; d++ {
			p := base
			p[pos] = d
			check := ComputeCheckDigit(p)
			require.True(t, check <= 9)
			assert.True(t, VerifyCheckDigit(p, check), "payload %v", p)

			for claimed := byte(0); claimed <= 9; claimed++ {
				if claimed == check {
					continue
				}
				assert.False(t, VerifyCheckDigit(p, claimed), "payload %v claimed %d", p, claimed)
			}
		}
	}
}

// TestChecksum_SingleDigitSensitivity exhaustively enumerates single-digit
// substitutions over full 10-digit IDs. The fold map 0,2,4,6,8,1,3,5,7,9 is
// a permutation of the digits, so every single-digit substitution at every
// position must be detected. Substitutions that land outside the ID grammar entirely
// (leading digit) count as detected.
func TestChecksum_SingleDigitSensitivity(t *testing.T) {
	seeds := [][PayloadLength]byte{
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 5, 8, 1, 8, 7, 2, 3, 5},
		{2, 4, 6, 8, 1, 3, 5, 7, 9},
		{1, 9, 9, 9, 9, 9, 9, 9, 9},
		{2, 1, 2, 1, 2, 1, 2, 1, 2},
	}

	for _, payload := range seeds {
		id, err := GenerateFromPayload(payload)
		require.NoError(t, err)
		raw := id.String()

		for pos := 0; pos < len(raw); pos++ {
			detected := 0
			for r := byte('0'); r <= '9'; r++ {
				if r == raw[pos] {
					continue
				}
				mutated := raw[:pos] + string(r) + raw[pos+1:]
				if _, err := ParseNationalID(mutated); err != nil {
					detected++
				}
			}
			assert.Equal(t, 9, detected,
				"id %s position %d: every substitution must be detected", raw, pos)
		}
	}
}

// TestChecksum_FoldMapIsPermutation documents why sensitivity is total: the
// double-and-fold transform maps the ten digits onto the ten digits with no
// collision.
func TestChecksum_FoldMapIsPermutation(t *testing.T) {
	seen := make(map[int]byte)
	for d := 0; d <= 9; d++ {
		v := d * 2
		if v >= 10 {
			v -= 9
		}
		prev, dup := seen[v]
		require.False(t, dup, "digits %d and %d collide on folded value %d", prev, d, v)
		seen[v] = byte(d)
	}
	assert.Len(t, seen, 10)
}
