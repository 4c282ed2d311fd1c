// Package stats tracks daily validation and generation counters. Counters
// are advisory observability data: writers treat failures as best-effort and
// never block the request path on them.
package stats

import (
	"context"
	"time"
)

// Outcome labels one counted event. The set mirrors the parse failure
// taxonomy plus the two generation categories.
type Outcome string

const (
	OutcomeValidCitizen      Outcome = "valid_citizen"
	OutcomeValidResident     Outcome = "valid_resident"
	OutcomeWrongLength       Outcome = "invalid_wrong_length"
	OutcomeNonDigit          Outcome = "invalid_non_digit"
	OutcomeInvalidCategory   Outcome = "invalid_category"
	OutcomeChecksumMismatch  Outcome = "invalid_checksum"
	OutcomeGeneratedCitizen  Outcome = "generated_citizen"
	OutcomeGeneratedResident Outcome = "generated_resident"
)

// Recorder is the write-side port consumed by the verification and
// generation services.
type Recorder interface {
	Increment(ctx context.Context, day string, outcome Outcome) error
}

// Store is the full stats port: recording plus the read side served by the
// stats endpoint.
type Store interface {
	Recorder
	Counts(ctx context.Context, day string) (map[Outcome]int64, error)
}

// Day formats a timestamp as the counter bucket key.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
