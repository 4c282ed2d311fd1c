package stats

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_IncrementAndCounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	day := Day(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.Increment(ctx, day, OutcomeValidCitizen))
	require.NoError(t, s.Increment(ctx, day, OutcomeValidCitizen))
	require.NoError(t, s.Increment(ctx, day, OutcomeChecksumMismatch))

	counts, err := s.Counts(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[OutcomeValidCitizen])
	assert.Equal(t, int64(1), counts[OutcomeChecksumMismatch])
	assert.Len(t, counts, 2)
}

func TestMemoryStore_DaysAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Increment(ctx, "2026-08-28", OutcomeValidResident))
	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeValidResident))

	counts, err := s.Counts(ctx, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[OutcomeValidResident])
}

func TestMemoryStore_MissingDayIsEmpty(t *testing.T) {
	s := NewMemoryStore()

	counts, err := s.Counts(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestMemoryStore_CountsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeValidCitizen))

	counts, err := s.Counts(ctx, "2026-08-29")
	require.NoError(t, err)
	counts[OutcomeValidCitizen] = 999

	fresh, err := s.Counts(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh[OutcomeValidCitizen])
}

func TestMemoryStore_ConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_ = s.Increment(ctx, "2026-08-29", OutcomeWrongLength)
			}
		}()
	}
	wg.Wait()

	counts, err := s.Counts(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), counts[OutcomeWrongLength])
}

func TestDay(t *testing.T) {
	// Local time east of UTC still buckets by the UTC date.
	loc := time.FixedZone("AST", 3*60*60)
	ts := time.Date(2026, 8, 30, 1, 30, 0, 0, loc)

	assert.Equal(t, "2026-08-29", Day(ts))
}
