//go:build integration

package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saudiid/pkg/testutil/containers"
)

func TestRedisStore_IncrementAndCounts(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	s := NewRedisStore(rc.Client, time.Hour)

	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeValidCitizen))
	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeValidCitizen))
	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeNonDigit))

	counts, err := s.Counts(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[OutcomeValidCitizen])
	assert.Equal(t, int64(1), counts[OutcomeNonDigit])
}

func TestRedisStore_MissingDayIsEmpty(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	s := NewRedisStore(rc.Client, time.Hour)

	counts, err := s.Counts(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRedisStore_SetsRetentionTTL(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	s := NewRedisStore(rc.Client, time.Hour)

	require.NoError(t, s.Increment(ctx, "2026-08-29", OutcomeValidResident))

	ttl, err := rc.Client.TTL(ctx, keyPrefix+"2026-08-29").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}
