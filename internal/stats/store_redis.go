package stats

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "saudiid:stats:"

// RedisStore implements Store on a Redis hash per day. Each increment
// refreshes the retention TTL so old buckets age out on their own.
type RedisStore struct {
	client    redis.Cmdable
	retention time.Duration
}

// NewRedisStore creates a Redis-backed stats store. retention bounds how
// long a day bucket lives after its last write.
func NewRedisStore(client redis.Cmdable, retention time.Duration) *RedisStore {
	return &RedisStore{client: client, retention: retention}
}

// Increment adds one to the counter for the given day and outcome.
func (s *RedisStore) Increment(ctx context.Context, day string, outcome Outcome) error {
	key := keyPrefix + day
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, string(outcome), 1)
	pipe.Expire(ctx, key, s.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment stats %s/%s: %w", day, outcome, err)
	}
	return nil
}

// Counts returns the counters for the given day. Missing days yield an
// empty map.
func (s *RedisStore) Counts(ctx context.Context, day string) (map[Outcome]int64, error) {
	raw, err := s.client.HGetAll(ctx, keyPrefix+day).Result()
	if err != nil {
		return nil, fmt.Errorf("read stats %s: %w", day, err)
	}

	out := make(map[Outcome]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt stats counter %s/%s: %w", day, field, err)
		}
		out[Outcome(field)] = n
	}
	return out, nil
}
