// Package queue keeps reminder tasks in Redis until they are due and
// guards each dispatch with a short-lived lease.
//
// Tasks live in a sorted set: the member is the dispatch id and the score is
// the fire time in Unix milliseconds. Because the member is the id, a dispatch
// has at most one waiting task and re-enqueueing only moves its fire time.
package queue

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// DefaultDelayedKey is the sorted set holding waiting tasks.
const DefaultDelayedKey = "reminders:delayed"

//go:generate mockgen -source=delayed.go -destination=../mocks/queue/mock.go -package=mocks
type redisClient interface {
	ZAdd(ctx context.Context, key string, members ...*redis.Z) *redis.IntCmd
	ZRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd
	ZRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// DelayedSet is the waiting room of the dispatch queue.
type DelayedSet struct {
	rdb redisClient
	key string
}

// NewDelayedSet creates a delayed set stored under key.
func NewDelayedSet(rdb redisClient, key string) *DelayedSet {
	if key == "" {
		key = DefaultDelayedKey
	}

	return &DelayedSet{rdb: rdb, key: key}
}

// Enqueue schedules a task for the dispatch at the given instant. An
// existing task for the same dispatch is moved to the new time.
func (s *DelayedSet) Enqueue(ctx context.Context, id uuid.UUID, at time.Time) error {
	z := &redis.Z{Score: float64(at.UTC().UnixMilli()), Member: id.String()}
	if err := s.rdb.ZAdd(ctx, s.key, z).Err(); err != nil {
		return fmt.Errorf("enqueue dispatch %s: %w", id, err)
	}

	return nil
}

// PopDue claims up to limit tasks whose fire time is not after now. A task
// is claimed by whoever removes it from the set, so concurrent pumps never
// hand out the same task twice.
func (s *DelayedSet) PopDue(ctx context.Context, now time.Time, limit int64) ([]uuid.UUID, error) {
	members, err := s.rdb.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UTC().UnixMilli(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("read due tasks: %w", err)
	}

	claimed := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		removed, err := s.rdb.ZRem(ctx, s.key, m).Result()
		if err != nil {
			return claimed, fmt.Errorf("claim task %s: %w", m, err)
		}
		if removed == 0 {
			continue
		}

		id, err := uuid.Parse(m)
		if err != nil {
			zlog.Logger.Warn().Str("member", m).Msg("dropping malformed task from delayed set")
			continue
		}

		claimed = append(claimed, id)
	}

	return claimed, nil
}
