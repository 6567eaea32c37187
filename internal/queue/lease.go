package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLeasePrefix namespaces per-dispatch lease keys.
const DefaultLeasePrefix = "reminders:lock:"

// DefaultLeaseTTL is used when no lease lifetime is configured.
const DefaultLeaseTTL = 2 * time.Minute

var ErrLeaseLost = errors.New("lease expired or taken over")

// releaseScript deletes the lease only while it still carries our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// Lease is a held per-dispatch lock.
type Lease struct {
	Key   string
	Token string
}

// Locker hands out at most one lease per dispatch at a time.
type Locker struct {
	rdb    redisClient
	prefix string
	ttl    time.Duration
}

// NewLocker creates a locker whose leases expire after ttl.
func NewLocker(rdb redisClient, prefix string, ttl time.Duration) *Locker {
	if prefix == "" {
		prefix = DefaultLeasePrefix
	}
	if ttl <= 0 {
		ttl = DefaultLeaseTTL
	}

	return &Locker{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Acquire tries to take the lease for a dispatch. ok is false when another
// worker already holds it.
func (l *Locker) Acquire(ctx context.Context, id uuid.UUID) (lease Lease, ok bool, err error) {
	lease = Lease{Key: l.prefix + id.String(), Token: uuid.NewString()}

	ok, err = l.rdb.SetNX(ctx, lease.Key, lease.Token, l.ttl).Result()
	if err != nil {
		return Lease{}, false, fmt.Errorf("acquire lease for %s: %w", id, err)
	}

	return lease, ok, nil
}

// Release gives the lease back. ErrLeaseLost is returned when it had
// already expired or been taken by someone else.
func (l *Locker) Release(ctx context.Context, lease Lease) error {
	n, err := l.rdb.Eval(ctx, releaseScript, []string{lease.Key}, lease.Token).Int64()
	if err != nil {
		return fmt.Errorf("release lease %s: %w", lease.Key, err)
	}
	if n == 0 {
		return ErrLeaseLost
	}

	return nil
}
