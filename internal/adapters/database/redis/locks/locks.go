package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Storage holds short-lived dispatch locks. A lock on a notification id
// means a dispatch for it is in flight or recently succeeded; the TTL bounds
// how long a crashed dispatcher can block redelivery.
type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(rdb *redis.Client, ttl time.Duration) *Storage {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Storage{
		redis: rdb,
		ttl:   ttl,
	}
}

// Acquire attempts to take the lock for a notification id. The second
// return is false when another dispatch already holds it.
func (s *Storage) Acquire(ctx context.Context, notificationID string) (bool, error) {
	return s.redis.SetNX(ctx, key(notificationID), 1, s.ttl).Result()
}

// Release drops the lock so the next cadence can retry.
func (s *Storage) Release(ctx context.Context, notificationID string) error {
	return s.redis.Del(ctx, key(notificationID)).Err()
}

func key(notificationID string) string {
	return fmt.Sprintf("dispatch:%s", notificationID)
}
