// File: utils/lock.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes a lock key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock is a Redis advisory lock held for at most its TTL.
type Lock struct {
	client *redis.Client
	key    string
	token  string
}

// BookingLockKey serializes transitions on a single booking.
func BookingLockKey(bookingID string) string {
	return BookingLockPrefix + bookingID
}

// SlotLockKey serializes availability-check-then-write on one service day.
func SlotLockKey(serviceID, date string) string {
	return fmt.Sprintf("%s%s:%s", SlotLockPrefix, serviceID, date)
}

// AcquireLock takes the named lock. It returns nil without error when
// another holder currently owns the key.
func AcquireLock(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	client := GetCacheClient()
	token := uuid.New().String()
	ok, err := client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	return &Lock{client: client, key: key, token: token}, nil
}

// Release frees the lock if this holder still owns it. Safe on a nil lock.
func (l *Lock) Release(ctx context.Context) {
	if l == nil {
		return
	}
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err(); err != nil && err != redis.Nil {
		GetLogger().Warn("Failed to release lock", zap.String("key", l.key), zap.Error(err))
	}
}
