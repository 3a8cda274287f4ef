package utils

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := CacheClient
	CacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { CacheClient = prev })
	return mr
}

func TestAcquireAndReleaseLock(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	lock, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	require.NotNil(t, lock)
	assert.True(t, mr.Exists("lock:test"))

	lock.Release(ctx)
	assert.False(t, mr.Exists("lock:test"), "release deletes the key")

	// The freed lock is immediately acquirable again.
	again, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	assert.NotNil(t, again)
}

func TestAcquireLockContended(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	first, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	assert.Nil(t, second, "a held lock yields nil, not an error")
}

func TestReleaseOnlyWithOwnToken(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	stale, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	require.NotNil(t, stale)

	// The TTL expires while the first holder is still working; a second
	// holder takes the key.
	mr.FastForward(LockTTL + time.Second)
	current, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	require.NotNil(t, current)

	// The stale holder's release must not free the new holder's lock.
	stale.Release(ctx)
	assert.True(t, mr.Exists("lock:test"))

	current.Release(ctx)
	assert.False(t, mr.Exists("lock:test"))
}

func TestLockExpiresOnItsOwn(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	lock, err := AcquireLock(ctx, "lock:test", LockTTL)
	require.NoError(t, err)
	require.NotNil(t, lock)

	mr.FastForward(LockTTL + time.Second)
	assert.False(t, mr.Exists("lock:test"), "an abandoned lock cannot outlive its TTL")
}

func TestReleaseNilLock(t *testing.T) {
	var lock *Lock
	lock.Release(context.Background())
}

func TestLockKeyFormats(t *testing.T) {
	assert.Equal(t, "lock:booking:b1", BookingLockKey("b1"))
	assert.Equal(t, "lock:slots:svc-1:2026-03-02", SlotLockKey("svc-1", "2026-03-02"))
}
