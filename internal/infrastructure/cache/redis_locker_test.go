package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"hpp_gateway/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, time.Minute), mr
}

func TestRedisLocker_WithLock(t *testing.T) {
	locker, mr := newTestLocker(t)
	ctx := context.Background()

	ran := false
	err := locker.WithLock(ctx, "payment-notification:n-1", func(ctx context.Context) error {
		ran = true
		assert.True(t, mr.Exists(lockKeyPrefix+"payment-notification:n-1"))

		inner := locker.WithLock(ctx, "payment-notification:n-1", func(context.Context) error {
			t.Fatalf("lock must not be acquired twice")
			return nil
		})
		assert.True(t, errors.Is(inner, interfaces.ErrLockNotAcquired))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, mr.Exists(lockKeyPrefix+"payment-notification:n-1"), "released after fn")
}

func TestRedisLocker_ReleasesOnError(t *testing.T) {
	locker, mr := newTestLocker(t)

	err := locker.WithLock(context.Background(), "k", func(context.Context) error { return errors.New("boom") })
	assert.EqualError(t, err, "boom")
	assert.False(t, mr.Exists(lockKeyPrefix+"k"))
}

func TestRedisLocker_DoesNotReleaseForeignToken(t *testing.T) {
	locker, mr := newTestLocker(t)

	err := locker.WithLock(context.Background(), "k", func(context.Context) error {
		require.NoError(t, mr.Set(lockKeyPrefix+"k", "someone-else"))
		return nil
	})
	require.NoError(t, err)
	got, err := mr.Get(lockKeyPrefix + "k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_Errors(t *testing.T) {
	assert.Error(t, (&RedisLocker{}).WithLock(context.Background(), "k", func(context.Context) error { return nil }))

	locker, mr := newTestLocker(t)
	assert.Error(t, locker.WithLock(context.Background(), "k", nil))

	mr.SetError("ERR server unavailable")
	err := locker.WithLock(context.Background(), "k", func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestNoopLocker(t *testing.T) {
	called := false
	err := NoopLocker{}.WithLock(context.Background(), "k", func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
