package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hpp_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL = 30 * time.Second
	lockKeyPrefix  = "hpp:lock:"
)

const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`

// RedisLocker is a try-once distributed lock. A key held elsewhere is
// reported with interfaces.ErrLockNotAcquired instead of waiting, so a
// second worker simply skips the item.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if l.client == nil {
		return errors.New("lock: redis client not configured")
	}
	if fn == nil {
		return errors.New("lock: callback not provided")
	}

	fullKey := lockKeyPrefix + key
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", interfaces.ErrLockNotAcquired, key)
	}
	defer l.release(context.WithoutCancel(ctx), fullKey, token)
	return fn(ctx)
}

func (l *RedisLocker) release(ctx context.Context, key, token string) {
	_ = l.client.Eval(ctx, releaseScript, []string{key}, token).Err()
}

// NoopLocker runs fn directly. It is used when Redis is not configured and
// a single worker processes notifications.
type NoopLocker struct{}

var _ interfaces.ILocker = NoopLocker{}

func (NoopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
