package interfaces

import (
	"context"
	"errors"
)

var ErrLockNotAcquired = errors.New("lock not acquired")

// ILocker runs fn while holding key. Implementations return an error
// wrapping ErrLockNotAcquired when another worker holds the key.
type ILocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
