package lock

import (
	"context"
	"time"
)

// NoOpLocker always succeeds. Stock and issue guards in SQL still apply.
type NoOpLocker struct{}

const noopToken = "noop"

func NewNoOpLocker() *NoOpLocker {
	return &NoOpLocker{}
}

func (n *NoOpLocker) Acquire(ctx context.Context, _ string, _ time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return noopToken, nil
}

func (n *NoOpLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, _ int, _ time.Duration) (string, error) {
	return n.Acquire(ctx, key, ttl)
}

func (n *NoOpLocker) Release(ctx context.Context, _, _ string) (bool, error) {
	return true, ctx.Err()
}

func (n *NoOpLocker) Extend(ctx context.Context, _, _ string, _ time.Duration) (bool, error) {
	return true, ctx.Err()
}

var _ Locker = (*NoOpLocker)(nil)
