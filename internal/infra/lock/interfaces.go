// Package lock provides per-entity locks for lifecycle operations.
// A single instance can use memory locks; several instances behind a load
// balancer need the Redis locker.
package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Locker hands out ownership tokens. Release and Extend only act while the
// token still owns the key, so a holder whose TTL lapsed cannot touch the
// lock of whoever acquired the key next.
type Locker interface {
	// Acquire returns an empty token without error when another holder owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, error)
	// Release returns false when token no longer owns the key.
	Release(ctx context.Context, key, token string) (bool, error)
	// Extend resets the TTL; false means the lock was lost.
	Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
}

func newToken() string {
	return uuid.NewString()
}

// retryAcquire is shared by the lockers that have no native blocking acquire.
func retryAcquire(ctx context.Context, l Locker, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, error) {
	for i := 0; i <= maxRetries; i++ {
		token, err := l.Acquire(ctx, key, ttl)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
		if i < maxRetries {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
	return "", nil
}
