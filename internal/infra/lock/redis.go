package lock

import (
	"context"
	"time"

	"library-admin/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker shares locks across instances. The key's value is the
// holder's token; release and extend compare it server side.
type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := newToken()
	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", errs.Wrapf(err, "redis SETNX %s", key)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

func (r *RedisLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, error) {
	return retryAcquire(ctx, r, key, ttl, maxRetries, retryDelay)
}

func (r *RedisLocker) Release(ctx context.Context, key, token string) (bool, error) {
	n, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()
	if err != nil {
		return false, errs.Wrapf(err, "redis release %s", key)
	}
	return n == 1, nil
}

func (r *RedisLocker) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	n, err := extendScript.Run(ctx, r.client, []string{key}, token, ttl.Milliseconds()).Int()
	if err != nil {
		return false, errs.Wrapf(err, "redis extend %s", key)
	}
	return n == 1, nil
}

var _ Locker = (*RedisLocker)(nil)
