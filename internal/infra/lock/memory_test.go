//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"library-admin/internal/infra/lock"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_AcquireRelease(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()
	key := shared.LockKeys.User(uuid.New())

	token, err := l.Acquire(ctx, key, time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	other, err := l.Acquire(ctx, key, time.Second)
	require.NoError(t, err)
	assert.Empty(t, other, "second acquire must fail while held")

	held, err := l.IsHeld(ctx, key)
	require.NoError(t, err)
	assert.True(t, held)

	released, err := l.Release(ctx, key, "not-the-owner")
	require.NoError(t, err)
	assert.False(t, released)

	released, err = l.Release(ctx, key, token)
	require.NoError(t, err)
	assert.True(t, released)

	released, err = l.Release(ctx, key, token)
	require.NoError(t, err)
	assert.False(t, released)

	next, err := l.Acquire(ctx, key, time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, next)
	assert.NotEqual(t, token, next)
}

func TestMemoryLocker_Expiry(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()
	key := shared.LockKeys.Book(uuid.New())

	token, err := l.Acquire(ctx, key, 20*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	time.Sleep(40 * time.Millisecond)

	held, err := l.IsHeld(ctx, key)
	require.NoError(t, err)
	assert.False(t, held)

	extended, err := l.Extend(ctx, key, token, time.Second)
	require.NoError(t, err)
	assert.False(t, extended)

	next, err := l.Acquire(ctx, key, time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, next)
}

func TestMemoryLocker_StaleHolderCannotTouchNextHolder(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()
	key := shared.LockKeys.Book(uuid.New())

	first, err := l.Acquire(ctx, key, 20*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	time.Sleep(40 * time.Millisecond)

	second, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, second)

	released, err := l.Release(ctx, key, first)
	require.NoError(t, err)
	assert.False(t, released)

	extended, err := l.Extend(ctx, key, first, time.Minute)
	require.NoError(t, err)
	assert.False(t, extended)

	third, err := l.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, third, "key must stay with the second holder")

	released, err = l.Release(ctx, key, second)
	require.NoError(t, err)
	assert.True(t, released)
}

func TestMemoryLocker_AcquireWithRetry(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()
	key := "lock:test"

	token, err := l.Acquire(ctx, key, time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	go func() {
		time.Sleep(30 * time.Millisecond)
		_, _ = l.Release(ctx, key, token)
	}()

	next, err := l.AcquireWithRetry(ctx, key, time.Second, 50, 10*time.Millisecond)
	require.NoError(t, err)
	assert.NotEmpty(t, next)
}

func TestMemoryLocker_AcquireWithRetry_GivesUp(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	other, err := l.AcquireWithRetry(ctx, "k", time.Minute, 2, time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryLocker_AcquireWithRetry_ContextCancelled(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)

	token, err := l.Acquire(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	other, err := l.AcquireWithRetry(ctx, "k", time.Minute, 1000, 5*time.Millisecond)
	assert.Empty(t, other)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	l := lock.NewMemoryLocker()
	t.Cleanup(l.Close)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := l.AcquireWithRetry(ctx, "shared", time.Second, 500, time.Millisecond)
			if err != nil || token == "" {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			_, _ = l.Release(ctx, "shared", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestNoOpLocker(t *testing.T) {
	l := lock.NewNoOpLocker()
	ctx := context.Background()

	a, err := l.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	b, err := l.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)

	released, err := l.Release(ctx, "k", a)
	require.NoError(t, err)
	assert.True(t, released)
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("7b0e3f8a-9d55-4c34-a1f2-0e6a1c6f5b11")
	assert.Equal(t, "lock:user:7b0e3f8a-9d55-4c34-a1f2-0e6a1c6f5b11", shared.LockKeys.User(id))
	assert.Equal(t, "lock:book:7b0e3f8a-9d55-4c34-a1f2-0e6a1c6f5b11", shared.LockKeys.Book(id))
}
