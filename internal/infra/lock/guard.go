package lock

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/shared"
)

// Guard acquires several keys in the order given and releases them in
// reverse. While the keys are held they are extended every half TTL, so a
// slow unit of work does not outlive its locks.
type Guard struct {
	locker     Locker
	ttl        time.Duration
	retries    int
	retryDelay time.Duration
}

type heldLock struct {
	key   string
	token string
}

func NewGuard(locker Locker, cfg config.LockConfig) *Guard {
	return &Guard{
		locker:     locker,
		ttl:        cfg.TTL,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
	}
}

func (g *Guard) Hold(ctx context.Context, keys ...string) (func(), error) {
	held := make([]heldLock, 0, len(keys))
	for _, key := range keys {
		if slices.ContainsFunc(held, func(h heldLock) bool { return h.key == key }) {
			continue
		}
		token, err := g.locker.AcquireWithRetry(ctx, key, g.ttl, g.retries, g.retryDelay)
		if err != nil || token == "" {
			g.release(ctx, held)
			if err == nil {
				err = errs.New("lock held by another operation")
			}
			return nil, errs.Mark(errs.Wrapf(err, "acquire %s", key), errs.ErrLockUnavailable)
		}
		held = append(held, heldLock{key: key, token: token})
	}

	stop := g.keepAlive(ctx, held)
	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			g.release(ctx, held)
		})
	}, nil
}

func (g *Guard) keepAlive(ctx context.Context, held []heldLock) (stop func()) {
	if g.ttl <= 0 || len(held) == 0 {
		return func() {}
	}
	ctx = context.WithoutCancel(ctx)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(g.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				for _, h := range held {
					ok, err := g.locker.Extend(ctx, h.key, h.token, g.ttl)
					if err != nil || !ok {
						slog.Warn("lock lost while held", "key", h.key, "error", err)
					}
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func (g *Guard) release(ctx context.Context, held []heldLock) {
	// a cancelled request must still give its locks back
	ctx = context.WithoutCancel(ctx)
	for i := len(held) - 1; i >= 0; i-- {
		released, err := g.locker.Release(ctx, held[i].key, held[i].token)
		if err != nil {
			slog.Warn("failed to release lock", "key", held[i].key, "error", err)
			continue
		}
		if !released {
			slog.Warn("lock expired before release", "key", held[i].key)
		}
	}
}

var _ shared.LockGuard = (*Guard)(nil)
