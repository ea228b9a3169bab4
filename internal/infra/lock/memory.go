package lock

import (
	"context"
	"sync"
	"time"
)

// MemoryLocker keeps locks in process memory. Locks are not shared between
// instances and do not survive restarts.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]lockEntry
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type lockEntry struct {
	expiresAt time.Time
	token     string
}

func NewMemoryLocker() *MemoryLocker {
	m := &MemoryLocker{
		locks: make(map[string]lockEntry),
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	go m.cleanupLoop(30 * time.Second)
	return m
}

func (m *MemoryLocker) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *MemoryLocker) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *MemoryLocker) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, e := range m.locks {
		if now.After(e.expiresAt) {
			delete(m.locks, key)
		}
	}
}

func (m *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.locks[key]; ok && now.Before(e.expiresAt) {
		return "", nil
	}
	token := newToken()
	m.locks[key] = lockEntry{expiresAt: now.Add(ttl), token: token}
	return token, nil
}

func (m *MemoryLocker) AcquireWithRetry(ctx context.Context, key string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (string, error) {
	return retryAcquire(ctx, m, key, ttl, maxRetries, retryDelay)
}

func (m *MemoryLocker) Release(ctx context.Context, key, token string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok || e.token != token {
		return false, nil
	}
	delete(m.locks, key)
	return true, nil
}

func (m *MemoryLocker) Extend(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok || e.token != token {
		return false, nil
	}
	now := m.now()
	if now.After(e.expiresAt) {
		delete(m.locks, key)
		return false, nil
	}
	e.expiresAt = now.Add(ttl)
	m.locks[key] = e
	return true, nil
}

// IsHeld reports whether any holder owns key.
func (m *MemoryLocker) IsHeld(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[key]
	if !ok {
		return false, nil
	}
	if m.now().After(e.expiresAt) {
		delete(m.locks, key)
		return false, nil
	}
	return true, nil
}

var _ Locker = (*MemoryLocker)(nil)
