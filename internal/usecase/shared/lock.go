package shared

import (
	"context"

	"github.com/google/uuid"
)

// LockGuard serializes mutations to the same book or user across requests.
type LockGuard interface {
	// Hold acquires every key in the given order and returns a release func
	// that frees them in reverse order.
	Hold(ctx context.Context, keys ...string) (release func(), err error)
}

// LockKeys builds lock keys. Callers take the user key before the book key.
var LockKeys = lockKeys{}

type lockKeys struct{}

func (lockKeys) User(id uuid.UUID) string {
	return "lock:user:" + id.String()
}

func (lockKeys) Book(id uuid.UUID) string {
	return "lock:book:" + id.String()
}
