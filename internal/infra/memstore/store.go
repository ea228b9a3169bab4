// Package memstore keeps the four collections in process memory. Each
// transaction works on a copy of the state and publishes it on success, so a
// failed operation leaves nothing behind.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	books      map[uuid.UUID]sqlc.Books
	users      map[uuid.UUID]sqlc.Users
	issues     map[uuid.UUID]sqlc.Issues
	activities []sqlc.Activities
}

func newState() *state {
	return &state{
		books:  make(map[uuid.UUID]sqlc.Books),
		users:  make(map[uuid.UUID]sqlc.Users),
		issues: make(map[uuid.UUID]sqlc.Issues),
	}
}

func (s *state) clone() *state {
	users := make(map[uuid.UUID]sqlc.Users, len(s.users))
	for id, u := range s.users {
		u.IssuedBookIds = slices.Clone(u.IssuedBookIds)
		users[id] = u
	}
	return &state{
		books:      maps.Clone(s.books),
		users:      users,
		issues:     maps.Clone(s.issues),
		activities: slices.Clone(s.activities),
	}
}

// Store serializes writers; readers see the last committed state.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &commandReads{store: s}
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

type memTx struct {
	st *state
}

func (t *memTx) Books() shared.BookRepository          { return &bookRepo{st: t.st} }
func (t *memTx) Users() shared.UserRepository          { return &userRepo{st: t.st} }
func (t *memTx) Issues() shared.IssueRepository        { return &issueRepo{st: t.st} }
func (t *memTx) Activities() shared.ActivityRepository { return &activityRepo{st: t.st} }

type commandReads struct {
	store *Store
}

func (r *commandReads) BookIDByISBN(_ context.Context, isbn string) (uuid.UUID, error) {
	var (
		id    uuid.UUID
		found bool
	)
	r.store.read(func(st *state) {
		id, found = st.bookIDByISBN(isbn)
	})
	if !found {
		return uuid.Nil, infra.NewNotFound("book not found")
	}
	return id, nil
}

func (r *commandReads) UserIDByUsername(_ context.Context, username string) (uuid.UUID, error) {
	var (
		id    uuid.UUID
		found bool
	)
	r.store.read(func(st *state) {
		id, found = st.userIDByUsername(username)
	})
	if !found {
		return uuid.Nil, infra.NewNotFound("user not found")
	}
	return id, nil
}

func (s *state) bookIDByISBN(isbn string) (uuid.UUID, bool) {
	for id, b := range s.books {
		if b.Isbn == isbn {
			return id, true
		}
	}
	return uuid.Nil, false
}

func (s *state) userIDByUsername(username string) (uuid.UUID, bool) {
	for id, u := range s.users {
		if u.Username == username {
			return id, true
		}
	}
	return uuid.Nil, false
}

var _ shared.UnitOfWork = (*Store)(nil)
