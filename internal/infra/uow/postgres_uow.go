package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"library-admin/internal/infra"
	"library-admin/internal/infra/repository"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction hitting a serialization failure
// or deadlock is replayed.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return NewPostgresUoWWithPolicy(pool, q, DefaultRetryPolicy)
}

func NewPostgresUoWWithPolicy(pool *pgxpool.Pool, q *sqlc.Queries, policy RetryPolicy) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: policy,
	}
}

// Within runs fn in a ReadCommitted transaction. Repositories lock the book
// and user rows they load, so concurrent lifecycle operations on the same
// rows queue behind each other. fn may run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	maxRetries := u.policy.MaxRetries

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt >= maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := calculateBackoff(attempt, u.policy.BaseDelay)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"pg_code", pgconv.PgErrorCode(err),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

// attempt owns one pgx transaction; the rollback runs per attempt rather than
// being deferred across the retry loop.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	switch pgconv.PgErrorCode(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookRepo     shared.BookRepository
	userRepo     shared.UserRepository
	issueRepo    shared.IssueRepository
	activityRepo shared.ActivityRepository
}

func (t *pgTx) Books() shared.BookRepository {
	if t.bookRepo == nil {
		t.bookRepo = repository.NewBookRepository(t.uow.q, t.dbtx)
	}
	return t.bookRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Issues() shared.IssueRepository {
	if t.issueRepo == nil {
		t.issueRepo = repository.NewIssueRepository(t.uow.q, t.dbtx)
	}
	return t.issueRepo
}

func (t *pgTx) Activities() shared.ActivityRepository {
	if t.activityRepo == nil {
		t.activityRepo = repository.NewActivityRepository(t.uow.q, t.dbtx)
	}
	return t.activityRepo
}

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (r *commandReads) BookIDByISBN(ctx context.Context, isbn string) (uuid.UUID, error) {
	id, err := r.q.GetBookIDByISBN(ctx, r.dbtx, isbn)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to resolve book by ISBN", err)
	}
	return id, nil
}

func (r *commandReads) UserIDByUsername(ctx context.Context, username string) (uuid.UUID, error) {
	id, err := r.q.GetUserIDByUsername(ctx, r.dbtx, username)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to resolve user by username", err)
	}
	return id, nil
}
