package readstore

import (
	"context"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserIDByUsername(ctx context.Context, db sqlc.DBTX, username string) (uuid.UUID, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
	CountMembers(ctx context.Context, db sqlc.DBTX) (int64, error)
	SearchUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchUsersParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindIDByUsername(ctx context.Context, username string) (uuid.UUID, error) {
	id, err := r.queries.GetUserIDByUsername(ctx, r.db, username)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return id, nil
}

func (r *UserReadStore) List(ctx context.Context, limit, offset int) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, sqlc.ListUsersParams{
		Limit:  pgconv.IntToInt32(limit),
		Offset: pgconv.IntToInt32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return toUserViews(rows), nil
}

func (r *UserReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountMembers(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count users", err)
	}
	return n, nil
}

func (r *UserReadStore) Search(ctx context.Context, value string, limit int) ([]*queries.UserView, error) {
	rows, err := r.queries.SearchUsers(ctx, r.db, sqlc.SearchUsersParams{
		Pattern: containsPattern(value),
		MaxRows: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}
	return toUserViews(rows), nil
}

var _ queries.UserReadStore = (*UserReadStore)(nil)
