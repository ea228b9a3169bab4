package repository

import (
	"context"

	"library-admin/internal/domain/user"
	"library-admin/internal/infra"
	"library-admin/internal/infra/repository/converter"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	GetUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error
	UpdateUserIssuedBooks(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserIssuedBooksParams) error
	UpdateUserFlag(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserFlagParams) error
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return converter.UserFromRow(row), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *user.User) error {
	if err := r.queries.UpdateUserProfile(ctx, r.db, converter.UserToProfileParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}

func (r *UserRepository) UpdateIssuedBooks(ctx context.Context, u *user.User) error {
	if err := r.queries.UpdateUserIssuedBooks(ctx, r.db, converter.UserToIssuedBooksParams(u)); err != nil {
		return infra.WrapRepoErr("failed to update issued books", err)
	}
	return nil
}

func (r *UserRepository) UpdateFlag(ctx context.Context, u *user.User) error {
	params := sqlc.UpdateUserFlagParams{
		ID:            u.ID(),
		ViolationFlag: u.ViolationFlag(),
		UpdatedAt:     u.UpdatedAt(),
	}
	if err := r.queries.UpdateUserFlag(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update violation flag", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return infra.NewNotFound("user not found")
	}
	return nil
}

var _ shared.UserRepository = (*UserRepository)(nil)
