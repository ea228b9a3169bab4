//go:build unit

package repository

import (
	"context"
	"testing"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserIssuedBooks(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserIssuedBooksParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserFlag(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserFlagParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "username taken", mockErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() && p.Username == u.Username().String() && p.PasswordHash == u.PasswordHash()
			})).Return(sqlc.Users{}, tt.mockErr)

			err := NewUserRepository(q, nil).Create(context.Background(), u)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	held := uuid.New()
	row := builder.NewUserBuilder().WithIssuedBooks(held).BuildInfra()

	t.Run("rebuilds the aggregate", func(t *testing.T) {
		q := new(MockUserWriteQueries)
		q.On("GetUserByUsername", mock.Anything, mock.Anything, row.Username).Return(row, nil)

		u, err := NewUserRepository(q, nil).FindByUsername(context.Background(), row.Username)
		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		assert.True(t, u.HoldsBook(held))
		assert.Equal(t, "Priya Sharma", u.FullName())
	})

	t.Run("unknown username", func(t *testing.T) {
		q := new(MockUserWriteQueries)
		q.On("GetUserByUsername", mock.Anything, mock.Anything, "0000000000").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(q, nil).FindByUsername(context.Background(), "0000000000")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_UpdateIssuedBooks(t *testing.T) {
	t.Run("empty list is sent as an empty array", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		q := new(MockUserWriteQueries)
		q.On("UpdateUserIssuedBooks", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserIssuedBooksParams) bool {
			return p.IssuedBookIds != nil && len(p.IssuedBookIds) == 0
		})).Return(nil)

		require.NoError(t, NewUserRepository(q, nil).UpdateIssuedBooks(context.Background(), u))
		q.AssertExpectations(t)
	})

	t.Run("limit check is CHECK_VIOLATED", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithIssuedBooks(uuid.New()).BuildDomain()
		require.NoError(t, err)

		q := new(MockUserWriteQueries)
		q.On("UpdateUserIssuedBooks", mock.Anything, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23514", ConstraintName: "users_issued_limit_check"})

		err = NewUserRepository(q, nil).UpdateIssuedBooks(context.Background(), u)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}

func TestUserRepository_UpdateFlag(t *testing.T) {
	u, err := builder.NewUserBuilder().AsFlagged().BuildDomain()
	require.NoError(t, err)

	q := new(MockUserWriteQueries)
	q.On("UpdateUserFlag", mock.Anything, mock.Anything, sqlc.UpdateUserFlagParams{
		ID:            u.ID(),
		ViolationFlag: true,
		UpdatedAt:     u.UpdatedAt(),
	}).Return(nil)

	require.NoError(t, NewUserRepository(q, nil).UpdateFlag(context.Background(), u))
	q.AssertExpectations(t)
}

func TestUserRepository_Delete(t *testing.T) {
	id := uuid.New()

	q := new(MockUserWriteQueries)
	q.On("DeleteUser", mock.Anything, mock.Anything, id).Return(int64(0), nil)

	err := NewUserRepository(q, nil).Delete(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
