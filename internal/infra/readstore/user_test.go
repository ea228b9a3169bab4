//go:build unit

package readstore

import (
	"context"
	"testing"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserIDByUsername(ctx context.Context, db sqlc.DBTX, username string) (uuid.UUID, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) CountMembers(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserReadQueries) SearchUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchUsersParams) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	row := builder.NewUserBuilder().WithIssuedBooks(uuid.New()).BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success",
			mockReturn: row,
		},
		{
			name:       "not found",
			mockReturn: sqlc.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "database error",
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserReadQueries)
			q.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockReturn, tt.mockError)
			store := NewUserReadStore(q, nil)

			view, err := store.FindByID(context.Background(), row.ID)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, row.Username, view.Username)
				assert.Equal(t, row.IssuedBookIds, view.IssuedBookIDs)
				assert.Equal(t, row.ViolationFlag, view.ViolationFlag)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserReadStore_FindIDByUsername(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		q := new(MockUserReadQueries)
		q.On("GetUserIDByUsername", mock.Anything, mock.Anything, "9876543210").Return(id, nil)

		got, err := NewUserReadStore(q, nil).FindIDByUsername(context.Background(), "9876543210")

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("unknown username", func(t *testing.T) {
		q := new(MockUserReadQueries)
		q.On("GetUserIDByUsername", mock.Anything, mock.Anything, "0000000000").Return(uuid.Nil, pgx.ErrNoRows)

		got, err := NewUserReadStore(q, nil).FindIDByUsername(context.Background(), "0000000000")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, uuid.Nil, got)
	})
}

func TestUserReadStore_List(t *testing.T) {
	rows := []sqlc.Users{
		builder.NewUserBuilder().WithUsername("9000000001").BuildInfra(),
		builder.NewUserBuilder().WithUsername("9000000002").BuildInfra(),
	}
	q := new(MockUserReadQueries)
	q.On("ListUsers", mock.Anything, mock.Anything, sqlc.ListUsersParams{Limit: 10, Offset: 20}).Return(rows, nil)

	views, err := NewUserReadStore(q, nil).List(context.Background(), 10, 20)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "9000000001", views[0].Username)
	assert.Equal(t, "9000000002", views[1].Username)
	q.AssertExpectations(t)
}

func TestUserReadStore_Count(t *testing.T) {
	q := new(MockUserReadQueries)
	q.On("CountMembers", mock.Anything, mock.Anything).Return(int64(7), nil)

	n, err := NewUserReadStore(q, nil).Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestUserReadStore_Search(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantPattern string
	}{
		{name: "plain", value: "priya", wantPattern: "%priya%"},
		{name: "escapes wildcards", value: "50%_off", wantPattern: `%50\%\_off%`},
		{name: "escapes backslash", value: `a\b`, wantPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserReadQueries)
			q.On("SearchUsers", mock.Anything, mock.Anything, sqlc.SearchUsersParams{
				Pattern: tt.wantPattern,
				MaxRows: 100,
			}).Return([]sqlc.Users{}, nil)

			views, err := NewUserReadStore(q, nil).Search(context.Background(), tt.value, 100)

			require.NoError(t, err)
			assert.Empty(t, views)
			assert.NotNil(t, views)
			q.AssertExpectations(t)
		})
	}
}
