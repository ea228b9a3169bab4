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

type MockBookWriteQueries struct {
	mock.Mock
}

func (m *MockBookWriteQueries) CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) (sqlc.Books, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Books), args.Error(1)
}

func (m *MockBookWriteQueries) GetBookByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Books), args.Error(1)
}

func (m *MockBookWriteQueries) GetBookByISBN(ctx context.Context, db sqlc.DBTX, isbn string) (sqlc.Books, error) {
	args := m.Called(ctx, db, isbn)
	return args.Get(0).(sqlc.Books), args.Error(1)
}

func (m *MockBookWriteQueries) UpdateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBookWriteQueries) DecrementBookStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementBookStockParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockBookWriteQueries) IncrementBookStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementBookStockParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockBookWriteQueries) DeleteBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookRepository_Create(t *testing.T) {
	b, err := builder.NewBookBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate isbn", mockErr: &pgconn.PgError{Code: "23505", ConstraintName: "books_isbn_key"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookWriteQueries)
			q.On("CreateBook", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookParams) bool {
				return p.ID == b.ID() && p.Isbn == b.ISBN().String() && p.Stock == int32(b.Stock())
			})).Return(sqlc.Books{}, tt.mockErr)

			err := NewBookRepository(q, nil).Create(context.Background(), b)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestBookRepository_FindByID(t *testing.T) {
	row := builder.NewBookBuilder().BuildInfra()

	t.Run("maps the row", func(t *testing.T) {
		q := new(MockBookWriteQueries)
		q.On("GetBookByIDForUpdate", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		b, err := NewBookRepository(q, nil).FindByID(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, b.ID())
		assert.Equal(t, row.Isbn, b.ISBN().String())
		assert.Equal(t, int(row.Stock), b.Stock())
	})

	t.Run("no rows is NOT_FOUND", func(t *testing.T) {
		q := new(MockBookWriteQueries)
		q.On("GetBookByIDForUpdate", mock.Anything, mock.Anything, row.ID).Return(sqlc.Books{}, pgx.ErrNoRows)

		_, err := NewBookRepository(q, nil).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookRepository_DecrementStock(t *testing.T) {
	b, err := builder.NewBookBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockStock int32
		mockErr   error
		wantStock int
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "returns remaining copies", mockStock: 2, wantStock: 2},
		{name: "guard rejected the update", mockErr: pgx.ErrNoRows, wantKind: infra.KindConflict},
		{name: "check constraint", mockErr: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookWriteQueries)
			q.On("DecrementBookStock", mock.Anything, mock.Anything, sqlc.DecrementBookStockParams{
				ID:        b.ID(),
				UpdatedAt: b.UpdatedAt(),
			}).Return(tt.mockStock, tt.mockErr)

			stock, err := NewBookRepository(q, nil).DecrementStock(context.Background(), b)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, stock)
		})
	}
}

func TestBookRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "nothing deleted", affected: 0, wantKind: infra.KindNotFound},
		{name: "still referenced by issues", mockErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockBookWriteQueries)
			q.On("DeleteBook", mock.Anything, mock.Anything, id).Return(tt.affected, tt.mockErr)

			err := NewBookRepository(q, nil).Delete(context.Background(), id)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
