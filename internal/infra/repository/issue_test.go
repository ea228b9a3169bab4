//go:build unit

package repository

import (
	"context"
	"testing"

	"library-admin/internal/domain/issue"
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

type MockIssueWriteQueries struct {
	mock.Mock
}

func (m *MockIssueWriteQueries) CreateIssue(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateIssueParams) (sqlc.Issues, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Issues), args.Error(1)
}

func (m *MockIssueWriteQueries) GetIssueByUserAndBook(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIssueByUserAndBookParams) (sqlc.Issues, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Issues), args.Error(1)
}

func (m *MockIssueWriteQueries) GetIssueByUsernameAndBook(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIssueByUsernameAndBookParams) (sqlc.Issues, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Issues), args.Error(1)
}

func (m *MockIssueWriteQueries) ListIssuesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Issues, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.Issues), args.Error(1)
}

func (m *MockIssueWriteQueries) CountIssuesByBook(ctx context.Context, db sqlc.DBTX, bookID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssueWriteQueries) UpdateIssueRenewal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIssueRenewalParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockIssueWriteQueries) DeleteIssue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssueWriteQueries) DeleteIssuesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssueWriteQueries) PropagateUserToIssues(ctx context.Context, db sqlc.DBTX, arg sqlc.PropagateUserToIssuesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssueWriteQueries) PropagateBookToIssues(ctx context.Context, db sqlc.DBTX, arg sqlc.PropagateBookToIssuesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestIssueRepository_Create(t *testing.T) {
	i := builder.NewIssueBuilder().BuildDomain()

	t.Run("copies both snapshots", func(t *testing.T) {
		q := new(MockIssueWriteQueries)
		q.On("CreateIssue", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateIssueParams) bool {
			return p.ID == i.ID() &&
				p.BookID == i.Book().ID &&
				p.BookTitle == i.Book().Title &&
				p.UserUsername == i.User().Username &&
				p.UserFullName == i.User().FullName &&
				p.ReturnDate.Equal(i.ReturnDate())
		})).Return(sqlc.Issues{}, nil)

		require.NoError(t, NewIssueRepository(q, nil).Create(context.Background(), i))
		q.AssertExpectations(t)
	})

	t.Run("second issue of the same book", func(t *testing.T) {
		q := new(MockIssueWriteQueries)
		q.On("CreateIssue", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Issues{}, &pgconn.PgError{Code: "23505", ConstraintName: "issues_user_book_key"})

		err := NewIssueRepository(q, nil).Create(context.Background(), i)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestIssueRepository_FindByUsernameAndBook(t *testing.T) {
	row := builder.NewIssueBuilder().AsRenewed().BuildInfra()
	params := sqlc.GetIssueByUsernameAndBookParams{UserUsername: row.UserUsername, BookID: row.BookID}

	t.Run("found", func(t *testing.T) {
		q := new(MockIssueWriteQueries)
		q.On("GetIssueByUsernameAndBook", mock.Anything, mock.Anything, params).Return(row, nil)

		i, err := NewIssueRepository(q, nil).FindByUsernameAndBook(context.Background(), row.UserUsername, row.BookID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, i.ID())
		assert.True(t, i.IsRenewed())
		assert.Equal(t, int(row.BookStock), i.Book().Stock)
	})

	t.Run("missing", func(t *testing.T) {
		q := new(MockIssueWriteQueries)
		q.On("GetIssueByUsernameAndBook", mock.Anything, mock.Anything, params).Return(sqlc.Issues{}, pgx.ErrNoRows)

		_, err := NewIssueRepository(q, nil).FindByUsernameAndBook(context.Background(), row.UserUsername, row.BookID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestIssueRepository_Propagate(t *testing.T) {
	t.Run("user info", func(t *testing.T) {
		info := issue.UserInfo{ID: uuid.New(), Username: "1112223334", FullName: "Priya Nair"}
		q := new(MockIssueWriteQueries)
		q.On("PropagateUserToIssues", mock.Anything, mock.Anything, sqlc.PropagateUserToIssuesParams{
			UserID:       info.ID,
			UserUsername: info.Username,
			UserFullName: info.FullName,
		}).Return(int64(2), nil)

		n, err := NewIssueRepository(q, nil).PropagateUserInfo(context.Background(), info)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("book info failure", func(t *testing.T) {
		q := new(MockIssueWriteQueries)
		q.On("PropagateBookToIssues", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := NewIssueRepository(q, nil).PropagateBookInfo(context.Background(), issue.BookInfo{ID: uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestIssueRepository_Delete(t *testing.T) {
	id := uuid.New()
	q := new(MockIssueWriteQueries)
	q.On("DeleteIssue", mock.Anything, mock.Anything, id).Return(int64(0), nil)

	err := NewIssueRepository(q, nil).Delete(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
