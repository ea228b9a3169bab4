package repository

import (
	"context"

	"library-admin/internal/domain/issue"
	"library-admin/internal/infra"
	"library-admin/internal/infra/repository/converter"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type IssueWriteQueries interface {
	CreateIssue(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateIssueParams) (sqlc.Issues, error)
	GetIssueByUserAndBook(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIssueByUserAndBookParams) (sqlc.Issues, error)
	GetIssueByUsernameAndBook(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIssueByUsernameAndBookParams) (sqlc.Issues, error)
	ListIssuesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Issues, error)
	CountIssuesByBook(ctx context.Context, db sqlc.DBTX, bookID uuid.UUID) (int64, error)
	UpdateIssueRenewal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIssueRenewalParams) error
	DeleteIssue(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteIssuesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	PropagateUserToIssues(ctx context.Context, db sqlc.DBTX, arg sqlc.PropagateUserToIssuesParams) (int64, error)
	PropagateBookToIssues(ctx context.Context, db sqlc.DBTX, arg sqlc.PropagateBookToIssuesParams) (int64, error)
}

type IssueRepository struct {
	queries IssueWriteQueries
	db      sqlc.DBTX
}

func NewIssueRepository(queries IssueWriteQueries, db sqlc.DBTX) *IssueRepository {
	return &IssueRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps the (user_id, book_id) unique violation to KindDuplicateKey.
func (r *IssueRepository) Create(ctx context.Context, i *issue.Issue) error {
	if _, err := r.queries.CreateIssue(ctx, r.db, converter.IssueToCreateParams(i)); err != nil {
		return infra.WrapRepoErr("failed to create issue", err)
	}
	return nil
}

func (r *IssueRepository) FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*issue.Issue, error) {
	row, err := r.queries.GetIssueByUserAndBook(ctx, r.db, sqlc.GetIssueByUserAndBookParams{
		UserID: userID,
		BookID: bookID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find issue", err)
	}
	return converter.IssueFromRow(row), nil
}

func (r *IssueRepository) FindByUsernameAndBook(ctx context.Context, username string, bookID uuid.UUID) (*issue.Issue, error) {
	row, err := r.queries.GetIssueByUsernameAndBook(ctx, r.db, sqlc.GetIssueByUsernameAndBookParams{
		UserUsername: username,
		BookID:       bookID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find issue by username", err)
	}
	return converter.IssueFromRow(row), nil
}

func (r *IssueRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*issue.Issue, error) {
	rows, err := r.queries.ListIssuesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list issues for user", err)
	}
	return converter.IssuesFromRows(rows), nil
}

func (r *IssueRepository) CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	n, err := r.queries.CountIssuesByBook(ctx, r.db, bookID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count issues for book", err)
	}
	return n, nil
}

func (r *IssueRepository) UpdateRenewal(ctx context.Context, i *issue.Issue) error {
	params := sqlc.UpdateIssueRenewalParams{
		ID:         i.ID(),
		ReturnDate: i.ReturnDate(),
		IsRenewed:  i.IsRenewed(),
	}
	if err := r.queries.UpdateIssueRenewal(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to renew issue", err)
	}
	return nil
}

func (r *IssueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteIssue(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete issue", err)
	}
	if n == 0 {
		return infra.NewNotFound("issue not found")
	}
	return nil
}

func (r *IssueRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteIssuesByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete issues for user", err)
	}
	return n, nil
}

func (r *IssueRepository) PropagateUserInfo(ctx context.Context, info issue.UserInfo) (int64, error) {
	n, err := r.queries.PropagateUserToIssues(ctx, r.db, converter.UserInfoToPropagateParams(info))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to propagate user info to issues", err)
	}
	return n, nil
}

func (r *IssueRepository) PropagateBookInfo(ctx context.Context, info issue.BookInfo) (int64, error) {
	n, err := r.queries.PropagateBookToIssues(ctx, r.db, converter.BookInfoToPropagateParams(info))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to propagate book info to issues", err)
	}
	return n, nil
}

var _ shared.IssueRepository = (*IssueRepository)(nil)
