package readstore

import (
	"context"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssueReadQueries interface {
	ListOpenIssues(ctx context.Context, db sqlc.DBTX) ([]sqlc.Issues, error)
	ListOpenIssuesByUsername(ctx context.Context, db sqlc.DBTX, userUsername string) ([]sqlc.Issues, error)
	ListIssuesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Issues, error)
}

type IssueReadStore struct {
	queries IssueReadQueries
	db      sqlc.DBTX
}

func NewIssueReadStore(queries IssueReadQueries, db sqlc.DBTX) *IssueReadStore {
	return &IssueReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *IssueReadStore) ListOpen(ctx context.Context) ([]*queries.IssueView, error) {
	rows, err := r.queries.ListOpenIssues(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open issues", err)
	}
	return toIssueViews(rows), nil
}

func (r *IssueReadStore) ListOpenByUsername(ctx context.Context, username string) ([]*queries.IssueView, error) {
	rows, err := r.queries.ListOpenIssuesByUsername(ctx, r.db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open issues by username", err)
	}
	return toIssueViews(rows), nil
}

func (r *IssueReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.IssueView, error) {
	rows, err := r.queries.ListIssuesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list issues for user", err)
	}
	return toIssueViews(rows), nil
}

var _ queries.IssueReadStore = (*IssueReadStore)(nil)
