package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type IssueReadStore interface {
	// ListOpen orders by return date so the most urgent loans come first.
	ListOpen(ctx context.Context) ([]*IssueView, error)
	ListOpenByUsername(ctx context.Context, username string) ([]*IssueView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*IssueView, error)
}

type IssueQueries interface {
	OpenIssues(ctx context.Context, username string) ([]*IssueView, error)
}

type issueQueriesImpl struct {
	store IssueReadStore
}

func NewIssueQueries(store IssueReadStore) IssueQueries {
	return &issueQueriesImpl{store: store}
}

// OpenIssues lists every open loan, or only those of username when given.
func (q *issueQueriesImpl) OpenIssues(ctx context.Context, username string) ([]*IssueView, error) {
	if username = strings.TrimSpace(username); username != "" {
		return q.store.ListOpenByUsername(ctx, username)
	}
	return q.store.ListOpen(ctx)
}
