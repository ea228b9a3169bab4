package queries

import (
	"context"
	"strings"

	"library-admin/internal/infra"
	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	profileActivityLimit = 50
	maxSearchResults     = 100
)

type UserQueries interface {
	List(ctx context.Context, page int) (*UserPage, error)
	Search(ctx context.Context, value string) ([]*UserView, error)
	Profile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindIDByUsername(ctx context.Context, username string) (uuid.UUID, error)
	List(ctx context.Context, limit, offset int) ([]*UserView, error)
	Count(ctx context.Context) (int64, error)
	// Search matches first name, last name, username or email, case-insensitively.
	Search(ctx context.Context, value string, limit int) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore  UserReadStore
	issues     IssueReadStore
	activities ActivityReadStore
	pageSize   int
}

func NewUserQueries(readStore UserReadStore, issues IssueReadStore, activities ActivityReadStore, pageSize int) UserQueries {
	return &userQueriesImpl{
		readStore:  readStore,
		issues:     issues,
		activities: activities,
		pageSize:   pageSize,
	}
}

func (q *userQueriesImpl) List(ctx context.Context, page int) (*UserPage, error) {
	p := NewPagination(page, q.pageSize, DefaultPageSize)
	total, err := q.readStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := q.readStore.List(ctx, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return &UserPage{Items: items, Page: p.Info(total)}, nil
}

func (q *userQueriesImpl) Search(ctx context.Context, value string) ([]*UserView, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return []*UserView{}, nil
	}
	return q.readStore.Search(ctx, value, maxSearchResults)
}

func (q *userQueriesImpl) Profile(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	issues, err := q.issues.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := q.activities.List(ctx, ActivityStoreFilter{UserID: &userID}, profileActivityLimit, 0)
	if err != nil {
		return nil, err
	}
	return &UserProfileView{User: u, Issues: issues, Activities: activities}, nil
}
