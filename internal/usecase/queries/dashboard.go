package queries

import (
	"context"
	"strings"
)

type DashboardReadStore interface {
	CountMembers(ctx context.Context) (int64, error)
	CountBooks(ctx context.Context) (int64, error)
	CountActivities(ctx context.Context) (int64, error)
}

type DashboardQueries interface {
	// Get pages the activity log newest first. A non-blank search keeps the
	// entries whose username snapshot or category equals it.
	Get(ctx context.Context, search string, page int) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	counts     DashboardReadStore
	activities ActivityReadStore
	pageSize   int
}

func NewDashboardQueries(counts DashboardReadStore, activities ActivityReadStore, pageSize int) DashboardQueries {
	return &dashboardQueriesImpl{counts: counts, activities: activities, pageSize: pageSize}
}

func (q *dashboardQueriesImpl) Get(ctx context.Context, search string, page int) (*DashboardView, error) {
	p := NewPagination(page, q.pageSize, DefaultPageSize)

	members, err := q.counts.CountMembers(ctx)
	if err != nil {
		return nil, err
	}
	books, err := q.counts.CountBooks(ctx)
	if err != nil {
		return nil, err
	}
	total, err := q.counts.CountActivities(ctx)
	if err != nil {
		return nil, err
	}

	var filter ActivityStoreFilter
	matched := total
	if search = strings.TrimSpace(search); search != "" {
		filter.Search = &search
		if matched, err = q.activities.Count(ctx, filter); err != nil {
			return nil, err
		}
	}
	recent, err := q.activities.List(ctx, filter, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Members:    members,
		Books:      books,
		Activities: total,
		Page:       p.Info(matched),
		Recent:     recent,
	}, nil
}
