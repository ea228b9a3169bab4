package readstore

import (
	"context"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"
)

type DashboardReadQueries interface {
	CountMembers(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountBooks(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountActivities(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type DashboardReadStore struct {
	queries DashboardReadQueries
	db      sqlc.DBTX
}

func NewDashboardReadStore(queries DashboardReadQueries, db sqlc.DBTX) *DashboardReadStore {
	return &DashboardReadStore{
		queries: queries,
		db:      db,
	}
}

// CountMembers excludes administrator accounts.
func (r *DashboardReadStore) CountMembers(ctx context.Context) (int64, error) {
	n, err := r.queries.CountMembers(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count members", err)
	}
	return n, nil
}

func (r *DashboardReadStore) CountBooks(ctx context.Context) (int64, error) {
	n, err := r.queries.CountBooks(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count books", err)
	}
	return n, nil
}

func (r *DashboardReadStore) CountActivities(ctx context.Context) (int64, error) {
	n, err := r.queries.CountActivities(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count activities", err)
	}
	return n, nil
}

var _ queries.DashboardReadStore = (*DashboardReadStore)(nil)
