package repository

import (
	"context"

	"library-admin/internal/domain/activity"
	"library-admin/internal/infra"
	"library-admin/internal/infra/repository/converter"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type ActivityWriteQueries interface {
	CreateActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityParams) error
	DeleteActivitiesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

// ActivityRepository only appends; entries are removed with their user.
type ActivityRepository struct {
	queries ActivityWriteQueries
	db      sqlc.DBTX
}

func NewActivityRepository(queries ActivityWriteQueries, db sqlc.DBTX) *ActivityRepository {
	return &ActivityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityRepository) Append(ctx context.Context, a *activity.Activity) error {
	if err := r.queries.CreateActivity(ctx, r.db, converter.ActivityToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to record activity", err)
	}
	return nil
}

func (r *ActivityRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteActivitiesByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete activities for user", err)
	}
	return n, nil
}

var _ shared.ActivityRepository = (*ActivityRepository)(nil)
