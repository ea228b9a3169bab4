package readstore

import (
	"context"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const activitiesTable = "activities"

var activityColumns = []any{
	"id", "category", "book_id", "book_title", "issue_id", "issue_date", "return_date",
	"user_id", "user_username", "user_full_name", "entry_time",
}

// ActivityReadStore builds its listings with goqu since every filter is optional.
type ActivityReadStore struct {
	db sqlc.DBTX
}

func NewActivityReadStore(db sqlc.DBTX) *ActivityReadStore {
	return &ActivityReadStore{db: db}
}

func (r *ActivityReadStore) List(ctx context.Context, filter queries.ActivityStoreFilter, limit, offset int) ([]*queries.ActivityView, error) {
	ds := activityListQuery(filter).
		Limit(uint(limit)).
		Offset(uint(offset))
	return r.fetch(ctx, ds)
}

func (r *ActivityReadStore) Count(ctx context.Context, filter queries.ActivityStoreFilter) (int64, error) {
	return countRows(ctx, r.db, activitiesTable, activityConditions(filter)...)
}

func (r *ActivityReadStore) ListAfter(ctx context.Context, filter queries.ActivityStoreFilter, after *queries.FeedPosition, limit int) ([]*queries.ActivityView, error) {
	ds := activityListQuery(filter)
	if after != nil {
		ds = ds.Where(afterCondition(*after))
	}
	return r.fetch(ctx, ds.Limit(uint(limit)))
}

// afterCondition selects entries strictly older than pos in (entry_time, id) order.
func afterCondition(pos queries.FeedPosition) exp.Expression {
	return goqu.Or(
		goqu.C("entry_time").Lt(pos.EntryTime),
		goqu.And(
			goqu.C("entry_time").Eq(pos.EntryTime),
			goqu.C("id").Lt(pos.ID),
		),
	)
}

func activityConditions(filter queries.ActivityStoreFilter) []exp.Expression {
	var where []exp.Expression
	if filter.UserID != nil {
		where = append(where, goqu.C("user_id").Eq(*filter.UserID))
	}
	if filter.Category != nil {
		where = append(where, goqu.C("category").Eq(*filter.Category))
	}
	if filter.Search != nil {
		where = append(where, goqu.Or(
			goqu.C("user_username").Eq(*filter.Search),
			goqu.C("category").Eq(*filter.Search),
		))
	}
	return where
}

func activityListQuery(filter queries.ActivityStoreFilter) *goqu.SelectDataset {
	ds := pg.From(activitiesTable).Select(activityColumns...)
	if where := activityConditions(filter); len(where) > 0 {
		ds = ds.Where(where...)
	}
	return ds.Order(goqu.C("entry_time").Desc(), goqu.C("id").Desc())
}

func (r *ActivityReadStore) fetch(ctx context.Context, ds *goqu.SelectDataset) ([]*queries.ActivityView, error) {
	query, args, err := toSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activities", err)
	}
	defer rows.Close()

	items := []*queries.ActivityView{}
	for rows.Next() {
		var a sqlc.Activities
		if err := rows.Scan(
			&a.ID,
			&a.Category,
			&a.BookID,
			&a.BookTitle,
			&a.IssueID,
			&a.IssueDate,
			&a.ReturnDate,
			&a.UserID,
			&a.UserUsername,
			&a.UserFullName,
			&a.EntryTime,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity", err)
		}
		items = append(items, toActivityView(a))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate activities", err)
	}
	return items, nil
}

var _ queries.ActivityReadStore = (*ActivityReadStore)(nil)
