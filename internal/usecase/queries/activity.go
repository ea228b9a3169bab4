package queries

import (
	"context"

	"library-admin/internal/domain/activity"
	"library-admin/internal/infra"
	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

// ActivityStoreFilter is the resolved form of ActivityFilter.
type ActivityStoreFilter struct {
	UserID   *uuid.UUID
	Category *string
	// Search matches the username snapshot or the category, either one.
	Search *string
}

type ActivityReadStore interface {
	// List returns entries newest first, ties broken by id descending.
	List(ctx context.Context, filter ActivityStoreFilter, limit, offset int) ([]*ActivityView, error)
	Count(ctx context.Context, filter ActivityStoreFilter) (int64, error)
	ListAfter(ctx context.Context, filter ActivityStoreFilter, after *FeedPosition, limit int) ([]*ActivityView, error)
}

type ActivityQueries interface {
	List(ctx context.Context, filter ActivityFilter, page, pageSize int) (*ActivityPage, error)
	Feed(ctx context.Context, filter ActivityFilter, cursor *Cursor, limit int) ([]*ActivityView, *Cursor, error)
}

type activityQueriesImpl struct {
	store    ActivityReadStore
	users    UserReadStore
	pageSize int
}

func NewActivityQueries(store ActivityReadStore, users UserReadStore, pageSize int) ActivityQueries {
	return &activityQueriesImpl{store: store, users: users, pageSize: pageSize}
}

func (q *activityQueriesImpl) List(ctx context.Context, filter ActivityFilter, page, pageSize int) (*ActivityPage, error) {
	p := NewPagination(page, pageSize, q.pageSize)
	sf, err := q.resolve(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := q.store.Count(ctx, sf)
	if err != nil {
		return nil, err
	}
	items, err := q.store.List(ctx, sf, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return &ActivityPage{Items: items, Page: p.Info(total)}, nil
}

func (q *activityQueriesImpl) Feed(ctx context.Context, filter ActivityFilter, cursor *Cursor, limit int) ([]*ActivityView, *Cursor, error) {
	limit = ValidateLimit(limit)
	sf, err := q.resolve(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var after *FeedPosition
	if cursor != nil && cursor.After != "" {
		pos, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		after = &pos
	}

	rows, err := q.store.ListAfter(ctx, sf, after, limit+1)
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.EntryTime, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// resolve looks the username up in the directory so that a renamed user is
// found by the new name only.
func (q *activityQueriesImpl) resolve(ctx context.Context, filter ActivityFilter) (ActivityStoreFilter, error) {
	sf := ActivityStoreFilter{UserID: filter.UserID}

	if filter.Category != nil && *filter.Category != "" {
		c, err := activity.ParseCategory(*filter.Category)
		if err != nil {
			return sf, errs.Mark(err, errs.ErrDomainValidation)
		}
		s := c.String()
		sf.Category = &s
	}

	if filter.Username != nil && *filter.Username != "" {
		id, err := q.users.FindIDByUsername(ctx, *filter.Username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return sf, errs.ErrUserNotFound
			}
			return sf, err
		}
		if sf.UserID != nil && *sf.UserID != id {
			return sf, errs.ErrUserNotFound
		}
		sf.UserID = &id
	}
	return sf, nil
}
