package request

import (
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

// DashboardQuery carries the dashboard's single search box.
type DashboardQuery struct {
	PageQuery
	Search string `form:"search"`
}

type ActivityQuery struct {
	UserID   string `form:"userId"`
	Username string `form:"username"`
	Category string `form:"category"`
	Page     *int   `form:"page" binding:"omitempty,min=1"`
	PageSize *int   `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

func (q ActivityQuery) PageNumber() int { return deref(q.Page) }

// Size returns 0 when pageSize is absent so the configured default applies.
func (q ActivityQuery) Size() int { return deref(q.PageSize) }

func (q ActivityQuery) ToFilter() (queries.ActivityFilter, error) {
	var f queries.ActivityFilter
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return f, err
		}
		f.UserID = &id
	}
	if q.Username != "" {
		f.Username = &q.Username
	}
	if q.Category != "" {
		f.Category = &q.Category
	}
	return f, nil
}

type ActivityFeedQuery struct {
	ActivityQuery
	Limit int    `form:"limit"`
	After string `form:"after"`
}

func (q ActivityFeedQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
