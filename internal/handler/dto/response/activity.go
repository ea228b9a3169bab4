package response

import (
	"time"

	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityResponse struct {
	ID           uuid.UUID  `json:"id"`
	Category     string     `json:"category"`
	BookID       *uuid.UUID `json:"bookId,omitempty"`
	BookTitle    *string    `json:"bookTitle,omitempty"`
	IssueID      *uuid.UUID `json:"issueId,omitempty"`
	IssueDate    *time.Time `json:"issueDate,omitempty"`
	ReturnDate   *time.Time `json:"returnDate,omitempty"`
	UserID       uuid.UUID  `json:"userId"`
	Username     string     `json:"username"`
	UserFullName string     `json:"userFullName"`
	EntryTime    time.Time  `json:"entryTime"`
}

type ActivityPageResponse struct {
	Activities []*ActivityResponse `json:"activities"`
	Page       PageResponse        `json:"page"`
}

type ActivityFeedResponse struct {
	Activities []*ActivityResponse `json:"activities"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

type DashboardResponse struct {
	Members    int64               `json:"members"`
	Books      int64               `json:"books"`
	Activities int64               `json:"activities"`
	Recent     []*ActivityResponse `json:"recent"`
	Page       PageResponse        `json:"page"`
}

func FromActivityViews(vs []*queries.ActivityView) []*ActivityResponse {
	return copyList[ActivityResponse](vs)
}

func FromActivityPage(p *queries.ActivityPage) *ActivityPageResponse {
	return &ActivityPageResponse{
		Activities: FromActivityViews(p.Items),
		Page:       PageResponse(p.Page),
	}
}

func FromActivityFeed(items []*queries.ActivityView, next *queries.Cursor) *ActivityFeedResponse {
	resp := &ActivityFeedResponse{Activities: FromActivityViews(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromDashboard(d *queries.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		Members:    d.Members,
		Books:      d.Books,
		Activities: d.Activities,
		Recent:     FromActivityViews(d.Recent),
		Page:       PageResponse(d.Page),
	}
}
