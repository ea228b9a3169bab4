//go:build unit || e2e

package builder

import (
	"time"

	"library-admin/internal/domain/activity"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityBuilder struct {
	Category  activity.Category
	Book      *activity.BookRef
	Time      *activity.TimeRef
	User      activity.UserSnapshot
	EntryTime time.Time
}

// NewActivityBuilder starts from an Issue entry.
func NewActivityBuilder() *ActivityBuilder {
	issued := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return &ActivityBuilder{
		Category: activity.CategoryIssue,
		Book:     &activity.BookRef{ID: uuid.New(), Title: "The Go Programming Language"},
		Time: &activity.TimeRef{
			IssueID:    uuid.New(),
			IssueDate:  issued,
			ReturnDate: issued.AddDate(0, 0, 7),
		},
		User:      activity.UserSnapshot{ID: uuid.New(), Username: "9876543210", FullName: "Priya Sharma"},
		EntryTime: issued,
	}
}

func (b *ActivityBuilder) With(mutate func(*ActivityBuilder)) *ActivityBuilder {
	mutate(b)
	return b
}

// AsAdministrative turns the entry into a Flag or Unflag record.
func (b *ActivityBuilder) AsAdministrative(c activity.Category) *ActivityBuilder {
	b.Category = c
	b.Book = nil
	b.Time = nil
	return b
}

func (b *ActivityBuilder) BuildDomain() (*activity.Activity, error) {
	return activity.Record(b.Category, b.Book, b.Time, b.User, b.EntryTime)
}

func (b *ActivityBuilder) BuildView() *queries.ActivityView {
	v := &queries.ActivityView{
		ID:           uuid.New(),
		Category:     b.Category.String(),
		UserID:       b.User.ID,
		Username:     b.User.Username,
		UserFullName: b.User.FullName,
		EntryTime:    b.EntryTime,
	}
	if b.Book != nil {
		id, title := b.Book.ID, b.Book.Title
		v.BookID, v.BookTitle = &id, &title
	}
	if b.Time != nil {
		iid, from, to := b.Time.IssueID, b.Time.IssueDate, b.Time.ReturnDate
		v.IssueID, v.IssueDate, v.ReturnDate = &iid, &from, &to
	}
	return v
}
