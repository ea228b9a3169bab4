package commands

import (
	"time"

	"library-admin/internal/domain/issue"

	"github.com/google/uuid"
)

// Write-side results keep handlers independent of the read-side view types.

type IssueResult struct {
	IssueID        uuid.UUID
	BookID         uuid.UUID
	BookTitle      string
	UserID         uuid.UUID
	Username       string
	IssueDate      time.Time
	ReturnDate     time.Time
	IsRenewed      bool
	RemainingStock int
}

func newIssueResult(i *issue.Issue, remaining int) *IssueResult {
	b, u := i.Book(), i.User()
	return &IssueResult{
		IssueID:        i.ID(),
		BookID:         b.ID,
		BookTitle:      b.Title,
		UserID:         u.ID,
		Username:       u.Username,
		IssueDate:      i.IssueDate(),
		ReturnDate:     i.ReturnDate(),
		IsRenewed:      i.IsRenewed(),
		RemainingStock: remaining,
	}
}

type BookResult struct {
	BookID uuid.UUID
}

// UserResult carries the generated password once; it is never stored in clear.
type UserResult struct {
	UserID          uuid.UUID
	Username        string
	InitialPassword string
}

type FlagResult struct {
	UserID  uuid.UUID
	Flagged bool
}

type DeleteUserResult struct {
	IssuesClosed      int64
	ActivitiesRemoved int64
}
