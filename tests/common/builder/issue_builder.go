//go:build unit || e2e

package builder

import (
	"time"

	"library-admin/internal/domain/issue"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssueBuilder struct {
	Book      issue.BookInfo
	User      issue.UserInfo
	IssueDate time.Time
	LoanDays  int
	Renewed   bool
}

func NewIssueBuilder() *IssueBuilder {
	return &IssueBuilder{
		Book: issue.BookInfo{
			ID:       uuid.New(),
			Title:    "The Go Programming Language",
			Author:   "Alan Donovan",
			ISBN:     "9780134190440",
			Category: "Programming",
			Stock:    2,
		},
		User: issue.UserInfo{
			ID:       uuid.New(),
			Username: "9876543210",
			FullName: "Priya Sharma",
		},
		IssueDate: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		LoanDays:  7,
	}
}

func (b *IssueBuilder) With(mutate func(*IssueBuilder)) *IssueBuilder {
	mutate(b)
	return b
}

func (b *IssueBuilder) returnDate() time.Time {
	d := b.IssueDate.AddDate(0, 0, b.LoanDays)
	if b.Renewed {
		d = d.Add(issue.RenewalPeriod)
	}
	return d
}

func (b *IssueBuilder) BuildDomain() *issue.Issue {
	return issue.ReconstructIssue(uuid.New(), b.Book, b.User, b.IssueDate, b.returnDate(), b.Renewed)
}

func (b *IssueBuilder) BuildInfra() sqlc.Issues {
	return sqlc.Issues{
		ID:           uuid.New(),
		BookID:       b.Book.ID,
		BookTitle:    b.Book.Title,
		BookAuthor:   b.Book.Author,
		BookIsbn:     b.Book.ISBN,
		BookCategory: b.Book.Category,
		BookStock:    int32(b.Book.Stock),
		UserID:       b.User.ID,
		UserUsername: b.User.Username,
		UserFullName: b.User.FullName,
		IssueDate:    b.IssueDate,
		ReturnDate:   b.returnDate(),
		IsRenewed:    b.Renewed,
	}
}

func (b *IssueBuilder) BuildView() *queries.IssueView {
	return &queries.IssueView{
		ID:           uuid.New(),
		BookID:       b.Book.ID,
		BookTitle:    b.Book.Title,
		BookAuthor:   b.Book.Author,
		BookISBN:     b.Book.ISBN,
		BookCategory: b.Book.Category,
		BookStock:    b.Book.Stock,
		UserID:       b.User.ID,
		Username:     b.User.Username,
		UserFullName: b.User.FullName,
		IssueDate:    b.IssueDate,
		ReturnDate:   b.returnDate(),
		IsRenewed:    b.Renewed,
	}
}

func (b *IssueBuilder) BuildResult() *commands.IssueResult {
	return &commands.IssueResult{
		IssueID:        uuid.New(),
		BookID:         b.Book.ID,
		BookTitle:      b.Book.Title,
		UserID:         b.User.ID,
		Username:       b.User.Username,
		IssueDate:      b.IssueDate,
		ReturnDate:     b.returnDate(),
		IsRenewed:      b.Renewed,
		RemainingStock: b.Book.Stock,
	}
}

func (b *IssueBuilder) AsRenewed() *IssueBuilder {
	b.Renewed = true
	return b
}
