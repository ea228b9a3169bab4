package response

import (
	"time"

	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssueResponse struct {
	ID           uuid.UUID `json:"id"`
	BookID       uuid.UUID `json:"bookId"`
	BookTitle    string    `json:"bookTitle"`
	BookAuthor   string    `json:"bookAuthor"`
	BookISBN     string    `json:"bookIsbn"`
	BookCategory string    `json:"bookCategory"`
	BookStock    int       `json:"bookStock"`
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	UserFullName string    `json:"userFullName"`
	IssueDate    time.Time `json:"issueDate"`
	ReturnDate   time.Time `json:"returnDate"`
	IsRenewed    bool      `json:"isRenewed"`
}

// LoanResponse is returned by issue and renew.
type LoanResponse struct {
	IssueID        uuid.UUID `json:"issueId"`
	BookID         uuid.UUID `json:"bookId"`
	BookTitle      string    `json:"bookTitle"`
	UserID         uuid.UUID `json:"userId"`
	Username       string    `json:"username"`
	IssueDate      time.Time `json:"issueDate"`
	ReturnDate     time.Time `json:"returnDate"`
	IsRenewed      bool      `json:"isRenewed"`
	RemainingStock int       `json:"remainingStock"`
}

func FromIssueViews(vs []*queries.IssueView) []*IssueResponse {
	return copyList[IssueResponse](vs)
}

func FromIssueResult(r *commands.IssueResult) *LoanResponse {
	return copyInto[LoanResponse](r)
}
