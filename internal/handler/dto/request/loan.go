package request

import (
	"github.com/google/uuid"
)

type IssueBookRequest struct {
	Username string `json:"username" binding:"required"`
	ISBN     string `json:"isbn" binding:"required"`
}

// LoanRequest addresses an open issue by member and book.
type LoanRequest struct {
	Username string    `json:"username" binding:"required"`
	BookID   uuid.UUID `json:"bookId" binding:"required"`
}

type OpenIssuesQuery struct {
	Username string `form:"username"`
}
