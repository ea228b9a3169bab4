package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserView struct {
	ID            uuid.UUID   `json:"id"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Gender        string      `json:"gender"`
	Address       string      `json:"address"`
	ViolationFlag bool        `json:"violation_flag"`
	IssuedBookIDs []uuid.UUID `json:"issued_book_ids"`
	JoinedAt      time.Time   `json:"joined_at"`
}

type IssueView struct {
	ID           uuid.UUID `json:"id"`
	BookID       uuid.UUID `json:"book_id"`
	BookTitle    string    `json:"book_title"`
	BookAuthor   string    `json:"book_author"`
	BookISBN     string    `json:"book_isbn"`
	BookCategory string    `json:"book_category"`
	BookStock    int       `json:"book_stock"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	UserFullName string    `json:"user_full_name"`
	IssueDate    time.Time `json:"issue_date"`
	ReturnDate   time.Time `json:"return_date"`
	IsRenewed    bool      `json:"is_renewed"`
}

// ActivityView is an audit entry; book and date fields are empty for
// administrative categories.
type ActivityView struct {
	ID           uuid.UUID  `json:"id"`
	Category     string     `json:"category"`
	BookID       *uuid.UUID `json:"book_id,omitempty"`
	BookTitle    *string    `json:"book_title,omitempty"`
	IssueID      *uuid.UUID `json:"issue_id,omitempty"`
	IssueDate    *time.Time `json:"issue_date,omitempty"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	UserID       uuid.UUID  `json:"user_id"`
	Username     string     `json:"username"`
	UserFullName string     `json:"user_full_name"`
	EntryTime    time.Time  `json:"entry_time"`
}

type DashboardView struct {
	Members    int64           `json:"members"`
	Books      int64           `json:"books"`
	Activities int64           `json:"activities"`
	Page       PageInfo        `json:"page"`
	Recent     []*ActivityView `json:"recent"`
}

type UserProfileView struct {
	User       *UserView       `json:"user"`
	Issues     []*IssueView    `json:"issues"`
	Activities []*ActivityView `json:"activities"`
}

type ActivityPage struct {
	Items []*ActivityView `json:"items"`
	Page  PageInfo        `json:"page"`
}

type BookPage struct {
	Items []*BookView `json:"items"`
	Page  PageInfo    `json:"page"`
}

type UserPage struct {
	Items []*UserView `json:"items"`
	Page  PageInfo    `json:"page"`
}

// ActivityFilter fields combine with AND. Username is resolved to a user id
// before the store is queried.
type ActivityFilter struct {
	UserID   *uuid.UUID
	Username *string
	Category *string
}

// InventoryFilter matches Value against Field; Field "all" lists everything.
type InventoryFilter struct {
	Field string
	Value string
}

const (
	InventoryFieldAll      = "all"
	InventoryFieldTitle    = "title"
	InventoryFieldAuthor   = "author"
	InventoryFieldISBN     = "isbn"
	InventoryFieldCategory = "category"
)

func (f InventoryFilter) IsAll() bool {
	return f.Field == "" || f.Field == InventoryFieldAll
}
