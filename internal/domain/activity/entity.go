package activity

import (
	"errors"
	"time"

	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid activity category")
	ErrMissingBookRef  = errors.New("lifecycle activity requires a book reference")
	ErrMissingTimeRef  = errors.New("lifecycle activity requires issue dates")
	ErrMissingUser     = errors.New("activity requires a user")
)

type Category string

const (
	CategoryIssue  Category = "Issue"
	CategoryRenew  Category = "Renew"
	CategoryReturn Category = "Return"
	CategoryFlag   Category = "Flag"
	CategoryUnflag Category = "Unflag"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryIssue, CategoryRenew, CategoryReturn, CategoryFlag, CategoryUnflag:
		return true
	default:
		return false
	}
}

// IsLifecycle reports whether the category belongs to a loan.
func (c Category) IsLifecycle() bool {
	return c == CategoryIssue || c == CategoryRenew || c == CategoryReturn
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type BookRef struct {
	ID    uuid.UUID
	Title string
}

type TimeRef struct {
	IssueID    uuid.UUID
	IssueDate  time.Time
	ReturnDate time.Time
}

type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	FullName string
}

// Activity is an immutable audit entry.
type Activity struct {
	id        uuid.UUID
	category  Category
	book      *BookRef
	time      *TimeRef
	user      UserSnapshot
	entryTime time.Time
}

func Record(category Category, book *BookRef, t *TimeRef, user UserSnapshot, entryTime time.Time) (*Activity, error) {
	if !category.IsValid() {
		return nil, errs.Mark(ErrInvalidCategory, errs.ErrDomainValidation)
	}
	if user.ID == uuid.Nil {
		return nil, errs.Mark(ErrMissingUser, errs.ErrDomainValidation)
	}
	if category.IsLifecycle() {
		if book == nil {
			return nil, errs.Mark(ErrMissingBookRef, errs.ErrDomainValidation)
		}
		if t == nil {
			return nil, errs.Mark(ErrMissingTimeRef, errs.ErrDomainValidation)
		}
	}
	return &Activity{
		id:        uuid.New(),
		category:  category,
		book:      cloneBook(book),
		time:      cloneTime(t),
		user:      user,
		entryTime: entryTime,
	}, nil
}

func Reconstruct(id uuid.UUID, category Category, book *BookRef, t *TimeRef, user UserSnapshot, entryTime time.Time) *Activity {
	return &Activity{
		id:        id,
		category:  category,
		book:      cloneBook(book),
		time:      cloneTime(t),
		user:      user,
		entryTime: entryTime,
	}
}

func (a *Activity) ID() uuid.UUID        { return a.id }
func (a *Activity) Category() Category   { return a.category }
func (a *Activity) Book() *BookRef       { return cloneBook(a.book) }
func (a *Activity) Time() *TimeRef       { return cloneTime(a.time) }
func (a *Activity) User() UserSnapshot   { return a.user }
func (a *Activity) EntryTime() time.Time { return a.entryTime }

func cloneBook(b *BookRef) *BookRef {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func cloneTime(t *TimeRef) *TimeRef {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
