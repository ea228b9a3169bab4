package issue

import (
	"time"

	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

// RenewalPeriod is added to the return date on every renewal. There is no
// cap on the number of renewals.
const RenewalPeriod = 7 * 24 * time.Hour

var ErrInvalidLoanPeriod = errs.New("loan period must be at least one day")

// BookInfo is the copy of book fields kept on an open issue.
type BookInfo struct {
	ID       uuid.UUID
	Title    string
	Author   string
	ISBN     string
	Category string
	Stock    int
}

// UserInfo is the copy of member identity kept on an open issue.
type UserInfo struct {
	ID       uuid.UUID
	Username string
	FullName string
}

type Issue struct {
	id         uuid.UUID
	book       BookInfo
	user       UserInfo
	issueDate  time.Time
	returnDate time.Time
	isRenewed  bool
}

func NewIssue(book BookInfo, user UserInfo, issueDate time.Time, loanPeriodDays int) (*Issue, error) {
	if loanPeriodDays <= 0 {
		return nil, errs.Mark(ErrInvalidLoanPeriod, errs.ErrDomainValidation)
	}
	return &Issue{
		id:         uuid.New(),
		book:       book,
		user:       user,
		issueDate:  issueDate,
		returnDate: issueDate.Add(time.Duration(loanPeriodDays) * 24 * time.Hour),
	}, nil
}

func ReconstructIssue(id uuid.UUID, book BookInfo, user UserInfo, issueDate, returnDate time.Time, isRenewed bool) *Issue {
	return &Issue{
		id:         id,
		book:       book,
		user:       user,
		issueDate:  issueDate,
		returnDate: returnDate,
		isRenewed:  isRenewed,
	}
}

func (i *Issue) ID() uuid.UUID         { return i.id }
func (i *Issue) Book() BookInfo        { return i.book }
func (i *Issue) User() UserInfo        { return i.user }
func (i *Issue) IssueDate() time.Time  { return i.issueDate }
func (i *Issue) ReturnDate() time.Time { return i.returnDate }
func (i *Issue) IsRenewed() bool       { return i.isRenewed }

func (i *Issue) Renew() {
	i.returnDate = i.returnDate.Add(RenewalPeriod)
	i.isRenewed = true
}

func (i *Issue) IsOverdue(now time.Time) bool {
	return now.After(i.returnDate)
}

// ApplyUserInfo refreshes the user copy; the id must match.
func (i *Issue) ApplyUserInfo(u UserInfo) {
	if u.ID == i.user.ID {
		i.user = u
	}
}

// ApplyBookInfo refreshes the book copy; the id must match.
func (i *Issue) ApplyBookInfo(b BookInfo) {
	if b.ID == i.book.ID {
		i.book = b
	}
}
