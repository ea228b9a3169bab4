//go:build unit

package issue_test

import (
	"testing"
	"time"

	"library-admin/internal/domain/issue"
	"library-admin/internal/pkg/errs"
	"library-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssue(t *testing.T) {
	b := builder.NewIssueBuilder()

	i, err := issue.NewIssue(b.Book, b.User, b.IssueDate, 7)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, i.ID())
	assert.Equal(t, b.IssueDate.AddDate(0, 0, 7), i.ReturnDate())
	assert.False(t, i.IsRenewed())
	assert.Equal(t, b.Book, i.Book())
	assert.Equal(t, b.User, i.User())
}

func TestNewIssue_InvalidLoanPeriod(t *testing.T) {
	b := builder.NewIssueBuilder()
	for _, days := range []int{0, -1} {
		_, err := issue.NewIssue(b.Book, b.User, b.IssueDate, days)
		assert.ErrorIs(t, err, issue.ErrInvalidLoanPeriod)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	}
}

func TestIssue_RenewIsUncapped(t *testing.T) {
	i := builder.NewIssueBuilder().BuildDomain()
	due := i.ReturnDate()

	for n := 1; n <= 3; n++ {
		i.Renew()
		assert.Equal(t, due.Add(time.Duration(n)*issue.RenewalPeriod), i.ReturnDate())
		assert.True(t, i.IsRenewed())
	}
}

func TestIssue_IsOverdue(t *testing.T) {
	i := builder.NewIssueBuilder().BuildDomain()

	assert.False(t, i.IsOverdue(i.ReturnDate()))
	assert.True(t, i.IsOverdue(i.ReturnDate().Add(time.Second)))
}

func TestIssue_ApplySnapshots(t *testing.T) {
	i := builder.NewIssueBuilder().BuildDomain()

	renamed := i.User()
	renamed.FullName = "Priya Nair"
	i.ApplyUserInfo(renamed)
	assert.Equal(t, "Priya Nair", i.User().FullName)

	stranger := issue.UserInfo{ID: uuid.New(), Username: "0000000000", FullName: "Someone Else"}
	i.ApplyUserInfo(stranger)
	assert.Equal(t, renamed, i.User())

	retitled := i.Book()
	retitled.Title = "Go, Second Edition"
	i.ApplyBookInfo(retitled)
	assert.Equal(t, "Go, Second Edition", i.Book().Title)

	i.ApplyBookInfo(issue.BookInfo{ID: uuid.New(), Title: "Other"})
	assert.Equal(t, retitled, i.Book())
}
