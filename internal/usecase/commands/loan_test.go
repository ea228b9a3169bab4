//go:build unit

package commands_test

import (
	"fmt"
	"time"

	"library-admin/internal/domain/activity"
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/user"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *commandSuite) TestIssueBook_Success() {
	bookID := s.addBook("978-0-441-17271-9", 3)
	userID := s.addUser("Alice", "9000000001")

	res, err := s.loans.IssueBook(s.ctx, " 9000000001 ", "9780441172719")
	s.Require().NoError(err)

	s.Equal(bookID, res.BookID)
	s.Equal(userID, res.UserID)
	s.Equal(2, res.RemainingStock)
	s.False(res.IsRenewed)
	s.Equal(7*24*time.Hour, res.ReturnDate.Sub(res.IssueDate))

	s.Equal(2, s.book(bookID).Stock)
	s.Equal([]uuid.UUID{bookID}, s.user(userID).IssuedBookIDs)

	issues := s.openIssues(userID)
	s.Require().Len(issues, 1)
	s.Equal(2, issues[0].BookStock)
	s.Equal("Alice Tester", issues[0].UserFullName)

	acts := s.activities(userID)
	s.Require().Len(acts, 1)
	s.Equal(activity.CategoryIssue.String(), acts[0].Category)
	s.Require().NotNil(acts[0].IssueID)
	s.Equal(res.IssueID, *acts[0].IssueID)
}

func (s *commandSuite) TestIssueBook_OutOfStockLeavesStockUnchanged() {
	bookID := s.addBook("9780441172719", 0)
	userID := s.addUser("Alice", "9000000001")

	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.True(errs.Is(err, book.ErrOutOfStock))

	s.Equal(0, s.book(bookID).Stock)
	s.Empty(s.user(userID).IssuedBookIDs)
	s.Empty(s.openIssues(userID))
	s.Empty(s.activities(userID))
}

func (s *commandSuite) TestIssueBook_SixthIssueExceedsLimit() {
	userID := s.addUser("Alice", "9000000001")
	for i := range user.MaxIssuedBooks {
		isbn := fmt.Sprintf("978000000000%d", i)
		s.addBook(isbn, 1)
		_, err := s.loans.IssueBook(s.ctx, "9000000001", isbn)
		s.Require().NoError(err)
	}
	sixth := s.addBook("9780000000099", 1)

	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780000000099")
	s.True(errs.Is(err, user.ErrIssueLimitExceeded))

	s.Len(s.user(userID).IssuedBookIDs, user.MaxIssuedBooks)
	s.Equal(1, s.book(sixth).Stock)
}

func (s *commandSuite) TestIssueBook_FlaggedUserCausesNoMutation() {
	bookID := s.addBook("9780441172719", 2)
	userID := s.addUser("Alice", "9000000001")
	_, err := s.users.SetFlag(s.ctx, userID, true)
	s.Require().NoError(err)

	_, err = s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.True(errs.Is(err, user.ErrUserFlagged))

	s.Equal(2, s.book(bookID).Stock)
	s.Empty(s.openIssues(userID))
	acts := s.activities(userID)
	s.Require().Len(acts, 1)
	s.Equal(activity.CategoryFlag.String(), acts[0].Category)
}

func (s *commandSuite) TestIssueBook_Duplicate() {
	bookID := s.addBook("9780441172719", 2)
	s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	_, err = s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.True(errs.Is(err, errs.ErrDuplicateIssue))
	s.Equal(1, s.book(bookID).Stock)
}

func (s *commandSuite) TestIssueBook_NotFound() {
	s.addBook("9780441172719", 1)
	s.addUser("Alice", "9000000001")

	_, err := s.loans.IssueBook(s.ctx, "9000000002", "9780441172719")
	s.True(errs.Is(err, errs.ErrUserNotFound))

	_, err = s.loans.IssueBook(s.ctx, "9000000001", "9780000000000")
	s.True(errs.Is(err, errs.ErrBookNotFound))

	_, err = s.loans.IssueBook(s.ctx, "9000000001", "not-an-isbn")
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *commandSuite) TestRenewBook_TwiceAddsFourteenDays() {
	bookID := s.addBook("9780441172719", 1)
	userID := s.addUser("Alice", "9000000001")
	issued, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	_, err = s.loans.RenewBook(s.ctx, "9000000001", bookID)
	s.Require().NoError(err)
	renewed, err := s.loans.RenewBook(s.ctx, "9000000001", bookID)
	s.Require().NoError(err)

	s.Equal(14*24*time.Hour, renewed.ReturnDate.Sub(issued.ReturnDate))
	s.True(renewed.IsRenewed)
	s.Equal(issued.IssueDate, renewed.IssueDate)

	acts := s.activities(userID)
	s.Require().Len(acts, 3)
	// newest first
	s.Equal(activity.CategoryRenew.String(), acts[0].Category)
	s.Require().NotNil(acts[0].ReturnDate)
	s.True(renewed.ReturnDate.Equal(*acts[0].ReturnDate))
}

func (s *commandSuite) TestRenewBook_NoIssue() {
	bookID := s.addBook("9780441172719", 1)
	s.addUser("Alice", "9000000001")

	_, err := s.loans.RenewBook(s.ctx, "9000000001", bookID)
	s.True(errs.Is(err, errs.ErrIssueNotFound))

	_, err = s.loans.RenewBook(s.ctx, "9000000009", bookID)
	s.True(errs.Is(err, errs.ErrIssueNotFound))
}

func (s *commandSuite) TestReturnBook_RestoresState() {
	bookID := s.addBook("9780441172719", 2)
	userID := s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	s.Require().NoError(s.loans.ReturnBook(s.ctx, "9000000001", bookID))

	s.Equal(2, s.book(bookID).Stock)
	s.Empty(s.openIssues(userID))
	s.Empty(s.user(userID).IssuedBookIDs)

	acts := s.activities(userID)
	s.Require().Len(acts, 2)
	s.Equal(activity.CategoryReturn.String(), acts[0].Category)
}

func (s *commandSuite) TestReturnBook_NotHeld() {
	bookID := s.addBook("9780441172719", 1)
	s.addUser("Alice", "9000000001")

	err := s.loans.ReturnBook(s.ctx, "9000000001", bookID)
	s.True(errs.Is(err, errs.ErrIssueNotFound))

	err = s.loans.ReturnBook(s.ctx, "9000000009", bookID)
	s.True(errs.Is(err, errs.ErrUserNotFound))
	s.Equal(1, s.book(bookID).Stock)
}

func (s *commandSuite) TestScenario_LastCopyChangesHands() {
	bookID := s.addBook("9780441172719", 1)
	userA := s.addUser("Alice", "9000000001")
	userB := s.addUser("Bob", "9000000002")

	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)
	s.Equal(0, s.book(bookID).Stock)

	_, err = s.loans.IssueBook(s.ctx, "9000000002", "9780441172719")
	s.True(errs.Is(err, book.ErrOutOfStock))

	s.Require().NoError(s.loans.ReturnBook(s.ctx, "9000000001", bookID))
	s.Equal(1, s.book(bookID).Stock)
	s.NotContains(s.user(userA).IssuedBookIDs, bookID)

	res, err := s.loans.IssueBook(s.ctx, "9000000002", "9780441172719")
	s.Require().NoError(err)
	s.Equal(userB, res.UserID)
	s.Equal(0, res.RemainingStock)
}

func (s *commandSuite) TestScenario_UsernameChangeMovesLookups() {
	bookID := s.addBook("9780441172719", 1)
	userID := s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	renamed := "9000000002"
	_, err = s.users.UpdateUser(s.ctx, userID, commands.UpdateUserInput{Username: &renamed})
	s.Require().NoError(err)

	issues := s.openIssues(userID)
	s.Require().Len(issues, 1)
	s.Equal(renamed, issues[0].Username)

	aq := queries.NewActivityQueries(s.store.ActivityReads(), s.store.UserReads(), 10)
	page, err := aq.List(s.ctx, queries.ActivityFilter{Username: &renamed}, 1, 10)
	s.Require().NoError(err)
	s.Len(page.Items, 1)

	old := "9000000001"
	_, err = aq.List(s.ctx, queries.ActivityFilter{Username: &old}, 1, 10)
	s.True(errs.Is(err, errs.ErrUserNotFound))

	_, err = s.loans.RenewBook(s.ctx, renamed, bookID)
	s.NoError(err)
	_, err = s.loans.RenewBook(s.ctx, old, bookID)
	s.True(errs.Is(err, errs.ErrIssueNotFound))
	s.True(errs.Is(s.loans.ReturnBook(s.ctx, old, bookID), errs.ErrUserNotFound))
	s.NoError(s.loans.ReturnBook(s.ctx, renamed, bookID))
}
