//go:build unit

package commands_test

import (
	"context"

	"library-admin/internal/domain/activity"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/password"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *commandSuite) TestAddUser_InitialPassword() {
	res, err := s.users.AddUser(s.ctx, commands.AddUserInput{
		FirstName: "Priya",
		LastName:  "Raman",
		Username:  "9876543210",
		Email:     "Priya@Example.com",
	})
	s.Require().NoError(err)
	s.Equal("pri3210", res.InitialPassword)
	s.Equal("9876543210", res.Username)

	var hash string
	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, res.UserID)
		if err != nil {
			return err
		}
		hash = u.PasswordHash()
		return nil
	})
	s.Require().NoError(err)
	s.NotEqual(res.InitialPassword, hash)
	s.NoError(password.ComparePassword(hash, "pri3210"))

	v := s.user(res.UserID)
	s.Equal("priya@example.com", v.Email)
	s.False(v.ViolationFlag)
}

func (s *commandSuite) TestAddUser_Rejections() {
	s.addUser("Alice", "9000000001")

	_, err := s.users.AddUser(s.ctx, commands.AddUserInput{
		FirstName: "Alina", LastName: "Other", Username: "9000000001", Email: "alina@example.com",
	})
	s.True(errs.Is(err, errs.ErrDuplicateUser))

	_, err = s.users.AddUser(s.ctx, commands.AddUserInput{
		FirstName: "Bob", LastName: "Other", Username: "12345", Email: "bob@example.com",
	})
	s.True(errs.Is(err, errs.ErrDomainValidation))

	_, err = s.users.AddUser(s.ctx, commands.AddUserInput{
		FirstName: "Bob", LastName: "Other", Username: "9000000003", Email: "not-an-email",
	})
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *commandSuite) TestUpdateUser_PropagatesFullName() {
	userID := s.addUser("Alice", "9000000001")
	s.addBook("9780441172719", 1)
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	last := "Walker"
	res, err := s.users.UpdateUser(s.ctx, userID, commands.UpdateUserInput{LastName: &last})
	s.Require().NoError(err)
	s.Equal("9000000001", res.Username)

	issues := s.openIssues(userID)
	s.Require().Len(issues, 1)
	s.Equal("Alice Walker", issues[0].UserFullName)
}

func (s *commandSuite) TestUpdateUser_Errors() {
	first := s.addUser("Alice", "9000000001")
	s.addUser("Bob", "9000000002")

	taken := "9000000002"
	_, err := s.users.UpdateUser(s.ctx, first, commands.UpdateUserInput{Username: &taken})
	s.True(errs.Is(err, errs.ErrDuplicateUser))

	_, err = s.users.UpdateUser(s.ctx, uuid.New(), commands.UpdateUserInput{})
	s.True(errs.Is(err, errs.ErrUserNotFound))

	s.Equal("9000000001", s.user(first).Username)
}

func (s *commandSuite) TestToggleFlag_RecordsActivities() {
	userID := s.addUser("Alice", "9000000001")

	res, err := s.users.ToggleFlag(s.ctx, userID)
	s.Require().NoError(err)
	s.True(res.Flagged)
	s.True(s.user(userID).ViolationFlag)

	res, err = s.users.ToggleFlag(s.ctx, userID)
	s.Require().NoError(err)
	s.False(res.Flagged)

	acts := s.activities(userID)
	s.Require().Len(acts, 2)
	s.Equal(activity.CategoryUnflag.String(), acts[0].Category)
	s.Equal(activity.CategoryFlag.String(), acts[1].Category)
	s.Nil(acts[0].BookID)
	s.Nil(acts[0].IssueDate)

	_, err = s.users.ToggleFlag(s.ctx, uuid.New())
	s.True(errs.Is(err, errs.ErrUserNotFound))
}

func (s *commandSuite) TestDeleteUser_RestocksAndCascades() {
	bookID := s.addBook("9780441172719", 1)
	other := s.addBook("9780000000002", 4)
	userID := s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)
	_, err = s.loans.IssueBook(s.ctx, "9000000001", "9780000000002")
	s.Require().NoError(err)

	res, err := s.users.DeleteUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(int64(2), res.IssuesClosed)
	s.Equal(int64(2), res.ActivitiesRemoved)

	s.Equal(1, s.book(bookID).Stock)
	s.Equal(4, s.book(other).Stock)
	s.Empty(s.openIssues(userID))
	s.Empty(s.activities(userID))

	_, err = s.store.UserReads().FindByID(s.ctx, userID)
	s.Error(err)

	_, err = s.users.DeleteUser(s.ctx, userID)
	s.True(errs.Is(err, errs.ErrUserNotFound))
}
