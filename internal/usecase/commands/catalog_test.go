//go:build unit

package commands_test

import (
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

func (s *commandSuite) TestAddBook_DuplicateISBN() {
	s.addBook("9780441172719", 1)

	_, err := s.catalog.AddBook(s.ctx, commands.AddBookInput{
		Title: "Other", Author: "Someone", ISBN: "978-0441172719", Category: "SF", Stock: 1,
	})
	s.True(errs.Is(err, errs.ErrDuplicateBook))
}

func (s *commandSuite) TestAddBook_Validation() {
	_, err := s.catalog.AddBook(s.ctx, commands.AddBookInput{
		Title: "Dune", Author: "Herbert", ISBN: "9780441172719", Category: "SF", Stock: -1,
	})
	s.True(errs.Is(err, errs.ErrDomainValidation))

	_, err = s.catalog.AddBook(s.ctx, commands.AddBookInput{
		Title: " ", Author: "Herbert", ISBN: "9780441172719", Category: "SF",
	})
	s.True(errs.Is(err, errs.ErrDomainValidation))
}

func (s *commandSuite) TestUpdateBook_PropagatesToOpenIssues() {
	bookID := s.addBook("9780441172719", 3)
	userID := s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	title, stock := "Dune Messiah", 10
	_, err = s.catalog.UpdateBook(s.ctx, bookID, commands.UpdateBookInput{Title: &title, Stock: &stock})
	s.Require().NoError(err)

	v := s.book(bookID)
	s.Equal("Dune Messiah", v.Title)
	s.Equal(10, v.Stock)
	s.Equal("Author", v.Author)

	issues := s.openIssues(userID)
	s.Require().Len(issues, 1)
	s.Equal("Dune Messiah", issues[0].BookTitle)
	s.Equal(10, issues[0].BookStock)
}

func (s *commandSuite) TestUpdateBook_Errors() {
	first := s.addBook("9780441172719", 1)
	s.addBook("9780000000002", 1)

	taken := "9780000000002"
	_, err := s.catalog.UpdateBook(s.ctx, first, commands.UpdateBookInput{ISBN: &taken})
	s.True(errs.Is(err, errs.ErrDuplicateBook))

	_, err = s.catalog.UpdateBook(s.ctx, uuid.New(), commands.UpdateBookInput{})
	s.True(errs.Is(err, errs.ErrBookNotFound))

	negative := -3
	_, err = s.catalog.UpdateBook(s.ctx, first, commands.UpdateBookInput{Stock: &negative})
	s.True(errs.Is(err, errs.ErrDomainValidation))
	s.Equal(1, s.book(first).Stock)
}

func (s *commandSuite) TestDeleteBook() {
	onLoan := s.addBook("9780441172719", 1)
	idle := s.addBook("9780000000002", 1)
	s.addUser("Alice", "9000000001")
	_, err := s.loans.IssueBook(s.ctx, "9000000001", "9780441172719")
	s.Require().NoError(err)

	s.True(errs.Is(s.catalog.DeleteBook(s.ctx, onLoan), errs.ErrBookOnLoan))
	s.Require().NoError(s.catalog.DeleteBook(s.ctx, idle))
	s.True(errs.Is(s.catalog.DeleteBook(s.ctx, idle), errs.ErrBookNotFound))

	_, err = s.store.BookReads().FindByID(s.ctx, idle)
	s.Error(err)
}
