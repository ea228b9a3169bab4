//go:build unit

package commands_test

import (
	"fmt"
	"sync"
	"time"

	"library-admin/internal/domain/book"
	"library-admin/internal/domain/user"
	"library-admin/internal/infra/lock"
	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

// patientLoans waits for busy locks instead of failing fast, so contention
// surfaces as a domain outcome rather than ErrLockUnavailable.
func (s *commandSuite) patientLoans() commands.LoanCommands {
	locker := lock.NewMemoryLocker()
	s.T().Cleanup(locker.Close)
	guard := lock.NewGuard(locker, config.LockConfig{
		Driver:     config.LockDriverMemory,
		TTL:        5 * time.Second,
		Retries:    5000,
		RetryDelay: time.Millisecond,
	})
	return commands.NewLoanUseCase(s.store, guard, s.clock, s.metrics, config.LibraryConfig{LoanPeriodDays: 7, PageSize: 10})
}

// issueConcurrently starts every call at once and returns their errors.
func issueConcurrently(loans commands.LoanCommands, s *commandSuite, calls [][2]string) []error {
	results := make([]error, len(calls))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, results[i] = loans.IssueBook(s.ctx, c[0], c[1])
		}()
	}
	close(start)
	wg.Wait()
	return results
}

func (s *commandSuite) TestIssueBook_ConcurrentLastCopy() {
	const members = 8
	bookID := s.addBook("9780441172719", 1)
	userIDs := make([]uuid.UUID, members)
	calls := make([][2]string, members)
	for i := range members {
		username := fmt.Sprintf("90000001%02d", i)
		userIDs[i] = s.addUser("Member", username)
		calls[i] = [2]string{username, "9780441172719"}
	}

	results := issueConcurrently(s.patientLoans(), s, calls)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, book.ErrOutOfStock), "unexpected error: %v", err)
	}
	s.Equal(1, succeeded)
	s.Equal(0, s.book(bookID).Stock)

	open := 0
	for _, id := range userIDs {
		open += len(s.openIssues(id))
		s.LessOrEqual(len(s.user(id).IssuedBookIDs), 1)
	}
	s.Equal(1, open)
}

func (s *commandSuite) TestIssueBook_ConcurrentRequestsRespectLimit() {
	const books = user.MaxIssuedBooks + 3
	userID := s.addUser("Alice", "9000000001")
	bookIDs := make([]uuid.UUID, books)
	calls := make([][2]string, books)
	for i := range books {
		isbn := fmt.Sprintf("97800000001%02d", i)
		bookIDs[i] = s.addBook(isbn, 1)
		calls[i] = [2]string{"9000000001", isbn}
	}

	results := issueConcurrently(s.patientLoans(), s, calls)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, user.ErrIssueLimitExceeded), "unexpected error: %v", err)
	}
	s.Equal(user.MaxIssuedBooks, succeeded)
	s.Len(s.user(userID).IssuedBookIDs, user.MaxIssuedBooks)
	s.Len(s.openIssues(userID), user.MaxIssuedBooks)

	remaining := 0
	for _, id := range bookIDs {
		stock := s.book(id).Stock
		s.GreaterOrEqual(stock, 0)
		remaining += stock
	}
	s.Equal(books-user.MaxIssuedBooks, remaining)
}

func (s *commandSuite) TestIssueBook_ConcurrentSamePair() {
	bookID := s.addBook("9780441172719", 5)
	userID := s.addUser("Alice", "9000000001")
	calls := make([][2]string, 6)
	for i := range calls {
		calls[i] = [2]string{"9000000001", "9780441172719"}
	}

	results := issueConcurrently(s.patientLoans(), s, calls)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errs.Is(err, errs.ErrDuplicateIssue), "unexpected error: %v", err)
	}
	s.Equal(1, succeeded)
	s.Equal(4, s.book(bookID).Stock)
	s.Len(s.openIssues(userID), 1)
}
