package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"library-admin/internal/domain/activity"
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/issue"
	"library-admin/internal/domain/user"
	"library-admin/internal/infra"
	"library-admin/internal/pkg/clock"
	"library-admin/internal/pkg/config"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/metrics"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

// LoanCommands drives a loan through NONE -> ISSUED -> (RENEWED)* -> RETURNED.
// Each operation holds the user lock, then the book lock, and writes every
// affected record in one unit of work.
type LoanCommands interface {
	IssueBook(ctx context.Context, username, isbn string) (*IssueResult, error)
	RenewBook(ctx context.Context, username string, bookID uuid.UUID) (*IssueResult, error)
	ReturnBook(ctx context.Context, username string, bookID uuid.UUID) error
}

type loanUseCaseImpl struct {
	uow            shared.UnitOfWork
	locks          shared.LockGuard
	clock          clock.Clock
	metrics        *metrics.LoanMetrics
	loanPeriodDays int
}

func NewLoanUseCase(uow shared.UnitOfWork, locks shared.LockGuard, clk clock.Clock, m *metrics.LoanMetrics, cfg config.LibraryConfig) LoanCommands {
	return &loanUseCaseImpl{
		uow:            uow,
		locks:          locks,
		clock:          clk,
		metrics:        m,
		loanPeriodDays: cfg.LoanPeriodDays,
	}
}

func (uc *loanUseCaseImpl) IssueBook(ctx context.Context, username, isbn string) (*IssueResult, error) {
	res, err := uc.issueBook(ctx, strings.TrimSpace(username), isbn)
	if err != nil {
		uc.metrics.Rejected(metrics.OpIssue, rejectionReason(err))
		return nil, err
	}
	uc.metrics.Completed(metrics.OpIssue)
	slog.InfoContext(ctx, "book issued",
		"user_id", res.UserID,
		"book_id", res.BookID,
		"issue_id", res.IssueID,
		"return_date", res.ReturnDate)
	return res, nil
}

func (uc *loanUseCaseImpl) issueBook(ctx context.Context, username, rawISBN string) (*IssueResult, error) {
	isbn, err := book.NewISBN(rawISBN)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	reads := uc.uow.CommandReads()
	userID, err := reads.UserIDByUsername(ctx, username)
	if err != nil {
		return nil, asNotFound(err, errs.ErrUserNotFound)
	}
	bookID, err := reads.BookIDByISBN(ctx, isbn.String())
	if err != nil {
		return nil, asNotFound(err, errs.ErrBookNotFound)
	}

	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(userID), shared.LockKeys.Book(bookID))
	if err != nil {
		return nil, err
	}
	defer release()

	var result *IssueResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}
		b, err := tx.Books().FindByID(ctx, bookID)
		if err != nil {
			return asNotFound(err, errs.ErrBookNotFound)
		}

		if err := u.CanIssue(); err != nil {
			return err
		}
		if !b.Available() {
			return book.ErrOutOfStock
		}
		if _, err := tx.Issues().FindByUserAndBook(ctx, u.ID(), b.ID()); err == nil {
			return errs.ErrDuplicateIssue
		} else if !isNotFound(err) {
			return err
		}

		now := uc.clock.Now()
		if err := b.DecrementStock(now); err != nil {
			return err
		}
		remaining, err := tx.Books().DecrementStock(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return book.ErrOutOfStock
			}
			return err
		}

		if err := u.AddIssuedBook(b.ID(), now); err != nil {
			return err
		}
		if err := tx.Users().UpdateIssuedBooks(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindCheckViolated) {
				return user.ErrIssueLimitExceeded
			}
			return err
		}

		iss, err := issue.NewIssue(bookInfo(b, remaining), userInfo(u), now, uc.loanPeriodDays)
		if err != nil {
			return err
		}
		if err := tx.Issues().Create(ctx, iss); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateIssue
			}
			return err
		}

		if err := appendLoanActivity(ctx, tx, activity.CategoryIssue, iss, now); err != nil {
			return err
		}
		result = newIssueResult(iss, remaining)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *loanUseCaseImpl) RenewBook(ctx context.Context, username string, bookID uuid.UUID) (*IssueResult, error) {
	username = strings.TrimSpace(username)
	res, err := uc.renewBook(ctx, username, bookID)
	if err != nil {
		uc.metrics.Rejected(metrics.OpRenew, rejectionReason(err))
		return nil, err
	}
	uc.metrics.Completed(metrics.OpRenew)
	slog.InfoContext(ctx, "issue renewed",
		"user_id", res.UserID,
		"book_id", res.BookID,
		"issue_id", res.IssueID,
		"return_date", res.ReturnDate)
	return res, nil
}

func (uc *loanUseCaseImpl) renewBook(ctx context.Context, username string, bookID uuid.UUID) (*IssueResult, error) {
	userID, err := uc.uow.CommandReads().UserIDByUsername(ctx, username)
	if err != nil {
		// the issue is addressed by username, so an unknown user has no issue
		return nil, asNotFound(err, errs.ErrIssueNotFound)
	}

	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(userID), shared.LockKeys.Book(bookID))
	if err != nil {
		return nil, err
	}
	defer release()

	var result *IssueResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		iss, err := tx.Issues().FindByUsernameAndBook(ctx, username, bookID)
		if err != nil {
			return asNotFound(err, errs.ErrIssueNotFound)
		}

		iss.Renew()
		if err := tx.Issues().UpdateRenewal(ctx, iss); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := appendLoanActivity(ctx, tx, activity.CategoryRenew, iss, now); err != nil {
			return err
		}
		result = newIssueResult(iss, iss.Book().Stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *loanUseCaseImpl) ReturnBook(ctx context.Context, username string, bookID uuid.UUID) error {
	username = strings.TrimSpace(username)
	issueID, userID, err := uc.returnBook(ctx, username, bookID)
	if err != nil {
		uc.metrics.Rejected(metrics.OpReturn, rejectionReason(err))
		return err
	}
	uc.metrics.Completed(metrics.OpReturn)
	slog.InfoContext(ctx, "book returned",
		"user_id", userID,
		"book_id", bookID,
		"issue_id", issueID)
	return nil
}

func (uc *loanUseCaseImpl) returnBook(ctx context.Context, username string, bookID uuid.UUID) (issueID, userID uuid.UUID, err error) {
	userID, err = uc.uow.CommandReads().UserIDByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, uuid.Nil, asNotFound(err, errs.ErrUserNotFound)
	}

	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(userID), shared.LockKeys.Book(bookID))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	defer release()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}
		if !u.HoldsBook(bookID) {
			return errs.Wrap(errs.ErrIssueNotFound, user.ErrBookNotHeld.Error())
		}
		iss, err := tx.Issues().FindByUserAndBook(ctx, u.ID(), bookID)
		if err != nil {
			return asNotFound(err, errs.ErrIssueNotFound)
		}

		now := uc.clock.Now()
		b, err := tx.Books().FindByID(ctx, bookID)
		if err != nil {
			return asNotFound(err, errs.ErrBookNotFound)
		}
		b.IncrementStock(now)
		if _, err := tx.Books().IncrementStock(ctx, b); err != nil {
			return err
		}

		if err := tx.Issues().Delete(ctx, iss.ID()); err != nil {
			return asNotFound(err, errs.ErrIssueNotFound)
		}
		if err := u.RemoveIssuedBook(bookID, now); err != nil {
			return err
		}
		if err := tx.Users().UpdateIssuedBooks(ctx, u); err != nil {
			return err
		}

		if err := appendLoanActivity(ctx, tx, activity.CategoryReturn, iss, now); err != nil {
			return err
		}
		issueID = iss.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return issueID, userID, nil
}

func bookInfo(b *book.Book, stock int) issue.BookInfo {
	return issue.BookInfo{
		ID:       b.ID(),
		Title:    b.Title(),
		Author:   b.Author(),
		ISBN:     b.ISBN().String(),
		Category: b.Category(),
		Stock:    stock,
	}
}

func userInfo(u *user.User) issue.UserInfo {
	return issue.UserInfo{
		ID:       u.ID(),
		Username: u.Username().String(),
		FullName: u.FullName(),
	}
}

// appendLoanActivity records the issue's state as it is after the operation,
// so a renewal entry carries the extended return date.
func appendLoanActivity(ctx context.Context, tx shared.Tx, category activity.Category, iss *issue.Issue, now time.Time) error {
	b, u := iss.Book(), iss.User()
	a, err := activity.Record(
		category,
		&activity.BookRef{ID: b.ID, Title: b.Title},
		&activity.TimeRef{IssueID: iss.ID(), IssueDate: iss.IssueDate(), ReturnDate: iss.ReturnDate()},
		activity.UserSnapshot{ID: u.ID, Username: u.Username, FullName: u.FullName},
		now,
	)
	if err != nil {
		return err
	}
	return tx.Activities().Append(ctx, a)
}
