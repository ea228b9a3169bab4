package commands

import (
	"context"
	"log/slog"

	"library-admin/internal/domain/book"
	"library-admin/internal/infra"
	"library-admin/internal/pkg/clock"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/patch"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddBookInput struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Description string
	Stock       int
}

// UpdateBookInput is a partial update; nil fields keep their value.
type UpdateBookInput struct {
	Title       *string
	Author      *string
	ISBN        *string
	Category    *string
	Description *string
	Stock       *int
}

type CatalogCommands interface {
	AddBook(ctx context.Context, in AddBookInput) (*BookResult, error)
	UpdateBook(ctx context.Context, id uuid.UUID, in UpdateBookInput) (*BookResult, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	locks shared.LockGuard
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, locks shared.LockGuard, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, locks: locks, clock: clk}
}

func (uc *catalogUseCaseImpl) AddBook(ctx context.Context, in AddBookInput) (*BookResult, error) {
	b, err := book.NewBook(book.Details(in), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Books().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateBook
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "book added", "book_id", b.ID(), "isbn", b.ISBN().String())
	return &BookResult{BookID: b.ID()}, nil
}

func (uc *catalogUseCaseImpl) UpdateBook(ctx context.Context, id uuid.UUID, in UpdateBookInput) (*BookResult, error) {
	release, err := uc.locks.Hold(ctx, shared.LockKeys.Book(id))
	if err != nil {
		return nil, err
	}
	defer release()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, errs.ErrBookNotFound)
		}

		cur := b.Details()
		next := book.Details{
			Title:       patch.CoalesceTrimmed(in.Title, cur.Title),
			Author:      patch.CoalesceTrimmed(in.Author, cur.Author),
			ISBN:        patch.CoalesceTrimmed(in.ISBN, cur.ISBN),
			Category:    patch.CoalesceTrimmed(in.Category, cur.Category),
			Description: patch.Coalesce(in.Description, cur.Description),
			Stock:       patch.Coalesce(in.Stock, cur.Stock),
		}
		snapshotChanged, err := b.UpdateDetails(next, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Books().Update(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateBook
			}
			return err
		}
		if !snapshotChanged {
			return nil
		}

		n, err := tx.Issues().PropagateBookInfo(ctx, bookInfo(b, b.Stock()))
		if err != nil {
			slog.WarnContext(ctx, "book snapshot propagation failed",
				"book_id", b.ID(),
				"integrity", true,
				"error", err)
			return errs.Mark(errs.Wrap(err, "propagate book info"), errs.ErrSnapshotPropagation)
		}
		slog.DebugContext(ctx, "book snapshot propagated", "book_id", b.ID(), "issues", n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "book updated", "book_id", id)
	return &BookResult{BookID: id}, nil
}

func (uc *catalogUseCaseImpl) DeleteBook(ctx context.Context, id uuid.UUID) error {
	release, err := uc.locks.Hold(ctx, shared.LockKeys.Book(id))
	if err != nil {
		return err
	}
	defer release()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Books().FindByID(ctx, id); err != nil {
			return asNotFound(err, errs.ErrBookNotFound)
		}
		open, err := tx.Issues().CountByBook(ctx, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return errs.ErrBookOnLoan
		}
		if err := tx.Books().Delete(ctx, id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.ErrBookOnLoan
			case isNotFound(err):
				return errs.ErrBookNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "book deleted", "book_id", id)
	return nil
}
