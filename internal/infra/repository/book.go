package repository

import (
	"context"

	"library-admin/internal/domain/book"
	"library-admin/internal/infra"
	"library-admin/internal/infra/repository/converter"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookWriteQueries interface {
	CreateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookParams) (sqlc.Books, error)
	GetBookByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
	GetBookByISBN(ctx context.Context, db sqlc.DBTX, isbn string) (sqlc.Books, error)
	UpdateBook(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookParams) error
	DecrementBookStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementBookStockParams) (int32, error)
	IncrementBookStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementBookStockParams) (int32, error)
	DeleteBook(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BookRepository struct {
	queries BookWriteQueries
	db      sqlc.DBTX
}

func NewBookRepository(queries BookWriteQueries, db sqlc.DBTX) *BookRepository {
	return &BookRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) error {
	if _, err := r.queries.CreateBook(ctx, r.db, converter.BookToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create book", err)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	row, err := r.queries.GetBookByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return converter.BookFromRow(row), nil
}

func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	row, err := r.queries.GetBookByISBN(ctx, r.db, isbn)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find book by ISBN", err)
	}
	return converter.BookFromRow(row), nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	if err := r.queries.UpdateBook(ctx, r.db, converter.BookToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	return nil
}

// DecrementStock reports KindConflict when the guarded update touched no row.
func (r *BookRepository) DecrementStock(ctx context.Context, b *book.Book) (int, error) {
	stock, err := r.queries.DecrementBookStock(ctx, r.db, sqlc.DecrementBookStockParams{
		ID:        b.ID(),
		UpdatedAt: b.UpdatedAt(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("book out of stock", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return int(stock), nil
}

func (r *BookRepository) IncrementStock(ctx context.Context, b *book.Book) (int, error) {
	stock, err := r.queries.IncrementBookStock(ctx, r.db, sqlc.IncrementBookStockParams{
		ID:        b.ID(),
		UpdatedAt: b.UpdatedAt(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment stock", err)
	}
	return int(stock), nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBook(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if n == 0 {
		return infra.NewNotFound("book not found")
	}
	return nil
}

var _ shared.BookRepository = (*BookRepository)(nil)
