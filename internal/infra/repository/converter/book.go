package converter

import (
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/issue"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
)

func BookFromRow(row sqlc.Books) *book.Book {
	return book.ReconstructBook(
		row.ID,
		row.Title,
		row.Author,
		row.Isbn,
		row.Category,
		row.Description,
		int(row.Stock),
		row.CreatedAt,
		row.UpdatedAt,
	)
}

func BookToCreateParams(b *book.Book) sqlc.CreateBookParams {
	return sqlc.CreateBookParams{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		Isbn:        b.ISBN().String(),
		Category:    b.Category(),
		Description: b.Description(),
		Stock:       pgconv.IntToInt32(b.Stock()),
		CreatedAt:   b.CreatedAt(),
	}
}

func BookToUpdateParams(b *book.Book) sqlc.UpdateBookParams {
	return sqlc.UpdateBookParams{
		ID:          b.ID(),
		Title:       b.Title(),
		Author:      b.Author(),
		Isbn:        b.ISBN().String(),
		Category:    b.Category(),
		Description: b.Description(),
		Stock:       pgconv.IntToInt32(b.Stock()),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func BookInfoToPropagateParams(info issue.BookInfo) sqlc.PropagateBookToIssuesParams {
	return sqlc.PropagateBookToIssuesParams{
		BookID:       info.ID,
		BookTitle:    info.Title,
		BookAuthor:   info.Author,
		BookIsbn:     info.ISBN,
		BookCategory: info.Category,
		BookStock:    pgconv.IntToInt32(info.Stock),
	}
}
