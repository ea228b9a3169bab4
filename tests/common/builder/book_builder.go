//go:build unit || e2e

package builder

import (
	"time"

	"library-admin/internal/domain/book"
	reqdto "library-admin/internal/handler/dto/request"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Description string
	Stock       int
	CreatedAt   time.Time
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		Title:       "The Go Programming Language",
		Author:      "Alan Donovan",
		ISBN:        "9780134190440",
		Category:    "Programming",
		Description: "An introduction to Go",
		Stock:       3,
		CreatedAt:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) Details() book.Details {
	return book.Details{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Category:    b.Category,
		Description: b.Description,
		Stock:       b.Stock,
	}
}

func (b *BookBuilder) BuildDomain() (*book.Book, error) {
	return book.NewBook(b.Details(), b.CreatedAt)
}

func (b *BookBuilder) BuildInfra() sqlc.Books {
	return sqlc.Books{
		ID:          uuid.New(),
		Title:       b.Title,
		Author:      b.Author,
		Isbn:        b.ISBN,
		Category:    b.Category,
		Description: b.Description,
		Stock:       int32(b.Stock),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:          uuid.New(),
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Category:    b.Category,
		Description: b.Description,
		Stock:       b.Stock,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Category:    b.Category,
		Description: b.Description,
		Stock:       b.Stock,
	}
}

func (b *BookBuilder) WithISBN(isbn string) *BookBuilder {
	b.ISBN = isbn
	return b
}

func (b *BookBuilder) WithTitle(title string) *BookBuilder {
	b.Title = title
	return b
}

func (b *BookBuilder) WithStock(stock int) *BookBuilder {
	b.Stock = stock
	return b
}
