package response

import (
	"time"

	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PageResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type BookPageResponse struct {
	Books []*BookResponse `json:"books"`
	Page  PageResponse    `json:"page"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return copyInto[BookResponse](v)
}

func FromBookPage(p *queries.BookPage) *BookPageResponse {
	return &BookPageResponse{
		Books: copyList[BookResponse](p.Items),
		Page:  PageResponse(p.Page),
	}
}
