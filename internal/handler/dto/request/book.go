package request

import (
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"
)

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ISBN        string `json:"isbn" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Stock       int    `json:"stock" binding:"min=0"`
}

func (r CreateBookRequest) ToInput() commands.AddBookInput {
	return commands.AddBookInput{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Category:    r.Category,
		Description: r.Description,
		Stock:       r.Stock,
	}
}

type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	ISBN        *string `json:"isbn,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Stock       *int    `json:"stock,omitempty" binding:"omitempty,min=0"`
}

func (r UpdateBookRequest) ToInput() commands.UpdateBookInput {
	return commands.UpdateBookInput{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Category:    r.Category,
		Description: r.Description,
		Stock:       r.Stock,
	}
}

// InventoryQuery mirrors the inventory search form: field=all&value=all
// lists the whole catalogue.
type InventoryQuery struct {
	Field string `form:"field"`
	Value string `form:"value"`
	Page  *int   `form:"page" binding:"omitempty,min=1"`
}

func (q InventoryQuery) PageNumber() int { return deref(q.Page) }

func (q InventoryQuery) ToFilter() queries.InventoryFilter {
	return queries.InventoryFilter{Field: q.Field, Value: q.Value}
}
