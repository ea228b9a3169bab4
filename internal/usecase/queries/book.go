package queries

import (
	"context"
	"strings"

	"library-admin/internal/infra"
	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidInventoryField = errs.New("inventory filter must be one of all, title, author, isbn, category")

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	Search(ctx context.Context, filter InventoryFilter, limit, offset int) ([]*BookView, error)
	Count(ctx context.Context, filter InventoryFilter) (int64, error)
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	Inventory(ctx context.Context, filter InventoryFilter, page int) (*BookPage, error)
}

type bookQueriesImpl struct {
	store    BookReadStore
	pageSize int
}

func NewBookQueries(store BookReadStore, pageSize int) BookQueries {
	return &bookQueriesImpl{store: store, pageSize: pageSize}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookQueriesImpl) Inventory(ctx context.Context, filter InventoryFilter, page int) (*BookPage, error) {
	filter, err := normalizeInventoryFilter(filter)
	if err != nil {
		return nil, err
	}
	p := NewPagination(page, q.pageSize, DefaultPageSize)

	total, err := q.store.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items, err := q.store.Search(ctx, filter, p.PageSize, p.Offset())
	if err != nil {
		return nil, err
	}
	return &BookPage{Items: items, Page: p.Info(total)}, nil
}

// normalizeInventoryFilter treats "all/all" and an empty value as a full listing.
func normalizeInventoryFilter(f InventoryFilter) (InventoryFilter, error) {
	f.Field = strings.ToLower(strings.TrimSpace(f.Field))
	f.Value = strings.TrimSpace(f.Value)
	if f.IsAll() || f.Value == "" {
		return InventoryFilter{Field: InventoryFieldAll}, nil
	}
	switch f.Field {
	case InventoryFieldTitle, InventoryFieldAuthor, InventoryFieldISBN, InventoryFieldCategory:
		return f, nil
	default:
		return f, errs.Mark(ErrInvalidInventoryField, errs.ErrDomainValidation)
	}
}
