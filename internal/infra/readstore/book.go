package readstore

import (
	"context"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const booksTable = "books"

var bookColumns = []any{
	"id", "title", "author", "isbn", "category", "description", "stock", "created_at", "updated_at",
}

type BookReadQueries interface {
	GetBookByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Books, error)
}

type BookReadStore struct {
	queries BookReadQueries
	db      sqlc.DBTX
}

func NewBookReadStore(queries BookReadQueries, db sqlc.DBTX) *BookReadStore {
	return &BookReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	row, err := r.queries.GetBookByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get book view by id", err)
	}
	return toBookView(row), nil
}

func (r *BookReadStore) Search(ctx context.Context, filter queries.InventoryFilter, limit, offset int) ([]*queries.BookView, error) {
	ds := pg.From(booksTable).Select(bookColumns...)
	if cond := inventoryCondition(filter); cond != nil {
		ds = ds.Where(cond)
	}
	ds = ds.Order(goqu.C("title").Asc(), goqu.C("id").Asc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	query, args, err := toSQL(ds)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search books", err)
	}
	defer rows.Close()

	items := []*queries.BookView{}
	for rows.Next() {
		var b sqlc.Books
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Author,
			&b.Isbn,
			&b.Category,
			&b.Description,
			&b.Stock,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book", err)
		}
		items = append(items, toBookView(b))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate books", err)
	}
	return items, nil
}

func (r *BookReadStore) Count(ctx context.Context, filter queries.InventoryFilter) (int64, error) {
	if cond := inventoryCondition(filter); cond != nil {
		return countRows(ctx, r.db, booksTable, cond)
	}
	return countRows(ctx, r.db, booksTable)
}

// inventoryCondition returns nil for a full listing. The ISBN filter ignores
// hyphens and spaces the same way stored ISBNs do.
func inventoryCondition(filter queries.InventoryFilter) exp.Expression {
	switch filter.Field {
	case queries.InventoryFieldTitle, queries.InventoryFieldAuthor, queries.InventoryFieldCategory:
		return goqu.C(filter.Field).ILike(containsPattern(filter.Value))
	case queries.InventoryFieldISBN:
		return goqu.C("isbn").ILike(containsPattern(normalizeISBN(filter.Value)))
	default:
		return nil
	}
}

func normalizeISBN(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != '-' && r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}

var _ queries.BookReadStore = (*BookReadStore)(nil)
