package memstore

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

// Ordering helpers mirror the ORDER BY clauses of the Postgres stores.

func byIssueDate(a, b sqlc.Issues) int {
	if c := a.IssueDate.Compare(b.IssueDate); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

func byReturnDate(a, b sqlc.Issues) int {
	if c := a.ReturnDate.Compare(b.ReturnDate); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

func newestActivityFirst(a, b sqlc.Activities) int {
	if c := b.EntryTime.Compare(a.EntryTime); c != 0 {
		return c
	}
	return bytes.Compare(b.ID[:], a.ID[:])
}

func newestUserFirst(a, b sqlc.Users) int {
	if c := b.JoinedAt.Compare(a.JoinedAt); c != 0 {
		return c
	}
	return bytes.Compare(b.ID[:], a.ID[:])
}

func (s *state) issueRows(match func(sqlc.Issues) bool, order func(a, b sqlc.Issues) int) []sqlc.Issues {
	out := []sqlc.Issues{}
	for _, is := range s.issues {
		if match(is) {
			out = append(out, is)
		}
	}
	slices.SortFunc(out, order)
	return out
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type ActivityReadStore struct{ store *Store }

func (s *Store) ActivityReads() *ActivityReadStore { return &ActivityReadStore{store: s} }

func (r *ActivityReadStore) filtered(filter queries.ActivityStoreFilter) []sqlc.Activities {
	var out []sqlc.Activities
	r.store.read(func(st *state) {
		for _, a := range st.activities {
			if filter.UserID != nil && a.UserID != *filter.UserID {
				continue
			}
			if filter.Category != nil && a.Category != *filter.Category {
				continue
			}
			if filter.Search != nil && a.UserUsername != *filter.Search && a.Category != *filter.Search {
				continue
			}
			out = append(out, a)
		}
	})
	slices.SortFunc(out, newestActivityFirst)
	return out
}

func toActivityViews(rows []sqlc.Activities) []*queries.ActivityView {
	out := make([]*queries.ActivityView, 0, len(rows))
	for _, a := range rows {
		out = append(out, &queries.ActivityView{
			ID:           a.ID,
			Category:     a.Category,
			BookID:       pgconv.UUIDPtrFromPgtype(a.BookID),
			BookTitle:    pgconv.StringPtrFromPgtype(a.BookTitle),
			IssueID:      pgconv.UUIDPtrFromPgtype(a.IssueID),
			IssueDate:    pgconv.TimePtrFromPgtype(a.IssueDate),
			ReturnDate:   pgconv.TimePtrFromPgtype(a.ReturnDate),
			UserID:       a.UserID,
			Username:     a.UserUsername,
			UserFullName: a.UserFullName,
			EntryTime:    a.EntryTime,
		})
	}
	return out
}

func (r *ActivityReadStore) List(_ context.Context, filter queries.ActivityStoreFilter, limit, offset int) ([]*queries.ActivityView, error) {
	return toActivityViews(page(r.filtered(filter), limit, offset)), nil
}

func (r *ActivityReadStore) Count(_ context.Context, filter queries.ActivityStoreFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *ActivityReadStore) ListAfter(_ context.Context, filter queries.ActivityStoreFilter, after *queries.FeedPosition, limit int) ([]*queries.ActivityView, error) {
	rows := r.filtered(filter)
	if after != nil {
		rows = slices.DeleteFunc(rows, func(a sqlc.Activities) bool {
			if c := a.EntryTime.Compare(after.EntryTime); c != 0 {
				return c > 0
			}
			return bytes.Compare(a.ID[:], after.ID[:]) >= 0
		})
	}
	return toActivityViews(page(rows, limit, 0)), nil
}

type BookReadStore struct{ store *Store }

func (s *Store) BookReads() *BookReadStore { return &BookReadStore{store: s} }

func toBookView(b sqlc.Books) *queries.BookView {
	return &queries.BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.Isbn,
		Category:    b.Category,
		Description: b.Description,
		Stock:       int(b.Stock),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookView, error) {
	var (
		row sqlc.Books
		ok  bool
	)
	r.store.read(func(st *state) { row, ok = st.books[id] })
	if !ok {
		return nil, infra.NewNotFound("book not found")
	}
	return toBookView(row), nil
}

func bookMatches(b sqlc.Books, f queries.InventoryFilter) bool {
	switch f.Field {
	case queries.InventoryFieldTitle:
		return containsFold(b.Title, f.Value)
	case queries.InventoryFieldAuthor:
		return containsFold(b.Author, f.Value)
	case queries.InventoryFieldCategory:
		return containsFold(b.Category, f.Value)
	case queries.InventoryFieldISBN:
		v := strings.NewReplacer("-", "", " ", "").Replace(f.Value)
		return containsFold(b.Isbn, v)
	default:
		return true
	}
}

func (r *BookReadStore) matching(f queries.InventoryFilter) []sqlc.Books {
	var out []sqlc.Books
	r.store.read(func(st *state) {
		for _, b := range st.books {
			if bookMatches(b, f) {
				out = append(out, b)
			}
		}
	})
	slices.SortFunc(out, func(a, b sqlc.Books) int {
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out
}

func (r *BookReadStore) Search(_ context.Context, filter queries.InventoryFilter, limit, offset int) ([]*queries.BookView, error) {
	rows := page(r.matching(filter), limit, offset)
	out := make([]*queries.BookView, 0, len(rows))
	for _, b := range rows {
		out = append(out, toBookView(b))
	}
	return out, nil
}

func (r *BookReadStore) Count(_ context.Context, filter queries.InventoryFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

type UserReadStore struct{ store *Store }

func (s *Store) UserReads() *UserReadStore { return &UserReadStore{store: s} }

func toUserView(u sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Email:         u.Email,
		Gender:        u.Gender,
		Address:       u.Address,
		ViolationFlag: u.ViolationFlag,
		IssuedBookIDs: slices.Clone(u.IssuedBookIds),
		JoinedAt:      u.JoinedAt,
	}
}

func (r *UserReadStore) members(match func(sqlc.Users) bool) []sqlc.Users {
	var out []sqlc.Users
	r.store.read(func(st *state) {
		for _, u := range st.users {
			if u.Role == "member" && match(u) {
				out = append(out, u)
			}
		}
	})
	slices.SortFunc(out, newestUserFirst)
	return out
}

func toUserViews(rows []sqlc.Users) []*queries.UserView {
	out := make([]*queries.UserView, 0, len(rows))
	for _, u := range rows {
		out = append(out, toUserView(u))
	}
	return out
}

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		row sqlc.Users
		ok  bool
	)
	r.store.read(func(st *state) { row, ok = st.users[id] })
	if !ok {
		return nil, infra.NewNotFound("user not found")
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindIDByUsername(ctx context.Context, username string) (uuid.UUID, error) {
	return r.store.CommandReads().UserIDByUsername(ctx, username)
}

func (r *UserReadStore) List(_ context.Context, limit, offset int) ([]*queries.UserView, error) {
	all := r.members(func(sqlc.Users) bool { return true })
	return toUserViews(page(all, limit, offset)), nil
}

func (r *UserReadStore) Count(_ context.Context) (int64, error) {
	return int64(len(r.members(func(sqlc.Users) bool { return true }))), nil
}

func (r *UserReadStore) Search(_ context.Context, value string, limit int) ([]*queries.UserView, error) {
	found := r.members(func(u sqlc.Users) bool {
		return containsFold(u.FirstName, value) || containsFold(u.LastName, value) ||
			containsFold(u.Username, value) || containsFold(u.Email, value)
	})
	return toUserViews(page(found, limit, 0)), nil
}

type IssueReadStore struct{ store *Store }

func (s *Store) IssueReads() *IssueReadStore { return &IssueReadStore{store: s} }

func toIssueViews(rows []sqlc.Issues) []*queries.IssueView {
	out := make([]*queries.IssueView, 0, len(rows))
	for _, is := range rows {
		out = append(out, &queries.IssueView{
			ID:           is.ID,
			BookID:       is.BookID,
			BookTitle:    is.BookTitle,
			BookAuthor:   is.BookAuthor,
			BookISBN:     is.BookIsbn,
			BookCategory: is.BookCategory,
			BookStock:    int(is.BookStock),
			UserID:       is.UserID,
			Username:     is.UserUsername,
			UserFullName: is.UserFullName,
			IssueDate:    is.IssueDate,
			ReturnDate:   is.ReturnDate,
			IsRenewed:    is.IsRenewed,
		})
	}
	return out
}

func (r *IssueReadStore) rows(match func(sqlc.Issues) bool, order func(a, b sqlc.Issues) int) []*queries.IssueView {
	var out []sqlc.Issues
	r.store.read(func(st *state) { out = st.issueRows(match, order) })
	return toIssueViews(out)
}

func (r *IssueReadStore) ListOpen(_ context.Context) ([]*queries.IssueView, error) {
	return r.rows(func(sqlc.Issues) bool { return true }, byReturnDate), nil
}

func (r *IssueReadStore) ListOpenByUsername(_ context.Context, username string) ([]*queries.IssueView, error) {
	return r.rows(func(is sqlc.Issues) bool { return is.UserUsername == username }, byReturnDate), nil
}

func (r *IssueReadStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.IssueView, error) {
	return r.rows(func(is sqlc.Issues) bool { return is.UserID == userID }, byIssueDate), nil
}

type DashboardReadStore struct{ store *Store }

func (s *Store) DashboardReads() *DashboardReadStore { return &DashboardReadStore{store: s} }

func (r *DashboardReadStore) CountMembers(ctx context.Context) (int64, error) {
	return r.store.UserReads().Count(ctx)
}

func (r *DashboardReadStore) CountBooks(_ context.Context) (int64, error) {
	var n int
	r.store.read(func(st *state) { n = len(st.books) })
	return int64(n), nil
}

func (r *DashboardReadStore) CountActivities(_ context.Context) (int64, error) {
	var n int
	r.store.read(func(st *state) { n = len(st.activities) })
	return int64(n), nil
}

var (
	_ queries.ActivityReadStore  = (*ActivityReadStore)(nil)
	_ queries.BookReadStore      = (*BookReadStore)(nil)
	_ queries.UserReadStore      = (*UserReadStore)(nil)
	_ queries.IssueReadStore     = (*IssueReadStore)(nil)
	_ queries.DashboardReadStore = (*DashboardReadStore)(nil)
)
