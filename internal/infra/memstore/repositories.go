package memstore

import (
	"context"
	"slices"

	"library-admin/internal/domain/activity"
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/issue"
	"library-admin/internal/domain/user"
	"library-admin/internal/infra"
	"library-admin/internal/infra/repository/converter"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookRepo struct{ st *state }

func (r *bookRepo) Create(_ context.Context, b *book.Book) error {
	if _, dup := r.st.bookIDByISBN(b.ISBN().String()); dup {
		return infra.WrapRepoErr("failed to create book", nil, infra.KindDuplicateKey)
	}
	p := converter.BookToCreateParams(b)
	r.st.books[b.ID()] = sqlc.Books{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Isbn:        p.Isbn,
		Category:    p.Category,
		Description: p.Description,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.CreatedAt,
	}
	return nil
}

func (r *bookRepo) FindByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	row, ok := r.st.books[id]
	if !ok {
		return nil, infra.NewNotFound("book not found")
	}
	return converter.BookFromRow(row), nil
}

func (r *bookRepo) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	id, ok := r.st.bookIDByISBN(isbn)
	if !ok {
		return nil, infra.NewNotFound("book not found")
	}
	return converter.BookFromRow(r.st.books[id]), nil
}

func (r *bookRepo) Update(_ context.Context, b *book.Book) error {
	row, ok := r.st.books[b.ID()]
	if !ok {
		return nil
	}
	if other, dup := r.st.bookIDByISBN(b.ISBN().String()); dup && other != b.ID() {
		return infra.WrapRepoErr("failed to update book", nil, infra.KindDuplicateKey)
	}
	p := converter.BookToUpdateParams(b)
	row.Title, row.Author, row.Isbn, row.Category = p.Title, p.Author, p.Isbn, p.Category
	row.Description, row.Stock, row.UpdatedAt = p.Description, p.Stock, p.UpdatedAt
	r.st.books[b.ID()] = row
	return nil
}

func (r *bookRepo) DecrementStock(_ context.Context, b *book.Book) (int, error) {
	row, ok := r.st.books[b.ID()]
	if !ok || row.Stock <= 0 {
		return 0, infra.WrapRepoErr("book out of stock", nil, infra.KindConflict)
	}
	row.Stock--
	row.UpdatedAt = b.UpdatedAt()
	r.st.books[b.ID()] = row
	return int(row.Stock), nil
}

func (r *bookRepo) IncrementStock(_ context.Context, b *book.Book) (int, error) {
	row, ok := r.st.books[b.ID()]
	if !ok {
		return 0, infra.NewNotFound("book not found")
	}
	row.Stock++
	row.UpdatedAt = b.UpdatedAt()
	r.st.books[b.ID()] = row
	return int(row.Stock), nil
}

func (r *bookRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.books[id]; !ok {
		return infra.NewNotFound("book not found")
	}
	for _, is := range r.st.issues {
		if is.BookID == id {
			return infra.WrapRepoErr("failed to delete book", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.st.books, id)
	return nil
}

type userRepo struct{ st *state }

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	if _, dup := r.st.userIDByUsername(u.Username().String()); dup {
		return infra.WrapRepoErr("failed to create user", nil, infra.KindDuplicateKey)
	}
	r.st.users[u.ID()] = sqlc.Users(converter.UserToCreateParams(u))
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	row, ok := r.st.users[id]
	if !ok {
		return nil, infra.NewNotFound("user not found")
	}
	return converter.UserFromRow(row), nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	id, ok := r.st.userIDByUsername(username)
	if !ok {
		return nil, infra.NewNotFound("user not found")
	}
	return converter.UserFromRow(r.st.users[id]), nil
}

func (r *userRepo) UpdateProfile(_ context.Context, u *user.User) error {
	row, ok := r.st.users[u.ID()]
	if !ok {
		return nil
	}
	if other, dup := r.st.userIDByUsername(u.Username().String()); dup && other != u.ID() {
		return infra.WrapRepoErr("failed to update user profile", nil, infra.KindDuplicateKey)
	}
	p := converter.UserToProfileParams(u)
	row.FirstName, row.LastName, row.Username, row.Email = p.FirstName, p.LastName, p.Username, p.Email
	row.Gender, row.Address, row.UpdatedAt = p.Gender, p.Address, p.UpdatedAt
	r.st.users[u.ID()] = row
	return nil
}

func (r *userRepo) UpdateIssuedBooks(_ context.Context, u *user.User) error {
	row, ok := r.st.users[u.ID()]
	if !ok {
		return nil
	}
	ids := u.IssuedBookIDs()
	if len(ids) > user.MaxIssuedBooks {
		return infra.WrapRepoErr("failed to update issued books", nil, infra.KindCheckViolated)
	}
	row.IssuedBookIds = ids
	row.UpdatedAt = u.UpdatedAt()
	r.st.users[u.ID()] = row
	return nil
}

func (r *userRepo) UpdateFlag(_ context.Context, u *user.User) error {
	row, ok := r.st.users[u.ID()]
	if !ok {
		return nil
	}
	row.ViolationFlag = u.ViolationFlag()
	row.UpdatedAt = u.UpdatedAt()
	r.st.users[u.ID()] = row
	return nil
}

// Delete cascades to issues and activities like the foreign keys do.
func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.users[id]; !ok {
		return infra.NewNotFound("user not found")
	}
	delete(r.st.users, id)
	for iid, is := range r.st.issues {
		if is.UserID == id {
			delete(r.st.issues, iid)
		}
	}
	r.st.activities = slices.DeleteFunc(r.st.activities, func(a sqlc.Activities) bool {
		return a.UserID == id
	})
	return nil
}

type issueRepo struct{ st *state }

func (r *issueRepo) Create(_ context.Context, i *issue.Issue) error {
	p := converter.IssueToCreateParams(i)
	for _, is := range r.st.issues {
		if is.UserID == p.UserID && is.BookID == p.BookID {
			return infra.WrapRepoErr("failed to create issue", nil, infra.KindDuplicateKey)
		}
	}
	r.st.issues[p.ID] = sqlc.Issues(p)
	return nil
}

func (r *issueRepo) find(match func(sqlc.Issues) bool) (*issue.Issue, error) {
	for _, is := range r.st.issues {
		if match(is) {
			return converter.IssueFromRow(is), nil
		}
	}
	return nil, infra.NewNotFound("issue not found")
}

func (r *issueRepo) FindByUserAndBook(_ context.Context, userID, bookID uuid.UUID) (*issue.Issue, error) {
	return r.find(func(is sqlc.Issues) bool { return is.UserID == userID && is.BookID == bookID })
}

func (r *issueRepo) FindByUsernameAndBook(_ context.Context, username string, bookID uuid.UUID) (*issue.Issue, error) {
	return r.find(func(is sqlc.Issues) bool { return is.UserUsername == username && is.BookID == bookID })
}

func (r *issueRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*issue.Issue, error) {
	return converter.IssuesFromRows(r.st.issueRows(func(is sqlc.Issues) bool { return is.UserID == userID }, byIssueDate)), nil
}

func (r *issueRepo) CountByBook(_ context.Context, bookID uuid.UUID) (int64, error) {
	var n int64
	for _, is := range r.st.issues {
		if is.BookID == bookID {
			n++
		}
	}
	return n, nil
}

func (r *issueRepo) UpdateRenewal(_ context.Context, i *issue.Issue) error {
	row, ok := r.st.issues[i.ID()]
	if !ok {
		return nil
	}
	row.ReturnDate = i.ReturnDate()
	row.IsRenewed = i.IsRenewed()
	r.st.issues[i.ID()] = row
	return nil
}

func (r *issueRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.st.issues[id]; !ok {
		return infra.NewNotFound("issue not found")
	}
	delete(r.st.issues, id)
	return nil
}

func (r *issueRepo) DeleteAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for id, is := range r.st.issues {
		if is.UserID == userID {
			delete(r.st.issues, id)
			n++
		}
	}
	return n, nil
}

func (r *issueRepo) PropagateUserInfo(_ context.Context, info issue.UserInfo) (int64, error) {
	var n int64
	for id, is := range r.st.issues {
		if is.UserID == info.ID {
			is.UserUsername = info.Username
			is.UserFullName = info.FullName
			r.st.issues[id] = is
			n++
		}
	}
	return n, nil
}

func (r *issueRepo) PropagateBookInfo(_ context.Context, info issue.BookInfo) (int64, error) {
	var n int64
	for id, is := range r.st.issues {
		if is.BookID == info.ID {
			is.BookTitle = info.Title
			is.BookAuthor = info.Author
			is.BookIsbn = info.ISBN
			is.BookCategory = info.Category
			is.BookStock = pgconv.IntToInt32(info.Stock)
			r.st.issues[id] = is
			n++
		}
	}
	return n, nil
}

type activityRepo struct{ st *state }

func (r *activityRepo) Append(_ context.Context, a *activity.Activity) error {
	r.st.activities = append(r.st.activities, sqlc.Activities(converter.ActivityToCreateParams(a)))
	return nil
}

func (r *activityRepo) DeleteAllForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	before := len(r.st.activities)
	r.st.activities = slices.DeleteFunc(r.st.activities, func(a sqlc.Activities) bool {
		return a.UserID == userID
	})
	return int64(before - len(r.st.activities)), nil
}

var (
	_ shared.BookRepository     = (*bookRepo)(nil)
	_ shared.UserRepository     = (*userRepo)(nil)
	_ shared.IssueRepository    = (*issueRepo)(nil)
	_ shared.ActivityRepository = (*activityRepo)(nil)
)
