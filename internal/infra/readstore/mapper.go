package readstore

import (
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
	"library-admin/internal/usecase/queries"
)

func toBookView(row sqlc.Books) *queries.BookView {
	return &queries.BookView{
		ID:          row.ID,
		Title:       row.Title,
		Author:      row.Author,
		ISBN:        row.Isbn,
		Category:    row.Category,
		Description: row.Description,
		Stock:       int(row.Stock),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:            row.ID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Username:      row.Username,
		Email:         row.Email,
		Gender:        row.Gender,
		Address:       row.Address,
		ViolationFlag: row.ViolationFlag,
		IssuedBookIDs: row.IssuedBookIds,
		JoinedAt:      row.JoinedAt,
	}
}

func toUserViews(rows []sqlc.Users) []*queries.UserView {
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out
}

func toIssueView(row sqlc.Issues) *queries.IssueView {
	return &queries.IssueView{
		ID:           row.ID,
		BookID:       row.BookID,
		BookTitle:    row.BookTitle,
		BookAuthor:   row.BookAuthor,
		BookISBN:     row.BookIsbn,
		BookCategory: row.BookCategory,
		BookStock:    int(row.BookStock),
		UserID:       row.UserID,
		Username:     row.UserUsername,
		UserFullName: row.UserFullName,
		IssueDate:    row.IssueDate,
		ReturnDate:   row.ReturnDate,
		IsRenewed:    row.IsRenewed,
	}
}

func toIssueViews(rows []sqlc.Issues) []*queries.IssueView {
	out := make([]*queries.IssueView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toIssueView(row))
	}
	return out
}

func toActivityView(row sqlc.Activities) *queries.ActivityView {
	return &queries.ActivityView{
		ID:           row.ID,
		Category:     row.Category,
		BookID:       pgconv.UUIDPtrFromPgtype(row.BookID),
		BookTitle:    pgconv.StringPtrFromPgtype(row.BookTitle),
		IssueID:      pgconv.UUIDPtrFromPgtype(row.IssueID),
		IssueDate:    pgconv.TimePtrFromPgtype(row.IssueDate),
		ReturnDate:   pgconv.TimePtrFromPgtype(row.ReturnDate),
		UserID:       row.UserID,
		Username:     row.UserUsername,
		UserFullName: row.UserFullName,
		EntryTime:    row.EntryTime,
	}
}
