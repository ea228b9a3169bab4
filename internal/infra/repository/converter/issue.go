package converter

import (
	"library-admin/internal/domain/issue"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"
)

func IssueFromRow(row sqlc.Issues) *issue.Issue {
	return issue.ReconstructIssue(
		row.ID,
		issue.BookInfo{
			ID:       row.BookID,
			Title:    row.BookTitle,
			Author:   row.BookAuthor,
			ISBN:     row.BookIsbn,
			Category: row.BookCategory,
			Stock:    int(row.BookStock),
		},
		issue.UserInfo{
			ID:       row.UserID,
			Username: row.UserUsername,
			FullName: row.UserFullName,
		},
		row.IssueDate,
		row.ReturnDate,
		row.IsRenewed,
	)
}

func IssuesFromRows(rows []sqlc.Issues) []*issue.Issue {
	out := make([]*issue.Issue, 0, len(rows))
	for _, row := range rows {
		out = append(out, IssueFromRow(row))
	}
	return out
}

func IssueToCreateParams(i *issue.Issue) sqlc.CreateIssueParams {
	b, u := i.Book(), i.User()
	return sqlc.CreateIssueParams{
		ID:           i.ID(),
		BookID:       b.ID,
		BookTitle:    b.Title,
		BookAuthor:   b.Author,
		BookIsbn:     b.ISBN,
		BookCategory: b.Category,
		BookStock:    pgconv.IntToInt32(b.Stock),
		UserID:       u.ID,
		UserUsername: u.Username,
		UserFullName: u.FullName,
		IssueDate:    i.IssueDate(),
		ReturnDate:   i.ReturnDate(),
		IsRenewed:    i.IsRenewed(),
	}
}

func UserInfoToPropagateParams(info issue.UserInfo) sqlc.PropagateUserToIssuesParams {
	return sqlc.PropagateUserToIssuesParams{
		UserID:       info.ID,
		UserUsername: info.Username,
		UserFullName: info.FullName,
	}
}
