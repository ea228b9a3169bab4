package converter

import (
	"library-admin/internal/domain/activity"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ActivityToCreateParams(a *activity.Activity) sqlc.CreateActivityParams {
	u := a.User()
	params := sqlc.CreateActivityParams{
		ID:           a.ID(),
		Category:     a.Category().String(),
		UserID:       u.ID,
		UserUsername: u.Username,
		UserFullName: u.FullName,
		EntryTime:    a.EntryTime(),
	}

	if b := a.Book(); b != nil {
		params.BookID = pgconv.UUIDToPgtype(b.ID)
		params.BookTitle = pgconv.StringToPgtype(b.Title)
	} else {
		params.BookID = pgtype.UUID{Valid: false}
		params.BookTitle = pgtype.Text{Valid: false}
	}

	if t := a.Time(); t != nil {
		params.IssueID = pgconv.UUIDToPgtype(t.IssueID)
		params.IssueDate = pgconv.TimeToPgtype(t.IssueDate)
		params.ReturnDate = pgconv.TimeToPgtype(t.ReturnDate)
	}

	return params
}

// ActivityFromRow rebuilds the entry; book and time refs are present only when
// their columns are non-null.
func ActivityFromRow(row sqlc.Activities) *activity.Activity {
	var ref *activity.BookRef
	if row.BookID.Valid {
		ref = &activity.BookRef{ID: row.BookID.Bytes, Title: row.BookTitle.String}
	}
	var tr *activity.TimeRef
	if row.IssueID.Valid {
		tr = &activity.TimeRef{
			IssueID:    row.IssueID.Bytes,
			IssueDate:  pgconv.TimeFromPgtype(row.IssueDate),
			ReturnDate: pgconv.TimeFromPgtype(row.ReturnDate),
		}
	}
	return activity.Reconstruct(
		row.ID,
		activity.Category(row.Category),
		ref,
		tr,
		activity.UserSnapshot{ID: row.UserID, Username: row.UserUsername, FullName: row.UserFullName},
		row.EntryTime,
	)
}
