package converter

import (
	"library-admin/internal/domain/user"
	sqlc "library-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

func UserFromRow(row sqlc.Users) *user.User {
	return user.ReconstructUser(user.Record{
		ID:            row.ID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Username:      row.Username,
		Email:         row.Email,
		Gender:        row.Gender,
		Address:       row.Address,
		PasswordHash:  row.PasswordHash,
		Role:          user.Role(row.Role),
		ViolationFlag: row.ViolationFlag,
		IssuedBookIDs: row.IssuedBookIds,
		JoinedAt:      row.JoinedAt,
		UpdatedAt:     row.UpdatedAt,
	})
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	r := u.Record()
	ids := r.IssuedBookIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return sqlc.CreateUserParams{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Username:      r.Username,
		Email:         r.Email,
		Gender:        r.Gender,
		Address:       r.Address,
		PasswordHash:  r.PasswordHash,
		Role:          r.Role.String(),
		ViolationFlag: r.ViolationFlag,
		IssuedBookIds: ids,
		JoinedAt:      r.JoinedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func UserToProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Username:  u.Username().String(),
		Email:     u.Email().Value(),
		Gender:    u.Gender(),
		Address:   u.Address(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// UserToIssuedBooksParams never sends NULL; an empty list is stored as '{}'.
func UserToIssuedBooksParams(u *user.User) sqlc.UpdateUserIssuedBooksParams {
	ids := u.IssuedBookIDs()
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return sqlc.UpdateUserIssuedBooksParams{
		ID:            u.ID(),
		IssuedBookIds: ids,
		UpdatedAt:     u.UpdatedAt(),
	}
}
