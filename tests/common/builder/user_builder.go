//go:build unit || e2e

package builder

import (
	"time"

	"library-admin/internal/domain/user"
	reqdto "library-admin/internal/handler/dto/request"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	FirstName    string
	LastName     string
	Username     string
	Email        string
	Gender       string
	Address      string
	PasswordHash string
	Flagged      bool
	IssuedBooks  []uuid.UUID
	JoinedAt     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FirstName:    "Priya",
		LastName:     "Sharma",
		Username:     "9876543210",
		Email:        "priya@example.com",
		Gender:       "female",
		Address:      "12 MG Road, Pune",
		PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		JoinedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) Profile() user.Profile {
	return user.Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Gender:    u.Gender,
		Address:   u.Address,
	}
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	m, err := user.NewMember(u.Profile(), u.PasswordHash, u.JoinedAt)
	if err != nil {
		return nil, err
	}
	for _, id := range u.IssuedBooks {
		if err := m.AddIssuedBook(id, u.JoinedAt); err != nil {
			return nil, err
		}
	}
	m.SetFlag(u.Flagged, u.JoinedAt)
	return m, nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	ids := u.IssuedBooks
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return sqlc.Users{
		ID:            uuid.New(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Email:         u.Email,
		Gender:        u.Gender,
		Address:       u.Address,
		PasswordHash:  u.PasswordHash,
		Role:          user.RoleMember.String(),
		ViolationFlag: u.Flagged,
		IssuedBookIds: ids,
		JoinedAt:      u.JoinedAt,
		UpdatedAt:     u.JoinedAt,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:            uuid.New(),
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Email:         u.Email,
		Gender:        u.Gender,
		Address:       u.Address,
		ViolationFlag: u.Flagged,
		IssuedBookIDs: u.IssuedBooks,
		JoinedAt:      u.JoinedAt,
	}
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Gender:    u.Gender,
		Address:   u.Address,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithIssuedBooks(ids ...uuid.UUID) *UserBuilder {
	u.IssuedBooks = ids
	return u
}

func (u *UserBuilder) AsFlagged() *UserBuilder {
	u.Flagged = true
	return u
}
