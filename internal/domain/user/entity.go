package user

import (
	"slices"
	"strings"
	"time"

	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxIssuedBooks is the number of copies a member may hold at once.
const MaxIssuedBooks = 5

var (
	ErrUserFlagged        = errs.New("user is flagged for a violation")
	ErrIssueLimitExceeded = errs.New("user already holds the maximum number of books")
	ErrBookNotHeld        = errs.New("user does not hold this book")
)

type User struct {
	id            uuid.UUID
	firstName     string
	lastName      string
	username      Username
	email         Email
	gender        string
	address       string
	passwordHash  string
	role          Role
	violationFlag bool
	issuedBookIDs []uuid.UUID
	joinedAt      time.Time
	updatedAt     time.Time
}

// Profile carries the administrator-editable identity fields.
type Profile struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Gender    string
	Address   string
}

// Record is the persisted form of a user, used to rebuild the aggregate.
type Record struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Username      string
	Email         string
	Gender        string
	Address       string
	PasswordHash  string
	Role          Role
	ViolationFlag bool
	IssuedBookIDs []uuid.UUID
	JoinedAt      time.Time
	UpdatedAt     time.Time
}

func NewMember(p Profile, passwordHash string, now time.Time) (*User, error) {
	u := &User{
		id:           uuid.New(),
		passwordHash: passwordHash,
		role:         RoleMember,
		joinedAt:     now,
	}
	if _, err := u.applyProfile(p, now); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructUser(r Record) *User {
	return &User{
		id:            r.ID,
		firstName:     r.FirstName,
		lastName:      r.LastName,
		username:      Username{value: r.Username},
		email:         Email{value: r.Email},
		gender:        r.Gender,
		address:       r.Address,
		passwordHash:  r.PasswordHash,
		role:          r.Role,
		violationFlag: r.ViolationFlag,
		issuedBookIDs: slices.Clone(r.IssuedBookIDs),
		joinedAt:      r.JoinedAt,
		updatedAt:     r.UpdatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) FirstName() string      { return u.firstName }
func (u *User) LastName() string       { return u.lastName }
func (u *User) Username() Username     { return u.username }
func (u *User) Email() Email           { return u.email }
func (u *User) Gender() string         { return u.gender }
func (u *User) Address() string        { return u.address }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) ViolationFlag() bool    { return u.violationFlag }
func (u *User) JoinedAt() time.Time    { return u.joinedAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }
func (u *User) IssuedCount() int       { return len(u.issuedBookIDs) }
func (u *User) IssuedBookIDs() []uuid.UUID {
	return slices.Clone(u.issuedBookIDs)
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) Record() Record {
	return Record{
		ID:            u.id,
		FirstName:     u.firstName,
		LastName:      u.lastName,
		Username:      u.username.String(),
		Email:         u.email.Value(),
		Gender:        u.gender,
		Address:       u.address,
		PasswordHash:  u.passwordHash,
		Role:          u.role,
		ViolationFlag: u.violationFlag,
		IssuedBookIDs: slices.Clone(u.issuedBookIDs),
		JoinedAt:      u.joinedAt,
		UpdatedAt:     u.updatedAt,
	}
}

// CanIssue checks the flag before the limit; a flagged user at the limit
// reports ErrUserFlagged.
func (u *User) CanIssue() error {
	if u.violationFlag {
		return ErrUserFlagged
	}
	if len(u.issuedBookIDs) >= MaxIssuedBooks {
		return ErrIssueLimitExceeded
	}
	return nil
}

func (u *User) HoldsBook(bookID uuid.UUID) bool {
	return slices.Contains(u.issuedBookIDs, bookID)
}

func (u *User) AddIssuedBook(bookID uuid.UUID, now time.Time) error {
	if err := u.CanIssue(); err != nil {
		return err
	}
	u.issuedBookIDs = append(u.issuedBookIDs, bookID)
	u.updatedAt = now
	return nil
}

// RemoveIssuedBook drops the first occurrence of bookID, leaving any
// duplicates in place.
func (u *User) RemoveIssuedBook(bookID uuid.UUID, now time.Time) error {
	idx := slices.Index(u.issuedBookIDs, bookID)
	if idx < 0 {
		return ErrBookNotHeld
	}
	u.issuedBookIDs = slices.Delete(u.issuedBookIDs, idx, idx+1)
	u.updatedAt = now
	return nil
}

func (u *User) SetFlag(flagged bool, now time.Time) {
	u.violationFlag = flagged
	u.updatedAt = now
}

// UpdateProfile replaces the identity fields. identityChanged reports whether
// the username or full name changed, which requires snapshot propagation.
func (u *User) UpdateProfile(p Profile, now time.Time) (identityChanged bool, err error) {
	return u.applyProfile(p, now)
}

func (u *User) applyProfile(p Profile, now time.Time) (bool, error) {
	firstName := strings.TrimSpace(p.FirstName)
	if firstName == "" {
		return false, errs.Mark(ErrEmptyFirstName, errs.ErrDomainValidation)
	}
	lastName := strings.TrimSpace(p.LastName)
	if lastName == "" {
		return false, errs.Mark(ErrEmptyLastName, errs.ErrDomainValidation)
	}
	username, err := NewUsername(p.Username)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}

	oldName, oldUsername := u.FullName(), u.username
	u.firstName = firstName
	u.lastName = lastName
	u.username = username
	u.email = email
	u.gender = strings.TrimSpace(p.Gender)
	u.address = strings.TrimSpace(p.Address)
	u.updatedAt = now

	return oldName != u.FullName() || oldUsername != u.username, nil
}

func (u *User) Profile() Profile {
	return Profile{
		FirstName: u.firstName,
		LastName:  u.lastName,
		Username:  u.username.String(),
		Email:     u.email.Value(),
		Gender:    u.gender,
		Address:   u.address,
	}
}
