//go:build unit

package user_test

import (
	"testing"
	"time"

	"library-admin/internal/domain/user"
	"library-admin/internal/pkg/errs"
	"library-admin/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a member from a valid profile", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, user.RoleMember, actual.Role())
		assert.Equal(t, "Priya Sharma", actual.FullName())
		assert.False(t, actual.ViolationFlag())
		assert.Zero(t, actual.IssuedCount())
		if diff := cmp.Diff(b.Profile(), actual.Profile()); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("username", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "ten digits OK", mutate: func(b *builder.UserBuilder) { b.WithUsername("0123456789") }},
			{name: "surrounding spaces trimmed", mutate: func(b *builder.UserBuilder) { b.WithUsername(" 0123456789 ") }},
			{name: "nine digits NG", mutate: func(b *builder.UserBuilder) { b.WithUsername("012345678") }, errIs: user.ErrInvalidUsername},
			{name: "letters NG", mutate: func(b *builder.UserBuilder) { b.WithUsername("01234abcde") }, errIs: user.ErrInvalidUsername},
		})
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid OK", mutate: func(b *builder.UserBuilder) { b.WithEmail("member@library.org") }},
			{name: "empty NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing @ NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("member.library.org") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("names", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name NG", mutate: func(b *builder.UserBuilder) { b.WithName("  ", "Sharma") }, errIs: user.ErrEmptyFirstName},
			{name: "blank last name NG", mutate: func(b *builder.UserBuilder) { b.WithName("Priya", "") }, errIs: user.ErrEmptyLastName},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			u, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, u)
		})
	}
}

func TestUser_IssueLimit(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	for i := 0; i < user.MaxIssuedBooks; i++ {
		require.NoError(t, u.AddIssuedBook(uuid.New(), now))
	}
	assert.ErrorIs(t, u.CanIssue(), user.ErrIssueLimitExceeded)
	assert.ErrorIs(t, u.AddIssuedBook(uuid.New(), now), user.ErrIssueLimitExceeded)
	assert.Equal(t, user.MaxIssuedBooks, u.IssuedCount())
}

func TestUser_FlagCheckedBeforeLimit(t *testing.T) {
	held := make([]uuid.UUID, user.MaxIssuedBooks)
	for i := range held {
		held[i] = uuid.New()
	}
	u, err := builder.NewUserBuilder().WithIssuedBooks(held...).BuildDomain()
	require.NoError(t, err)

	u.SetFlag(true, time.Now())
	assert.ErrorIs(t, u.CanIssue(), user.ErrUserFlagged)

	u.SetFlag(false, time.Now())
	assert.ErrorIs(t, u.CanIssue(), user.ErrIssueLimitExceeded)
}

func TestUser_RemoveIssuedBook(t *testing.T) {
	now := time.Now()
	bookID := uuid.New()
	other := uuid.New()
	u, err := builder.NewUserBuilder().WithIssuedBooks(bookID, other).BuildDomain()
	require.NoError(t, err)

	assert.True(t, u.HoldsBook(bookID))
	require.NoError(t, u.RemoveIssuedBook(bookID, now))
	assert.False(t, u.HoldsBook(bookID))
	assert.Equal(t, []uuid.UUID{other}, u.IssuedBookIDs())

	assert.ErrorIs(t, u.RemoveIssuedBook(bookID, now), user.ErrBookNotHeld)
}

func TestUser_IssuedBookIDsIsACopy(t *testing.T) {
	u, err := builder.NewUserBuilder().WithIssuedBooks(uuid.New()).BuildDomain()
	require.NoError(t, err)

	ids := u.IssuedBookIDs()
	ids[0] = uuid.Nil
	assert.NotEqual(t, uuid.Nil, u.IssuedBookIDs()[0])
}

func TestUser_UpdateProfile(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name            string
		mutate          func(*user.Profile)
		identityChanged bool
	}{
		{name: "address only", mutate: func(p *user.Profile) { p.Address = "7 Park Street" }},
		{name: "email only", mutate: func(p *user.Profile) { p.Email = "new@example.com" }},
		{name: "first name", mutate: func(p *user.Profile) { p.FirstName = "Anika" }, identityChanged: true},
		{name: "username", mutate: func(p *user.Profile) { p.Username = "1112223334" }, identityChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			p := u.Profile()
			tt.mutate(&p)
			changed, err := u.UpdateProfile(p, now)
			require.NoError(t, err)
			assert.Equal(t, tt.identityChanged, changed)
			assert.Equal(t, p, u.Profile())
		})
	}

	t.Run("invalid profile leaves the user untouched", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		before := u.Profile()

		p := before
		p.Username = "abc"
		_, err = u.UpdateProfile(p, now)
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
		assert.Equal(t, before, u.Profile())
	})
}

func TestUser_RecordRoundTrip(t *testing.T) {
	u, err := builder.NewUserBuilder().WithIssuedBooks(uuid.New()).AsFlagged().BuildDomain()
	require.NoError(t, err)

	rebuilt := user.ReconstructUser(u.Record())
	if diff := cmp.Diff(u.Record(), rebuilt.Record()); diff != "" {
		t.Errorf("Record mismatch (-want +got):\n%s", diff)
	}
}
