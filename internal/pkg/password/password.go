package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInsufficientSeed = errors.New("first name and username are too short to derive a password")
)

const DefaultCost = bcrypt.DefaultCost

const (
	firstNamePrefixLen = 3
	usernameSuffixLen  = 4
)

// Initial derives the first-login password handed to a new member: the first
// three letters of the first name in lower case followed by the last four
// characters of the username.
func Initial(firstName, username string) (string, error) {
	letters := make([]rune, 0, firstNamePrefixLen)
	for _, r := range strings.TrimSpace(firstName) {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, unicode.ToLower(r))
		if len(letters) == firstNamePrefixLen {
			break
		}
	}
	if len(letters) < firstNamePrefixLen || len(username) < usernameSuffixLen {
		return "", ErrInsufficientSeed
	}
	return string(letters) + username[len(username)-usernameSuffixLen:], nil
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
