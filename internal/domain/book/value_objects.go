package book

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidISBN   = errors.New("isbn must have 10 or 13 digits")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyAuthor   = errors.New("author cannot be empty")
	ErrEmptyCategory = errors.New("category cannot be empty")
	ErrNegativeStock = errors.New("stock cannot be negative")
	ErrTitleTooLong  = errors.New("title exceeds maximum length")
)

const MaxTitleLength = 255

type ISBN struct {
	value string
}

// NewISBN accepts hyphenated or spaced input. ISBN-10 may end in X.
func NewISBN(s string) (ISBN, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	v := b.String()

	switch len(v) {
	case 10:
		if !allDigits(v[:9]) || !(unicode.IsDigit(rune(v[9])) || v[9] == 'X') {
			return ISBN{}, ErrInvalidISBN
		}
	case 13:
		if !allDigits(v) {
			return ISBN{}, ErrInvalidISBN
		}
	default:
		return ISBN{}, ErrInvalidISBN
	}
	return ISBN{value: v}, nil
}

func (i ISBN) String() string {
	return i.value
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func requireText(s string, err error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", err
	}
	return s, nil
}
