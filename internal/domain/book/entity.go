package book

import (
	"time"
	"unicode/utf8"

	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOutOfStock = errs.New("book is out of stock")

type Book struct {
	id          uuid.UUID
	title       string
	author      string
	isbn        ISBN
	category    string
	description string
	stock       int
	createdAt   time.Time
	updatedAt   time.Time
}

// Details carries the administrator-editable fields of a book.
type Details struct {
	Title       string
	Author      string
	ISBN        string
	Category    string
	Description string
	Stock       int
}

func NewBook(d Details, now time.Time) (*Book, error) {
	b := &Book{id: uuid.New(), createdAt: now}
	if err := b.apply(d, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBook(id uuid.UUID, title, author, isbn, category, description string, stock int, createdAt, updatedAt time.Time) *Book {
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		isbn:        ISBN{value: isbn},
		category:    category,
		description: description,
		stock:       stock,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Book) ID() uuid.UUID        { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() ISBN           { return b.isbn }
func (b *Book) Category() string     { return b.category }
func (b *Book) Description() string  { return b.description }
func (b *Book) Stock() int           { return b.stock }
func (b *Book) CreatedAt() time.Time { return b.createdAt }
func (b *Book) UpdatedAt() time.Time { return b.updatedAt }

func (b *Book) Available() bool { return b.stock > 0 }

// DecrementStock takes one copy off the shelf. Stock never goes below zero.
func (b *Book) DecrementStock(now time.Time) error {
	if b.stock <= 0 {
		return ErrOutOfStock
	}
	b.stock--
	b.updatedAt = now
	return nil
}

func (b *Book) IncrementStock(now time.Time) {
	b.stock++
	b.updatedAt = now
}

// UpdateDetails replaces every editable field. snapshotChanged reports
// whether any field copied into open issues was modified.
func (b *Book) UpdateDetails(d Details, now time.Time) (snapshotChanged bool, err error) {
	before := b.Details()
	if err := b.apply(d, now); err != nil {
		return false, err
	}
	after := b.Details()
	snapshotChanged = before.Title != after.Title ||
		before.Author != after.Author ||
		before.ISBN != after.ISBN ||
		before.Category != after.Category ||
		before.Stock != after.Stock
	return snapshotChanged, nil
}

func (b *Book) apply(d Details, now time.Time) error {
	title, err := requireText(d.Title, ErrEmptyTitle)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errs.Mark(ErrTitleTooLong, errs.ErrDomainValidation)
	}
	author, err := requireText(d.Author, ErrEmptyAuthor)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	category, err := requireText(d.Category, ErrEmptyCategory)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	isbn, err := NewISBN(d.ISBN)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if d.Stock < 0 {
		return errs.Mark(ErrNegativeStock, errs.ErrDomainValidation)
	}

	b.title = title
	b.author = author
	b.category = category
	b.isbn = isbn
	b.description = d.Description
	b.stock = d.Stock
	b.updatedAt = now
	return nil
}

// Details returns the current editable fields, useful as a patch base.
func (b *Book) Details() Details {
	return Details{
		Title:       b.title,
		Author:      b.author,
		ISBN:        b.isbn.String(),
		Category:    b.category,
		Description: b.description,
		Stock:       b.stock,
	}
}
