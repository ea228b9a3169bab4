package shared

import (
	"context"

	"library-admin/internal/domain/activity"
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/issue"
	"library-admin/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for lookups outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Books() BookRepository
	Users() UserRepository
	Issues() IssueRepository
	Activities() ActivityRepository
}

// CommandReads resolve natural keys to ids before locks are taken.
type CommandReads interface {
	BookIDByISBN(ctx context.Context, isbn string) (uuid.UUID, error)
	UserIDByUsername(ctx context.Context, username string) (uuid.UUID, error)
}

// Catalog Store
type BookRepository interface {
	Create(ctx context.Context, b *book.Book) error
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*book.Book, error)
	Update(ctx context.Context, b *book.Book) error
	// DecrementStock is guarded on stock > 0 in storage and returns the
	// stored stock after the write.
	DecrementStock(ctx context.Context, b *book.Book) (int, error)
	IncrementStock(ctx context.Context, b *book.Book) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User Directory
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	// FindByID locks the row for the rest of the transaction.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	UpdateProfile(ctx context.Context, u *user.User) error
	UpdateIssuedBooks(ctx context.Context, u *user.User) error
	UpdateFlag(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Issue Ledger
type IssueRepository interface {
	Create(ctx context.Context, i *issue.Issue) error
	FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*issue.Issue, error)
	FindByUsernameAndBook(ctx context.Context, username string, bookID uuid.UUID) (*issue.Issue, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*issue.Issue, error)
	CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error)
	UpdateRenewal(ctx context.Context, i *issue.Issue) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	PropagateUserInfo(ctx context.Context, info issue.UserInfo) (int64, error)
	PropagateBookInfo(ctx context.Context, info issue.BookInfo) (int64, error)
}

// Activity Log
type ActivityRepository interface {
	Append(ctx context.Context, a *activity.Activity) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
