package errs

import "errors"

// Sentinel errors shared across the usecase and handler layers.
var (
	// Not found
	ErrBookNotFound  = errors.New("book not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrIssueNotFound = errors.New("issue not found")

	// Lifecycle policy
	ErrDuplicateIssue = errors.New("book already issued to user")
	ErrDuplicateBook  = errors.New("book with this isbn already exists")
	ErrDuplicateUser  = errors.New("user with this username already exists")
	ErrBookOnLoan     = errors.New("book has open issues")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Concurrency
	ErrLockUnavailable = errors.New("entity is locked by another request")

	// Consistency
	ErrSnapshotPropagation = errors.New("snapshot propagation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
