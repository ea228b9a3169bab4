package commands

import (
	"library-admin/internal/domain/book"
	"library-admin/internal/domain/user"
	"library-admin/internal/infra"
	"library-admin/internal/pkg/errs"
)

// asNotFound replaces a repository not-found error with the domain sentinel.
func asNotFound(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}

// rejectionReason labels the lifecycle rejection counter.
func rejectionReason(err error) string {
	switch {
	case errs.Is(err, user.ErrUserFlagged):
		return "user_flagged"
	case errs.Is(err, user.ErrIssueLimitExceeded):
		return "issue_limit"
	case errs.Is(err, book.ErrOutOfStock):
		return "out_of_stock"
	case errs.Is(err, errs.ErrDuplicateIssue):
		return "duplicate_issue"
	case errs.IsAny(err, errs.ErrUserNotFound, errs.ErrBookNotFound, errs.ErrIssueNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrLockUnavailable):
		return "lock_unavailable"
	case errs.Is(err, errs.ErrDomainValidation):
		return "validation"
	default:
		return "error"
	}
}
