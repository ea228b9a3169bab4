package api

import (
	"log/slog"
	"net/http"

	"library-admin/internal/domain/book"
	"library-admin/internal/domain/user"
	"library-admin/internal/handler/httperr"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidID = httperr.Plain("invalid id")

// abortWithUseCaseError maps the usecase error taxonomy onto HTTP: policy
// rejections are 409, validation 422, missing records 404.
func abortWithUseCaseError(c *gin.Context, err error, op string) {
	switch {
	case errs.IsAny(err, errs.ErrBookNotFound, errs.ErrUserNotFound, errs.ErrIssueNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMessage(err), nil)
	case errs.Is(err, user.ErrUserFlagged):
		httperr.AbortWithError(c, http.StatusConflict, err, "User is flagged for a violation", nil)
	case errs.Is(err, user.ErrIssueLimitExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "User already holds the maximum number of books", nil)
	case errs.Is(err, book.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Book is out of stock", nil)
	case errs.Is(err, errs.ErrDuplicateIssue):
		httperr.AbortWithError(c, http.StatusConflict, err, "Book is already issued to this user", nil)
	case errs.Is(err, errs.ErrDuplicateBook):
		httperr.AbortWithError(c, http.StatusConflict, err, "A book with this ISBN already exists", nil)
	case errs.Is(err, errs.ErrDuplicateUser):
		httperr.AbortWithError(c, http.StatusConflict, err, "A user with this username already exists", nil)
	case errs.Is(err, errs.ErrBookOnLoan):
		httperr.AbortWithError(c, http.StatusConflict, err, "Book has open issues", nil)
	case errs.Is(err, errs.ErrLockUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Record is busy, try again", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", gin.H{"reason": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), op+" failed",
			"error", err,
			"integrity", errs.Is(err, errs.ErrSnapshotPropagation))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func notFoundMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrBookNotFound):
		return "Book not found"
	case errs.Is(err, errs.ErrUserNotFound):
		return "User not found"
	default:
		return "Issue not found"
	}
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}
