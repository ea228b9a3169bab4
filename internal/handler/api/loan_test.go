//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"library-admin/internal/domain/book"
	"library-admin/internal/domain/user"
	"library-admin/internal/handler/api"
	resdto "library-admin/internal/handler/dto/response"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/usecase/queries"
	"library-admin/tests/common/builder"
	"library-admin/tests/common/httptest"
	"library-admin/tests/common/testutil"
	commandsmock "library-admin/tests/mock/commands"
	queriesmock "library-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoanCommands
	mockQueries  *queriesmock.MockIssueQueries
	handler      *api.LoanHandler
}

func (s *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockIssueQueries(s.mockCtrl)
	s.handler = api.NewLoanHandler(s.mockCommands, s.mockQueries)

	admin := fakeAdminAuth()
	s.router.GET("/issues", admin, s.handler.ListOpen)
	s.router.POST("/issues", admin, s.handler.Issue)
	s.router.POST("/issues/renew", admin, s.handler.Renew)
	s.router.POST("/issues/return", admin, s.handler.Return)
}

func (s *LoanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoanHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}

// ================================================================================
// TestIssue
// ================================================================================

func (s *LoanHandlerTestSuite) TestIssue() {
	url := "/issues"
	reqBody := map[string]any{"username": "9876543210", "isbn": "9780134190440"}
	result := builder.NewIssueBuilder().BuildResult()

	s.Run("success: returns 201 with the new issue", func() {
		s.mockCommands.EXPECT().IssueBook(gomock.Any(), "9876543210", "9780134190440").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")

		var body resdto.LoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.IssueID, body.IssueID)
		s.Equal(result.RemainingStock, body.RemainingStock)
		s.True(result.ReturnDate.Equal(body.ReturnDate))
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"username", "isbn"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"unknown user", errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
			{"unknown book", errs.ErrBookNotFound, http.StatusNotFound, "Book not found"},
			{"flagged", user.ErrUserFlagged, http.StatusConflict, "flagged"},
			{"limit", user.ErrIssueLimitExceeded, http.StatusConflict, "maximum"},
			{"out of stock", book.ErrOutOfStock, http.StatusConflict, "out of stock"},
			{"duplicate", errs.ErrDuplicateIssue, http.StatusConflict, "already issued"},
			{"lock busy", errs.ErrLockUnavailable, http.StatusConflict, "busy"},
			{"bad isbn", errs.Mark(book.ErrInvalidISBN, errs.ErrDomainValidation), http.StatusUnprocessableEntity, "Validation failed"},
			{"database", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueBook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errs.Wrap(tc.err, "issue book")).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestRenew / TestReturn
// ================================================================================

func (s *LoanHandlerTestSuite) TestRenew() {
	bookID := uuid.New()
	reqBody := map[string]any{"username": "9876543210", "bookId": bookID.String()}

	s.Run("success: returns the extended issue", func() {
		result := builder.NewIssueBuilder().AsRenewed().BuildResult()
		s.mockCommands.EXPECT().RenewBook(gomock.Any(), "9876543210", bookID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/issues/renew", reqBody, "admin-token")

		var body resdto.LoanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsRenewed)
	})

	s.Run("error: 400 when bookId is not a uuid", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("bookId", "not-a-uuid"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/issues/renew", body, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when no open issue exists", func() {
		s.mockCommands.EXPECT().RenewBook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrIssueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/issues/renew", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Issue not found")
	})
}

func (s *LoanHandlerTestSuite) TestReturn() {
	bookID := uuid.New()
	reqBody := map[string]any{"username": "9876543210", "bookId": bookID.String()}

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().ReturnBook(gomock.Any(), "9876543210", bookID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/issues/return", reqBody, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the user does not hold the book", func() {
		s.mockCommands.EXPECT().ReturnBook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Wrap(errs.ErrIssueNotFound, user.ErrBookNotHeld.Error())).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/issues/return", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Issue not found")
	})
}

// ================================================================================
// TestListOpen
// ================================================================================

func (s *LoanHandlerTestSuite) TestListOpen() {
	views := []*queries.IssueView{
		builder.NewIssueBuilder().BuildView(),
		builder.NewIssueBuilder().AsRenewed().BuildView(),
	}

	s.Run("success: filters by username", func() {
		s.mockQueries.EXPECT().OpenIssues(gomock.Any(), "9876543210").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/issues?username=9876543210", nil, "admin-token")

		var body struct {
			Issues []resdto.IssueResponse `json:"issues"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Issues, 2)
		s.Equal(views[0].ID, body.Issues[0].ID)
		s.Equal(views[0].BookTitle, body.Issues[0].BookTitle)
		s.True(body.Issues[1].IsRenewed)
	})

	s.Run("success: no username lists everything", func() {
		s.mockQueries.EXPECT().OpenIssues(gomock.Any(), "").Return([]*queries.IssueView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/issues", nil, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
