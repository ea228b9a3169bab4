//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"library-admin/internal/domain/activity"
	"library-admin/internal/handler/api"
	resdto "library-admin/internal/handler/dto/response"
	"library-admin/internal/usecase/queries"
	"library-admin/tests/common/builder"
	"library-admin/tests/common/httptest"
	queriesmock "library-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ActivityHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockActivities *queriesmock.MockActivityQueries
	mockDashboard  *queriesmock.MockDashboardQueries
	handler        *api.ActivityHandler
}

func (s *ActivityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockActivities = queriesmock.NewMockActivityQueries(s.mockCtrl)
	s.mockDashboard = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewActivityHandler(s.mockActivities, s.mockDashboard)

	admin := fakeAdminAuth()
	s.router.GET("/dashboard", admin, s.handler.Dashboard)
	s.router.GET("/activities", admin, s.handler.List)
	s.router.GET("/activities/feed", admin, s.handler.Feed)
}

func (s *ActivityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestActivityHandlerSuite(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}

func (s *ActivityHandlerTestSuite) TestDashboard() {
	s.mockDashboard.EXPECT().Get(gomock.Any(), "", 3).Return(&queries.DashboardView{
		Members:    4,
		Books:      12,
		Activities: 30,
		Page:       queries.PageInfo{Page: 3, PageSize: 10, TotalItems: 30, TotalPages: 3},
		Recent:     []*queries.ActivityView{builder.NewActivityBuilder().BuildView()},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard?page=3", nil, "admin-token")

	var body resdto.DashboardResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(4), body.Members)
	s.Equal(int64(12), body.Books)
	s.Equal(int64(30), body.Activities)
	s.Len(body.Recent, 1)
	s.Equal(3, body.Page.Page)
}

func (s *ActivityHandlerTestSuite) TestDashboard_SearchAndPaging() {
	s.Run("success: search value is passed through", func() {
		s.mockDashboard.EXPECT().Get(gomock.Any(), "9876543210", 0).Return(&queries.DashboardView{
			Page: queries.PageInfo{Page: 1, PageSize: 10},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard?search=9876543210", nil, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on page zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard?page=0", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ActivityHandlerTestSuite) TestList() {
	userID := uuid.New()

	s.Run("success: filters combine", func() {
		category := "Flag"
		want := queries.ActivityFilter{UserID: &userID, Category: &category}
		flag := builder.NewActivityBuilder().AsAdministrative(activity.CategoryFlag).BuildView()

		s.mockActivities.EXPECT().List(gomock.Any(), want, 1, 5).Return(&queries.ActivityPage{
			Items: []*queries.ActivityView{flag},
			Page:  queries.PageInfo{Page: 1, PageSize: 5, TotalItems: 1, TotalPages: 1},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/activities?userId="+userID.String()+"&category=Flag&page=1&pageSize=5", nil, "admin-token")

		var body resdto.ActivityPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Activities, 1)
		s.Equal("Flag", body.Activities[0].Category)
		s.Nil(body.Activities[0].BookID)
		s.Nil(body.Activities[0].IssueDate)
	})

	for _, query := range []string{"page=0", "pageSize=0", "pageSize=201"} {
		s.Run("error: 400 on "+query, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/activities?"+query, nil, "admin-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 400 on malformed userId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/activities?userId=42", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ActivityHandlerTestSuite) TestFeed() {
	s.Run("success: returns the next cursor", func() {
		items := []*queries.ActivityView{builder.NewActivityBuilder().BuildView()}
		s.mockActivities.EXPECT().
			Feed(gomock.Any(), queries.ActivityFilter{}, &queries.Cursor{After: "abc"}, 1).
			Return(items, &queries.Cursor{After: "def"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/activities/feed?limit=1&after=abc", nil, "admin-token")

		var body resdto.ActivityFeedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Activities, 1)
		s.Equal("def", body.NextCursor)
	})

	s.Run("error: 400 on a bad cursor", func() {
		s.mockActivities.EXPECT().Feed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/activities/feed?after=%25%25", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
