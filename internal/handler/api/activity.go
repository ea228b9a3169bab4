package api

import (
	"net/http"

	reqdto "library-admin/internal/handler/dto/request"
	resdto "library-admin/internal/handler/dto/response"
	"library-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activities queries.ActivityQueries
	dashboard  queries.DashboardQueries
}

func NewActivityHandler(activities queries.ActivityQueries, dashboard queries.DashboardQueries) *ActivityHandler {
	return &ActivityHandler{activities: activities, dashboard: dashboard}
}

// @Summary Dashboard
// @Description Member, book and activity counts with a page of recent activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param search query string false "Username or activity category"
// @Param page query int false "Page (1-based)"
// @Success 200 {object} resdto.DashboardResponse
// @Router /api/admin/dashboard [get]
func (h *ActivityHandler) Dashboard(c *gin.Context) {
	var q reqdto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	d, err := h.dashboard.Get(c.Request.Context(), q.Search, q.PageNumber())
	if err != nil {
		abortWithUseCaseError(c, err, "dashboard")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(d))
}

// @Summary List activities
// @Description Reverse-chronological audit entries; filters combine
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param userId query string false "User ID"
// @Param username query string false "Member username"
// @Param category query string false "Issue, Renew, Return, Flag or Unflag"
// @Param page query int false "Page (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} resdto.ActivityPageResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	var q reqdto.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	page, err := h.activities.List(c.Request.Context(), filter, q.PageNumber(), q.Size())
	if err != nil {
		abortWithUseCaseError(c, err, "list activities")
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityPage(page))
}

// @Summary Activity feed
// @Description Keyset-paginated activities for infinite scrolling
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param userId query string false "User ID"
// @Param username query string false "Member username"
// @Param category query string false "Issue, Renew, Return, Flag or Unflag"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ActivityFeedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/activities/feed [get]
func (h *ActivityHandler) Feed(c *gin.Context) {
	var q reqdto.ActivityFeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	items, next, err := h.activities.Feed(c.Request.Context(), filter, q.Cursor(), q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "activity feed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromActivityFeed(items, next))
}
