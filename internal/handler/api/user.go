package api

import (
	"net/http"

	reqdto "library-admin/internal/handler/dto/request"
	resdto "library-admin/internal/handler/dto/response"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary List members
// @Description Members sorted by join date, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (1-based)"
// @Success 200 {object} resdto.UserPageResponse
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), q.PageNumber())
	if err != nil {
		abortWithUseCaseError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserPage(page))
}

// @Summary Search members
// @Description Match first name, last name, username or email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param value query string true "Search text"
// @Success 200 {array} resdto.UserResponse
// @Router /api/admin/users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	var q reqdto.SearchUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	items, err := h.q.Search(c.Request.Context(), q.Value)
	if err != nil {
		abortWithUseCaseError(c, err, "search users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": resdto.FromUserViews(items)})
}

// @Summary Member profile
// @Description Member with open issues and recent activities
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [get]
func (h *UserHandler) Profile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	p, err := h.q.Profile(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "user profile")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserProfile(p))
}

// @Summary Add member
// @Description Registers a member; the generated initial password is returned once
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Member"
// @Success 201 {object} resdto.CreatedUserResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.cmds.AddUser(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "add user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserResult(res))
}

// @Summary Update member
// @Description Partial update; open issues receive the new username and full name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Changed fields"
// @Success 200 {object} resdto.UserProfileResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	var req reqdto.UpdateUserRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr)
		return
	}
	if _, err = h.cmds.UpdateUser(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUseCaseError(c, err, "update user")
		return
	}
	p, err := h.q.Profile(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "load user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserProfile(p))
}

// @Summary Toggle violation flag
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.FlagResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/flag/toggle [post]
func (h *UserHandler) ToggleFlag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	res, err := h.cmds.ToggleFlag(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "toggle flag")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlagResult(res))
}

// @Summary Set violation flag
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.SetFlagRequest true "Flag"
// @Success 200 {object} resdto.FlagResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/flag [put]
func (h *UserHandler) SetFlag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	var req reqdto.SetFlagRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr)
		return
	}
	res, err := h.cmds.SetFlag(c.Request.Context(), id, *req.Flagged)
	if err != nil {
		abortWithUseCaseError(c, err, "set flag")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlagResult(res))
}

// @Summary Delete member
// @Description Removes the member with their issues and activities; held copies go back to stock
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.DeletedUserResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	res, err := h.cmds.DeleteUser(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "delete user")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeleteUserResult(res))
}
