package api

import (
	"net/http"

	reqdto "library-admin/internal/handler/dto/request"
	resdto "library-admin/internal/handler/dto/response"
	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	cmds commands.LoanCommands
	q    queries.IssueQueries
}

func NewLoanHandler(cmds commands.LoanCommands, q queries.IssueQueries) *LoanHandler {
	return &LoanHandler{cmds: cmds, q: q}
}

// @Summary Issue book
// @Description Issue one copy of a book to a member
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueBookRequest true "Issue request"
// @Success 201 {object} resdto.LoanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/issues [post]
func (h *LoanHandler) Issue(c *gin.Context) {
	var req reqdto.IssueBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.cmds.IssueBook(c.Request.Context(), req.Username, req.ISBN)
	if err != nil {
		abortWithUseCaseError(c, err, "issue book")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueResult(res))
}

// @Summary Renew issue
// @Description Extend the return date of an open issue by seven days
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LoanRequest true "Renew request"
// @Success 200 {object} resdto.LoanResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/issues/renew [post]
func (h *LoanHandler) Renew(c *gin.Context) {
	var req reqdto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.cmds.RenewBook(c.Request.Context(), req.Username, req.BookID)
	if err != nil {
		abortWithUseCaseError(c, err, "renew book")
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssueResult(res))
}

// @Summary Return book
// @Description Close an open issue and put the copy back in stock
// @Tags issues
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.LoanRequest true "Return request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/issues/return [post]
func (h *LoanHandler) Return(c *gin.Context) {
	var req reqdto.LoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if err := h.cmds.ReturnBook(c.Request.Context(), req.Username, req.BookID); err != nil {
		abortWithUseCaseError(c, err, "return book")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List open issues
// @Description Open issues, optionally for one member, newest first
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param username query string false "Member username"
// @Success 200 {array} resdto.IssueResponse
// @Router /api/admin/issues [get]
func (h *LoanHandler) ListOpen(c *gin.Context) {
	var q reqdto.OpenIssuesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	items, err := h.q.OpenIssues(c.Request.Context(), q.Username)
	if err != nil {
		abortWithUseCaseError(c, err, "list open issues")
		return
	}
	c.JSON(http.StatusOK, gin.H{"issues": resdto.FromIssueViews(items)})
}
