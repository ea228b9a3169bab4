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

type BookHandler struct {
	cmds commands.CatalogCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.CatalogCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

// @Summary Book inventory
// @Description Search the catalogue by title, author, isbn or category; field=all lists everything
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param field query string false "all, title, author, isbn or category"
// @Param value query string false "Search text"
// @Param page query int false "Page (1-based)"
// @Success 200 {object} resdto.BookPageResponse
// @Failure 422 {object} httperr.Response
// @Router /api/admin/books [get]
func (h *BookHandler) Inventory(c *gin.Context) {
	var q reqdto.InventoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	page, err := h.q.Inventory(c.Request.Context(), q.ToFilter(), q.PageNumber())
	if err != nil {
		abortWithUseCaseError(c, err, "book inventory")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookPage(page))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(v))
}

// @Summary Add book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookRequest true "Book"
// @Success 201 {object} resdto.BookResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := h.cmds.AddBook(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "add book")
		return
	}
	h.respondWithBook(c, http.StatusCreated, res.BookID)
}

// @Summary Update book
// @Description Partial update; open issues receive the new title, author, isbn, category and stock
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.UpdateBookRequest true "Changed fields"
// @Success 200 {object} resdto.BookResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	var req reqdto.UpdateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		abortBadRequest(c, bindErr)
		return
	}
	if _, err = h.cmds.UpdateBook(c.Request.Context(), id, req.ToInput()); err != nil {
		abortWithUseCaseError(c, err, "update book")
		return
	}
	h.respondWithBook(c, http.StatusOK, id)
}

// @Summary Delete book
// @Tags books
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, errInvalidID)
		return
	}
	if err := h.cmds.DeleteBook(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookHandler) respondWithBook(c *gin.Context, status int, id uuid.UUID) {
	v, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "load book")
		return
	}
	c.JSON(status, resdto.FromBookView(v))
}
