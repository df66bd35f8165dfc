package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books, optionally filtered by exact genre, year and rating
// @Tags         books
// @Produce      json
// @Param        genre   query     string  false  "Exact genre (case-sensitive)"
// @Param        year    query     number  false  "Exact publication year"
// @Param        rating  query     number  false  "Exact rating"
// @Success      200     {array}   BookResponse
// @Failure      500     {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter, err := parseBookFilter(c)
	if err != nil {
		writeStoreError(c, "list books", err)
		return
	}

	books, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		writeStoreError(c, "list books", err)
		return
	}

	c.JSON(http.StatusOK, toBookResponses(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book by its identifier
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeStoreError(c, "get book", err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. All five fields are required; 0, false and "" count as missing. Values that cannot be cast to the field type fail with 500.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest  true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing required property"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := req.toModel()
	if err != nil {
		writeStoreError(c, "create book", err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		writeStoreError(c, "create book", err)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// UpdateBook godoc
// @Summary      Replace a book
// @Description  Replace all five fields of a book by its identifier
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Book ID"
// @Param        payload  body      BookRequest  true  "New field values"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing required property"
// @Failure      404      {object}  validation.ErrorResponse  "Book not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := req.toModel()
	if err != nil {
		writeStoreError(c, "update book", err)
		return
	}

	updated, err := h.repo.Replace(c.Request.Context(), c.Param("id"), &book)
	if err != nil {
		writeStoreError(c, "update book", err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*updated))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its identifier
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  validation.ErrorResponse  "Book not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if _, err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeStoreError(c, "delete book", err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgBookDeleted})
}
