package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/validation"
)

const (
	msgBookNotFound  = "Book not found"
	msgInternalError = "Internal server error"
	msgBookDeleted   = "Book deleted successfully"
)

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Error: message,
	})
}

// writeStoreError maps a repository error to 404 or 500. The cause of a 500
// is logged and never sent to the client.
func writeStoreError(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrBookNotFound) {
		writeError(c, http.StatusNotFound, msgBookNotFound)
		return
	}

	log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, op, err)
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, msgInternalError)
}
