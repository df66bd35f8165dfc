package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/validation"
)

// parseBookFilter reads the genre, year and rating query parameters. Empty
// parameters are ignored. Numbers are cast the same way as body values, so
// "1965.0" matches 1965 and a value that does not cast is an error.
func parseBookFilter(c *gin.Context) (repository.BookFilter, error) {
	var filter repository.BookFilter

	if genre := c.Query("genre"); genre != "" {
		filter.Genre = &genre
	}

	if s := c.Query("year"); s != "" {
		year, err := validation.ParseNumber(s)
		if err != nil {
			return filter, errors.Wrap(err, "year filter")
		}
		filter.Year = &year
	}

	if s := c.Query("rating"); s != "" {
		rating, err := validation.ParseNumber(s)
		if err != nil {
			return filter, errors.Wrap(err, "rating filter")
		}
		filter.Rating = &rating
	}

	return filter, nil
}
