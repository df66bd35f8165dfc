package handler

import (
	"time"

	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/validation"
)

// BookRequest is the body of both create and full update. Every field is
// required and must be truthy; values are cast to the stored types after
// validation, so "1965" is a valid year and "abc" is not.
type BookRequest struct {
	Title  validation.Value `json:"title" binding:"required" swaggertype:"string" example:"Dune"`
	Author validation.Value `json:"author" binding:"required" swaggertype:"string" example:"Frank Herbert"`
	Genre  validation.Value `json:"genre" binding:"required" swaggertype:"string" example:"SciFi"`
	Year   validation.Value `json:"year" binding:"required" swaggertype:"number" example:"1965"`
	Rating validation.Value `json:"rating" binding:"required" swaggertype:"number" example:"5"`
}

func (r BookRequest) toModel() (model.Book, error) {
	var (
		book model.Book
		err  error
	)

	if book.Title, err = r.Title.AsString(); err != nil {
		return book, errors.Wrap(err, "title")
	}
	if book.Author, err = r.Author.AsString(); err != nil {
		return book, errors.Wrap(err, "author")
	}
	if book.Genre, err = r.Genre.AsString(); err != nil {
		return book, errors.Wrap(err, "genre")
	}
	if book.Year, err = r.Year.AsNumber(); err != nil {
		return book, errors.Wrap(err, "year")
	}
	if book.Rating, err = r.Rating.AsNumber(); err != nil {
		return book, errors.Wrap(err, "rating")
	}
	return book, nil
}

type BookResponse struct {
	ID        string    `json:"id" example:"6561f3a2c8b4e13f0a9d2b71"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Year      float64   `json:"year"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Year:      b.Year,
		Rating:    b.Rating,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBookResponses(books []model.Book) []BookResponse {
	res := make([]BookResponse, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}
	return res
}
