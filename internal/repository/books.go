package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidID    = errors.New("invalid book id")
)

// BookFilter holds exact-match constraints for List. Nil fields are ignored
// and the remaining ones are combined with AND.
type BookFilter struct {
	Genre  *string
	Year   *float64
	Rating *float64
}

type BookRepository interface {
	List(ctx context.Context, filter BookFilter) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Replace(ctx context.Context, id string, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id string) (*model.Book, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
