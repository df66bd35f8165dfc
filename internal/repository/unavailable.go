package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
)

// UnavailableBookRepository stands in for a store that could not be set up
// at startup. Every call fails with the original cause so requests get a 500
// instead of the process refusing to start.
type UnavailableBookRepository struct {
	cause error
}

func NewUnavailableBookRepository(cause error) *UnavailableBookRepository {
	return &UnavailableBookRepository{cause: cause}
}

func (r *UnavailableBookRepository) err() error {
	return errors.Wrap(r.cause, "store unavailable")
}

func (r *UnavailableBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	return nil, r.err()
}

func (r *UnavailableBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	return nil, r.err()
}

func (r *UnavailableBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.err()
}

func (r *UnavailableBookRepository) Replace(ctx context.Context, id string, book *model.Book) (*model.Book, error) {
	return nil, r.err()
}

func (r *UnavailableBookRepository) Delete(ctx context.Context, id string) (*model.Book, error) {
	return nil, r.err()
}

func (r *UnavailableBookRepository) Ping(ctx context.Context) error {
	return r.err()
}

func (r *UnavailableBookRepository) Close(ctx context.Context) error {
	return nil
}
