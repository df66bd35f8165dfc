package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
	"gorm.io/gorm"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if filter.Genre != nil {
		q = q.Where("genre = ?", *filter.Genre)
	}
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Rating != nil {
		q = q.Where("rating = ?", *filter.Rating)
	}

	books := make([]model.Book, 0)
	if err := q.Find(&books).Error; err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	return books, nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errors.Wrapf(err, "find book %s", key)
	}
	return &book, nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	book.ID = ""
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return errors.Wrap(err, "create book")
	}
	return nil
}

func (r *GormBookRepository) Replace(ctx context.Context, id string, book *model.Book) (*model.Book, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", key).
		Updates(map[string]any{
			"title":      book.Title,
			"author":     book.Author,
			"genre":      book.Genre,
			"year":       book.Year,
			"rating":     book.Rating,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "update book %s", key)
	}
	if result.RowsAffected == 0 {
		return nil, ErrBookNotFound
	}

	return r.FindByID(ctx, key)
}

func (r *GormBookRepository) Delete(ctx context.Context, id string) (*model.Book, error) {
	book, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", book.ID)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "delete book %s", book.ID)
	}
	if result.RowsAffected == 0 {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (r *GormBookRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.Wrap(err, "get underlying DB")
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormBookRepository) Close(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.Wrap(err, "get underlying DB")
	}
	return sqlDB.Close()
}

func parseUUID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return u.String(), nil
}
