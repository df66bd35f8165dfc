package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	ListFn     func(ctx context.Context, filter repository.BookFilter) ([]model.Book, error)
	FindByIDFn func(ctx context.Context, id string) (*model.Book, error)
	CreateFn   func(ctx context.Context, b *model.Book) error
	ReplaceFn  func(ctx context.Context, id string, b *model.Book) (*model.Book, error)
	DeleteFn   func(ctx context.Context, id string) (*model.Book, error)
	PingFn     func(ctx context.Context) error
}

func (f *fakeBookRepo) List(ctx context.Context, filter repository.BookFilter) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Replace(ctx context.Context, id string, b *model.Book) (*model.Book, error) {
	if f.ReplaceFn != nil {
		return f.ReplaceFn(ctx, id, b)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) (*model.Book, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func (f *fakeBookRepo) Close(ctx context.Context) error {
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

func setupBookRouterWithRepo(repo repository.BookRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(repo)
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return setupBookRouterWithRepo(repository.NewGormBookRepository(db)), db
}

func seedBook(t *testing.T, db *gorm.DB, title, genre string, year, rating float64) model.Book {
	t.Helper()

	book := model.Book{
		Title:  title,
		Author: "Author of " + title,
		Genre:  genre,
		Year:   year,
		Rating: rating,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		if err := json.NewEncoder(&buf).Encode(v); err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return v
}
