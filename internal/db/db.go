package db

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/config"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultMongoDatabase = "test"

type Backend string

const (
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported database url")

// BackendFor picks the store from the connection string scheme.
func BackendFor(url string) (Backend, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		return BackendSQLite, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedURL, "%q", redact(url))
	}
}

// Open builds the book repository for cfg.Database. It does not wait for the
// server to answer: drivers connect lazily, so an unreachable database shows
// up later as failing requests.
func Open(cfg *config.Config) (repository.BookRepository, error) {
	backend, err := BackendFor(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMongo:
		return openMongo(cfg.Database)
	case BackendPostgres:
		return openSQL(postgres.Open(cfg.Database.URL))
	default:
		return openSQL(sqlite.Open(strings.TrimPrefix(cfg.Database.URL, "sqlite://")))
	}
}

func openMongo(cfg config.Database) (*repository.MongoBookRepository, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, errors.Wrap(err, "configure mongo client")
	}

	name := cfg.Name
	if name == "" {
		name = databaseFromURL(cfg.URL)
	}

	coll := client.Database(name).Collection(repository.BooksCollection)
	return repository.NewMongoBookRepository(coll), nil
}

func databaseFromURL(url string) string {
	cs, err := connstring.ParseAndValidate(url)
	if err != nil || cs.Database == "" {
		return defaultMongoDatabase
	}
	return cs.Database
}

func openSQL(dialector gorm.Dialector) (*repository.GormBookRepository, error) {
	database, err := gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return nil, errors.Wrap(err, "open sql database")
	}

	if err := database.AutoMigrate(&model.Book{}); err != nil {
		log.Printf("could not create books table: %v", err)
	}

	return repository.NewGormBookRepository(database), nil
}

// Probe pings the store once and logs the outcome. It never fails the
// process.
func Probe(ctx context.Context, store repository.BookRepository) bool {
	if err := store.Ping(ctx); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return false
	}
	log.Printf("Connected to database")
	return true
}

func redact(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}
