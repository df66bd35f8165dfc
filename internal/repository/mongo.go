package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const BooksCollection = "books"

type bookDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Genre     string             `bson:"genre"`
	Year      float64            `bson:"year"`
	Rating    float64            `bson:"rating"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func (d bookDocument) toModel() model.Book {
	return model.Book{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Author:    d.Author,
		Genre:     d.Genre,
		Year:      d.Year,
		Rating:    d.Rating,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type MongoBookRepository struct {
	coll *mongo.Collection
}

func NewMongoBookRepository(coll *mongo.Collection) *MongoBookRepository {
	return &MongoBookRepository{coll: coll}
}

func (r *MongoBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	query := bson.M{}
	if filter.Genre != nil {
		query["genre"] = *filter.Genre
	}
	if filter.Year != nil {
		query["year"] = *filter.Year
	}
	if filter.Rating != nil {
		query["rating"] = *filter.Rating
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "find books")
	}

	var docs []bookDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode books")
	}

	books := make([]model.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, d.toModel())
	}
	return books, nil
}

func (r *MongoBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFoundOr(err, "find book "+id)
	}

	book := doc.toModel()
	return &book, nil
}

func (r *MongoBookRepository) Create(ctx context.Context, book *model.Book) error {
	// BSON datetimes keep millisecond precision.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := bookDocument{
		ID:        primitive.NewObjectID(),
		Title:     book.Title,
		Author:    book.Author,
		Genre:     book.Genre,
		Year:      book.Year,
		Rating:    book.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "insert book")
	}

	*book = doc.toModel()
	return nil
}

func (r *MongoBookRepository) Replace(ctx context.Context, id string, book *model.Book) (*model.Book, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"title":     book.Title,
			"author":    book.Author,
			"genre":     book.Genre,
			"year":      book.Year,
			"rating":    book.Rating,
			"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, notFoundOr(err, "update book "+id)
	}

	updated := doc.toModel()
	return &updated, nil
}

func (r *MongoBookRepository) Delete(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFoundOr(err, "delete book "+id)
	}

	deleted := doc.toModel()
	return &deleted, nil
}

func (r *MongoBookRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func (r *MongoBookRepository) Close(ctx context.Context) error {
	return r.coll.Database().Client().Disconnect(ctx)
}

// parseObjectID accepts the 24-character hex form and, like other Mongo
// clients, a 12-byte string taken as the raw id bytes.
func parseObjectID(id string) (primitive.ObjectID, error) {
	if len(id) == len(primitive.NilObjectID) {
		var oid primitive.ObjectID
		copy(oid[:], id)
		return oid, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return oid, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrBookNotFound
	}
	return errors.Wrap(err, msg)
}
