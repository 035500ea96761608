package catalog

import (
	"context"
	"log"

	"novelnook/db"
	"novelnook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore reads the books collection, one document per title.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{coll: db.BookCollection}
}

// Seed upserts the canonical records at startup. Re-running it after
// a restart rewrites the same documents, so the collection always
// matches the shipped catalog.
func (s *MongoStore) Seed(ctx context.Context) error {
	opts := options.Replace().SetUpsert(true)
	for _, b := range seedBooks {
		if _, err := s.coll.ReplaceOne(ctx, bson.M{"bookid": b.BookID}, b, opts); err != nil {
			return err
		}
	}
	return nil
}

// List fetches the whole collection and filters in process; the
// catalog is small enough that Mongo-side query shaping buys nothing.
func (s *MongoStore) List(ctx context.Context, q Query) ([]models.Book, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		// Corrupt documents fall back to an empty catalog rather than
		// failing the storefront.
		log.Println("catalog decode error:", err)
		return []models.Book{}, nil
	}
	return applyQuery(books, q), nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (models.Book, error) {
	var book models.Book
	err := s.coll.FindOne(ctx, bson.M{"bookid": id}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, err
	}
	return book, nil
}
