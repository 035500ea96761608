package cart

import (
	"context"
	"log"
	"time"

	"novelnook/db"
	"novelnook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists cart lines in the cart collection, one document
// per (user, book).
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{coll: db.CartCollection}
}

func (s *MongoStore) Increment(ctx context.Context, item models.CartItem, delta int) error {
	filter := bson.M{"userId": item.UserID, "bookId": item.BookID}
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$setOnInsert": bson.M{
			"title":      item.Title,
			"price":      item.Price,
			"coverImage": item.CoverImage,
			"addedAt":    time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *MongoStore) SetQuantity(ctx context.Context, userID, bookID string, quantity int) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID, "bookId": bookID},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	return err
}

func (s *MongoStore) Remove(ctx context.Context, userID, bookID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"userId": userID, "bookId": bookID})
	return err
}

func (s *MongoStore) Clear(ctx context.Context, userID string) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

func (s *MongoStore) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		// Corrupt lines fall back to an empty cart rather than failing
		// the whole read.
		log.Println("cart List decode error:", err)
		return []models.CartItem{}, nil
	}
	return items, nil
}
