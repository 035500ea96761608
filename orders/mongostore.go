package orders

import (
	"context"
	"log"
	"regexp"
	"time"

	"novelnook/db"
	"novelnook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists orders in the orders collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore() *MongoStore {
	return &MongoStore{coll: db.OrderCollection}
}

func (s *MongoStore) Insert(ctx context.Context, order models.Order) error {
	_, err := s.coll.InsertOne(ctx, order)
	return err
}

func (s *MongoStore) FindByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus writes the transition only if the stored status still
// matches from. A filtered single-document update keeps the write
// atomic per order; a missed precondition surfaces as
// ErrConflictingUpdate so the losing writer can re-read.
func (s *MongoStore) UpdateStatus(ctx context.Context, orderID string, from, to Status, at time.Time) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"orderId": orderID, "status": string(from)},
		bson.M{"$set": bson.M{"status": string(to), "updatedAt": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a vanished order from a lost race.
		if err := s.coll.FindOne(ctx, bson.M{"orderId": orderID}).Err(); err == mongo.ErrNoDocuments {
			return ErrOrderNotFound
		}
		return ErrConflictingUpdate
	}
	return nil
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeOrders(ctx, cursor)
}

func (s *MongoStore) ListAll(ctx context.Context, q Query) ([]models.Order, error) {
	filter := bson.M{}
	if q.Status != "" && q.Status != "all" {
		filter["status"] = q.Status
	}
	if q.Search != "" {
		re := searchRegex(q.Search)
		filter["$or"] = bson.A{
			bson.M{"orderId": re},
			bson.M{"customerName": re},
			bson.M{"customerEmail": re},
		}
	}
	dir := -1
	if q.Asc {
		dir = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: dir}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeOrders(ctx, cursor)
}

// searchRegex builds a case-insensitive substring match; the search
// text is quoted so regex metacharacters match literally, like the
// memory store does.
func searchRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func decodeOrders(ctx context.Context, cursor *mongo.Cursor) ([]models.Order, error) {
	var out []models.Order
	if err := cursor.All(ctx, &out); err != nil {
		// Corrupt documents fall back to an empty listing rather than
		// failing the view.
		log.Println("orders decode error:", err)
		return []models.Order{}, nil
	}
	if out == nil {
		out = []models.Order{}
	}
	return out, nil
}
