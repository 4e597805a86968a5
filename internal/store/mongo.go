package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

const currentDocID = "current"

type currentDoc struct {
	ID        string       `bson:"_id"`
	Data      models.Order `bson:"data"`
	UpdatedAt time.Time    `bson:"updatedAt"`
}

type savedDoc struct {
	ID        string       `bson:"_id"`
	Name      string       `bson:"name"`
	Data      models.Order `bson:"data"`
	CreatedAt time.Time    `bson:"createdAt"`
	UpdatedAt time.Time    `bson:"updatedAt"`
}

func (d savedDoc) saved() models.SavedOrder {
	return models.SavedOrder{ID: d.ID, Name: d.Name, Data: d.Data, CreatedAt: d.CreatedAt.UTC(), UpdatedAt: d.UpdatedAt.UTC()}
}

func toDoc(s models.SavedOrder) savedDoc {
	return savedDoc{ID: s.ID, Name: s.Name, Data: s.Data, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

// MongoStore keeps the working order in the "current" collection and named
// orders in "orders". The client must encode by json tags (see
// database.ConnectMongo) so order fields keep their exported names.
type MongoStore struct {
	client  *mongo.Client
	current *mongo.Collection
	orders  *mongo.Collection
}

// NewMongo returns a store over the named database.
func NewMongo(client *mongo.Client, database string) *MongoStore {
	db := client.Database(database)
	return &MongoStore{
		client:  client,
		current: db.Collection("current"),
		orders:  db.Collection("orders"),
	}
}

func (s *MongoStore) LoadCurrent(ctx context.Context) models.Order {
	var doc currentDoc
	err := s.current.FindOne(ctx, bson.M{"_id": currentDocID}).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			logger.Warnf("Ignoring unreadable current order: %v", err)
		}
		return models.EmptyOrder()
	}
	return doc.Data
}

func (s *MongoStore) SaveCurrent(ctx context.Context, o models.Order) error {
	doc := currentDoc{ID: currentDocID, Data: o, UpdatedAt: now()}
	_, err := s.current.ReplaceOne(ctx, bson.M{"_id": currentDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save current order: %w", err)
	}
	return nil
}

func (s *MongoStore) ClearCurrent(ctx context.Context) error {
	if _, err := s.current.DeleteOne(ctx, bson.M{"_id": currentDocID}); err != nil {
		return fmt.Errorf("failed to clear current order: %w", err)
	}
	return nil
}

func (s *MongoStore) ListSaved(ctx context.Context) []models.OrderSummary {
	out := []models.OrderSummary{}

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"data": 0})
	cursor, err := s.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Warnf("Failed to list saved orders: %v", err)
		return out
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc savedDoc
		if err := cursor.Decode(&doc); err != nil {
			logger.Warnf("Skipping undecodable order: %v", err)
			continue
		}
		out = append(out, doc.saved().Summary())
	}
	if err := cursor.Err(); err != nil {
		logger.Warnf("Failed to list saved orders: %v", err)
		return []models.OrderSummary{}
	}
	sortSummaries(out)
	return out
}

func (s *MongoStore) SaveNamed(ctx context.Context, name string, o models.Order) (models.SavedOrder, error) {
	saved, err := newSaved(name, o)
	if err != nil {
		return models.SavedOrder{}, err
	}
	if _, err := s.orders.InsertOne(ctx, toDoc(saved)); err != nil {
		return models.SavedOrder{}, fmt.Errorf("failed to insert order %s: %w", saved.ID, err)
	}
	return saved, nil
}

func (s *MongoStore) UpdateNamed(ctx context.Context, id string, o models.Order) error {
	update := bson.M{"$set": bson.M{"data": o, "updatedAt": now()}}
	res, err := s.orders.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) LoadNamed(ctx context.Context, id string) (models.SavedOrder, bool) {
	var doc savedDoc
	if err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			logger.Warnf("Failed to load order %s: %v", id, err)
		}
		return models.SavedOrder{}, false
	}
	return doc.saved(), true
}

func (s *MongoStore) DeleteNamed(ctx context.Context, id string) error {
	if _, err := s.orders.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) PutNamed(ctx context.Context, saved models.SavedOrder) error {
	_, err := s.orders.ReplaceOne(ctx, bson.M{"_id": saved.ID}, toDoc(saved), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to replace order %s: %w", saved.ID, err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
