package mongodb

import (
	"context"
	"fmt"

	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SelectionStore implements store.SelectionStore on the selectedClass
// collection.
type SelectionStore struct {
	c *mongo.Collection
}

var _ store.SelectionStore = (*SelectionStore)(nil)

// NewSelectionStore creates a SelectionStore on the given client and database.
func NewSelectionStore(client *mongo.Client, database string) *SelectionStore {
	return &SelectionStore{c: client.Database(database).Collection(selectionsCollection)}
}

func (s *SelectionStore) Insert(
	ctx context.Context,
	doc store.Document,
) (*store.InsertResult, error) {
	return insertOne(ctx, s.c, doc)
}

// ListPendingByStudent filters on both the student identity and the unpaid
// flag; a selection flipped to payment==true drops out of the cart view.
func (s *SelectionStore) ListPendingByStudent(
	ctx context.Context,
	email string,
) ([]store.Document, error) {
	filter := bson.M{"$and": []bson.M{
		{"studentEmail": email},
		{"payment": false},
	}}
	return findAll(ctx, s.c, filter)
}

func (s *SelectionStore) FindByID(ctx context.Context, id string) (store.Document, error) {
	return findByID(ctx, s.c, id)
}

func (s *SelectionStore) Upsert(
	ctx context.Context,
	id string,
	doc store.Document,
) (*store.UpdateResult, error) {
	return upsertByID(ctx, s.c, id, doc)
}

func (s *SelectionStore) DeleteByID(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document id %q: %w", id, err)
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return &store.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
