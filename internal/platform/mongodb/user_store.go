package mongodb

import (
	"context"
	"fmt"

	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore implements store.UserStore on the users collection.
type UserStore struct {
	c *mongo.Collection
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore on the given client and database.
func NewUserStore(client *mongo.Client, database string) *UserStore {
	return &UserStore{c: client.Database(database).Collection(usersCollection)}
}

func (s *UserStore) List(ctx context.Context) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{})
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (store.Document, error) {
	doc := store.Document{}
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return doc, nil
}

func (s *UserStore) Insert(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	return insertOne(ctx, s.c, doc)
}

func (s *UserStore) Upsert(
	ctx context.Context,
	id string,
	doc store.Document,
) (*store.UpdateResult, error) {
	return upsertByID(ctx, s.c, id, doc)
}

func (s *UserStore) ListByRole(ctx context.Context, role string) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{"role": role})
}

func (s *UserStore) ListPopularByRole(
	ctx context.Context,
	role string,
	limit int64,
) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{"role": role}, popularOptions(limit))
}
