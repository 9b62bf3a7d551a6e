package mongodb

import (
	"context"

	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClassStore implements store.ClassStore on the classes collection.
type ClassStore struct {
	c *mongo.Collection
}

var _ store.ClassStore = (*ClassStore)(nil)

// NewClassStore creates a ClassStore on the given client and database.
func NewClassStore(client *mongo.Client, database string) *ClassStore {
	return &ClassStore{c: client.Database(database).Collection(classesCollection)}
}

func (s *ClassStore) Insert(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	return insertOne(ctx, s.c, doc)
}

func (s *ClassStore) List(ctx context.Context) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{})
}

func (s *ClassStore) ListByInstructor(
	ctx context.Context,
	email string,
) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{"instructorEmail": email})
}

func (s *ClassStore) ListByStatus(ctx context.Context, status string) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{"status": status})
}

func (s *ClassStore) FindByID(ctx context.Context, id string) (store.Document, error) {
	return findByID(ctx, s.c, id)
}

func (s *ClassStore) Upsert(
	ctx context.Context,
	id string,
	doc store.Document,
) (*store.UpdateResult, error) {
	return upsertByID(ctx, s.c, id, doc)
}

func (s *ClassStore) ListPopularByStatus(
	ctx context.Context,
	status string,
	limit int64,
) ([]store.Document, error) {
	return findAll(ctx, s.c, bson.M{"status": status}, popularOptions(limit))
}
