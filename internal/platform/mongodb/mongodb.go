// Package mongodb implements the store interfaces against MongoDB. All
// query semantics live here: the API layer only ever sees the narrow store
// interfaces and their result types.
package mongodb

import (
	"context"
	"fmt"

	"github.com/sports-academy/server/internal/config"
	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the deployment. The payments collection is declared
// for the payment log; no route records to it yet.
const (
	usersCollection      = "users"
	classesCollection    = "classes"
	selectionsCollection = "selectedClass"
	paymentsCollection   = "payments"
)

// Connect establishes the store client. The client connects lazily, so a
// successful return does not mean the deployment is reachable — callers ping
// separately and decide whether a failed ping is fatal. The client is never
// closed during normal operation; requests in flight at process exit are
// abandoned.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	return client, nil
}

// Ping verifies the deployment is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// decodeAll drains a cursor into a document slice. The slice is allocated up
// front so empty results serialize as [] rather than null.
func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]store.Document, error) {
	docs := make([]store.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

// findByID looks a document up by its hex object id. A miss maps to
// store.ErrNotFound; an unparseable id is a plain error, which the API layer
// surfaces as a generic server failure.
func findByID(ctx context.Context, c *mongo.Collection, id string) (store.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document id %q: %w", id, err)
	}

	doc := store.Document{}
	err = c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return doc, nil
}

// upsertByID replaces the full document under the given id, inserting it if
// absent.
func upsertByID(
	ctx context.Context,
	c *mongo.Collection,
	id string,
	doc store.Document,
) (*store.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document id %q: %w", id, err)
	}

	res, err := c.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert document: %w", err)
	}

	return &store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// insertOne stores a new document and reports its assigned id.
func insertOne(
	ctx context.Context,
	c *mongo.Collection,
	doc store.Document,
) (*store.InsertResult, error) {
	res, err := c.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return &store.InsertResult{InsertedID: res.InsertedID}, nil
}

// findAll runs a filtered find and drains the result.
func findAll(
	ctx context.Context,
	c *mongo.Collection,
	filter bson.M,
	opts ...*options.FindOptions,
) ([]store.Document, error) {
	cursor, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// popularOptions sorts by the enroll counter descending and caps the result.
func popularOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "enroll", Value: -1}}).
		SetLimit(limit)
}
