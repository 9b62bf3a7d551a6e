package mongodb

import (
	"context"

	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentStore implements store.PaymentStore on the payments collection.
// The collection is part of the deployment and is opened at bootstrap, but
// no route records to it yet; completed payments are currently only visible
// through the selection's payment flag.
type PaymentStore struct {
	c *mongo.Collection
}

var _ store.PaymentStore = (*PaymentStore)(nil)

// NewPaymentStore creates a PaymentStore on the given client and database.
func NewPaymentStore(client *mongo.Client, database string) *PaymentStore {
	return &PaymentStore{c: client.Database(database).Collection(paymentsCollection)}
}

func (s *PaymentStore) Insert(
	ctx context.Context,
	doc store.Document,
) (*store.InsertResult, error) {
	return insertOne(ctx, s.c, doc)
}
