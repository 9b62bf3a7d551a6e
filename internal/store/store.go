// Package store defines the narrow surface the HTTP handlers use to reach
// the document store. Every handler performs exactly one of these operations
// and returns its result verbatim; all query semantics (filters, sorts,
// limits) live behind these interfaces so the route table stays free of
// storage details.
package store

import "context"

// Document is a schemaless store document. The system deliberately has no
// fixed schema: clients persist arbitrary profile and descriptive fields and
// read them back unmodified.
type Document = map[string]interface{}

// InsertResult reports a completed insert.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

// UpdateResult reports a completed upsert.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// DeleteResult reports a completed delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UserStore provides access to the users collection.
type UserStore interface {
	// List returns every user document.
	List(ctx context.Context) ([]Document, error)

	// FindByEmail returns the first user with the given email, or ErrNotFound.
	// Email is the logical identity of a user; uniqueness is enforced at the
	// handler level, not by the store.
	FindByEmail(ctx context.Context, email string) (Document, error)

	// Insert stores a new user document unconditionally.
	Insert(ctx context.Context, doc Document) (*InsertResult, error)

	// Upsert replaces the document with the given id, inserting it if absent.
	Upsert(ctx context.Context, id string, doc Document) (*UpdateResult, error)

	// ListByRole returns every user whose stored role equals role.
	ListByRole(ctx context.Context, role string) ([]Document, error)

	// ListPopularByRole returns at most limit users with the given role,
	// ordered by their enroll counter descending.
	ListPopularByRole(ctx context.Context, role string, limit int64) ([]Document, error)
}

// ClassStore provides access to the classes collection.
type ClassStore interface {
	// Insert stores a new class document unconditionally.
	Insert(ctx context.Context, doc Document) (*InsertResult, error)

	// List returns every class document.
	List(ctx context.Context) ([]Document, error)

	// ListByInstructor returns the classes submitted by the instructor with
	// the given email.
	ListByInstructor(ctx context.Context, email string) ([]Document, error)

	// ListByStatus returns the classes whose status equals status.
	ListByStatus(ctx context.Context, status string) ([]Document, error)

	// FindByID returns the class with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (Document, error)

	// Upsert replaces the document with the given id, inserting it if absent.
	Upsert(ctx context.Context, id string, doc Document) (*UpdateResult, error)

	// ListPopularByStatus returns at most limit classes with the given
	// status, ordered by their enroll counter descending.
	ListPopularByStatus(ctx context.Context, status string, limit int64) ([]Document, error)
}

// SelectionStore provides access to the selectedClass collection, the
// student cart of pending and paid enrollments.
type SelectionStore interface {
	// Insert stores a new selection document unconditionally.
	Insert(ctx context.Context, doc Document) (*InsertResult, error)

	// ListPendingByStudent returns the student's unpaid selections: documents
	// matching both studentEmail == email and payment == false.
	ListPendingByStudent(ctx context.Context, email string) ([]Document, error)

	// FindByID returns the selection with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (Document, error)

	// Upsert replaces the document with the given id, inserting it if absent.
	Upsert(ctx context.Context, id string, doc Document) (*UpdateResult, error)

	// DeleteByID removes the selection with the given id.
	DeleteByID(ctx context.Context, id string) (*DeleteResult, error)
}

// PaymentStore provides access to the payments collection. The collection is
// part of the deployment but no route records to it yet; it exists for the
// payment log the frontend is expected to grow into.
type PaymentStore interface {
	// Insert stores a completed payment record.
	Insert(ctx context.Context, doc Document) (*InsertResult, error)
}
