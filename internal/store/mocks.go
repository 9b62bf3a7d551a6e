package store

import "context"

// Hand-rolled store doubles for handler and router tests. Each method defers
// to its function field when set and otherwise returns an innocuous default,
// so tests only stub what they assert on. These are the canonical mocks;
// tests must not define their own store fakes.

// MockUserStore is a configurable UserStore double.
type MockUserStore struct {
	ListFunc              func(ctx context.Context) ([]Document, error)
	FindByEmailFunc       func(ctx context.Context, email string) (Document, error)
	InsertFunc            func(ctx context.Context, doc Document) (*InsertResult, error)
	UpsertFunc            func(ctx context.Context, id string, doc Document) (*UpdateResult, error)
	ListByRoleFunc        func(ctx context.Context, role string) ([]Document, error)
	ListPopularByRoleFunc func(ctx context.Context, role string, limit int64) ([]Document, error)
}

var _ UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) List(ctx context.Context) ([]Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []Document{}, nil
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (Document, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrNotFound
}

func (m *MockUserStore) Insert(ctx context.Context, doc Document) (*InsertResult, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, doc)
	}
	return &InsertResult{InsertedID: "mock-id"}, nil
}

func (m *MockUserStore) Upsert(ctx context.Context, id string, doc Document) (*UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, id, doc)
	}
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockUserStore) ListByRole(ctx context.Context, role string) ([]Document, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return []Document{}, nil
}

func (m *MockUserStore) ListPopularByRole(
	ctx context.Context,
	role string,
	limit int64,
) ([]Document, error) {
	if m.ListPopularByRoleFunc != nil {
		return m.ListPopularByRoleFunc(ctx, role, limit)
	}
	return []Document{}, nil
}

// MockClassStore is a configurable ClassStore double.
type MockClassStore struct {
	InsertFunc              func(ctx context.Context, doc Document) (*InsertResult, error)
	ListFunc                func(ctx context.Context) ([]Document, error)
	ListByInstructorFunc    func(ctx context.Context, email string) ([]Document, error)
	ListByStatusFunc        func(ctx context.Context, status string) ([]Document, error)
	FindByIDFunc            func(ctx context.Context, id string) (Document, error)
	UpsertFunc              func(ctx context.Context, id string, doc Document) (*UpdateResult, error)
	ListPopularByStatusFunc func(ctx context.Context, status string, limit int64) ([]Document, error)
}

var _ ClassStore = (*MockClassStore)(nil)

func (m *MockClassStore) Insert(ctx context.Context, doc Document) (*InsertResult, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, doc)
	}
	return &InsertResult{InsertedID: "mock-id"}, nil
}

func (m *MockClassStore) List(ctx context.Context) ([]Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []Document{}, nil
}

func (m *MockClassStore) ListByInstructor(ctx context.Context, email string) ([]Document, error) {
	if m.ListByInstructorFunc != nil {
		return m.ListByInstructorFunc(ctx, email)
	}
	return []Document{}, nil
}

func (m *MockClassStore) ListByStatus(ctx context.Context, status string) ([]Document, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return []Document{}, nil
}

func (m *MockClassStore) FindByID(ctx context.Context, id string) (Document, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *MockClassStore) Upsert(ctx context.Context, id string, doc Document) (*UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, id, doc)
	}
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockClassStore) ListPopularByStatus(
	ctx context.Context,
	status string,
	limit int64,
) ([]Document, error) {
	if m.ListPopularByStatusFunc != nil {
		return m.ListPopularByStatusFunc(ctx, status, limit)
	}
	return []Document{}, nil
}

// MockSelectionStore is a configurable SelectionStore double.
type MockSelectionStore struct {
	InsertFunc               func(ctx context.Context, doc Document) (*InsertResult, error)
	ListPendingByStudentFunc func(ctx context.Context, email string) ([]Document, error)
	FindByIDFunc             func(ctx context.Context, id string) (Document, error)
	UpsertFunc               func(ctx context.Context, id string, doc Document) (*UpdateResult, error)
	DeleteByIDFunc           func(ctx context.Context, id string) (*DeleteResult, error)
}

var _ SelectionStore = (*MockSelectionStore)(nil)

func (m *MockSelectionStore) Insert(ctx context.Context, doc Document) (*InsertResult, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, doc)
	}
	return &InsertResult{InsertedID: "mock-id"}, nil
}

func (m *MockSelectionStore) ListPendingByStudent(
	ctx context.Context,
	email string,
) ([]Document, error) {
	if m.ListPendingByStudentFunc != nil {
		return m.ListPendingByStudentFunc(ctx, email)
	}
	return []Document{}, nil
}

func (m *MockSelectionStore) FindByID(ctx context.Context, id string) (Document, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrNotFound
}

func (m *MockSelectionStore) Upsert(
	ctx context.Context,
	id string,
	doc Document,
) (*UpdateResult, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, id, doc)
	}
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockSelectionStore) DeleteByID(ctx context.Context, id string) (*DeleteResult, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return &DeleteResult{DeletedCount: 1}, nil
}
