package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sports-academy/server/internal/api"
	"github.com/sports-academy/server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectionRouter(selections store.SelectionStore) http.Handler {
	h := api.NewSelectionHandler(selections)
	r := chi.NewRouter()
	r.Post("/selectedClass", h.Create)
	r.Get("/selectedClass/{email}", h.ListPending)
	r.Delete("/selectedClass/{id}", h.Delete)
	r.Get("/singleSelect/{id}", h.Get)
	r.Put("/singleSelect/{id}", h.Upsert)
	return r
}

func TestSelectionHandler_Create(t *testing.T) {
	t.Parallel()

	var inserted store.Document
	selections := &store.MockSelectionStore{
		InsertFunc: func(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
			inserted = doc
			return &store.InsertResult{InsertedID: "66f0c1"}, nil
		},
	}

	payload := []byte(`{"studentEmail":"s@example.com","classId":"66f0b1","payment":false}`)
	recorder := httptest.NewRecorder()
	newSelectionRouter(selections).ServeHTTP(recorder,
		httptest.NewRequest(http.MethodPost, "/selectedClass", bytes.NewReader(payload)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"insertedId":"66f0c1"}`, recorder.Body.String())
	assert.Equal(t, false, inserted["payment"])
}

func TestSelectionHandler_ListPending(t *testing.T) {
	t.Parallel()

	var gotEmail string
	selections := &store.MockSelectionStore{
		ListPendingByStudentFunc: func(ctx context.Context, email string) ([]store.Document, error) {
			gotEmail = email
			return []store.Document{
				{"studentEmail": email, "payment": false},
			}, nil
		},
	}

	recorder := httptest.NewRecorder()
	newSelectionRouter(selections).ServeHTTP(recorder,
		httptest.NewRequest(http.MethodGet, "/selectedClass/s@example.com", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "s@example.com", gotEmail)

	var body []store.Document
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, false, body[0]["payment"])
}

func TestSelectionHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletion reports the count verbatim", func(t *testing.T) {
		t.Parallel()

		var gotID string
		selections := &store.MockSelectionStore{
			DeleteByIDFunc: func(ctx context.Context, id string) (*store.DeleteResult, error) {
				gotID = id
				return &store.DeleteResult{DeletedCount: 1}, nil
			},
		}

		recorder := httptest.NewRecorder()
		newSelectionRouter(selections).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodDelete, "/selectedClass/66f0c1", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "66f0c1", gotID)
		assert.JSONEq(t, `{"deletedCount":1}`, recorder.Body.String())
	})

	t.Run("deleting a missing line is still 200 with a zero count", func(t *testing.T) {
		t.Parallel()

		selections := &store.MockSelectionStore{
			DeleteByIDFunc: func(ctx context.Context, id string) (*store.DeleteResult, error) {
				return &store.DeleteResult{DeletedCount: 0}, nil
			},
		}

		recorder := httptest.NewRecorder()
		newSelectionRouter(selections).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodDelete, "/selectedClass/unknown", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"deletedCount":0}`, recorder.Body.String())
	})
}

func TestSelectionHandler_Get_MissReturnsEmptyObject(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	newSelectionRouter(&store.MockSelectionStore{}).ServeHTTP(recorder,
		httptest.NewRequest(http.MethodGet, "/singleSelect/unknown", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "{}", recorder.Body.String())
}

func TestSelectionHandler_Upsert_MarksPayment(t *testing.T) {
	t.Parallel()

	var gotID string
	var gotDoc store.Document
	selections := &store.MockSelectionStore{
		UpsertFunc: func(ctx context.Context, id string, doc store.Document) (*store.UpdateResult, error) {
			gotID = id
			gotDoc = doc
			return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}

	payload := []byte(`{"studentEmail":"s@example.com","classId":"66f0b1","payment":true}`)
	recorder := httptest.NewRecorder()
	newSelectionRouter(selections).ServeHTTP(recorder,
		httptest.NewRequest(http.MethodPut, "/singleSelect/66f0c1", bytes.NewReader(payload)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "66f0c1", gotID)
	assert.Equal(t, true, gotDoc["payment"])

	var result store.UpdateResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.ModifiedCount)
}
