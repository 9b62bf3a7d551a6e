package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/store"
)

// SelectionHandler serves the selectedClass collection routes: the student
// cart of pending and paid enrollments.
type SelectionHandler struct {
	selections store.SelectionStore
}

// NewSelectionHandler creates a SelectionHandler backed by the given store.
func NewSelectionHandler(selections store.SelectionStore) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// Create handles POST /selectedClass: a student adding a class to the cart.
func (h *SelectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selections.Insert(r.Context(), doc)
	if err != nil {
		respondInternalError(w, r, "failed to insert selection", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListPending handles GET /selectedClass/{email}: the student's unpaid cart.
// The gate has verified the token; the path email is trusted as-is, with no
// ownership check beyond token validity.
func (h *SelectionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	docs, err := h.selections.ListPendingByStudent(r.Context(), email)
	if err != nil {
		respondInternalError(w, r, "failed to list pending selections", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Delete handles DELETE /selectedClass/{id}: removing a cart line.
func (h *SelectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.selections.DeleteByID(r.Context(), id)
	if err != nil {
		respondInternalError(w, r, "failed to delete selection", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Get handles GET /singleSelect/{id}. A miss responds 200 with an empty
// object, not 404.
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.selections.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, store.Document{})
		return
	}
	if err != nil {
		respondInternalError(w, r, "failed to find selection", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Upsert handles PUT /singleSelect/{id}: full-document replace-or-insert,
// used after payment completion to flip the payment flag. The flag update
// and the gateway charge are separate calls with no shared transaction.
func (h *SelectionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selections.Upsert(r.Context(), id, doc)
	if err != nil {
		respondInternalError(w, r, "failed to upsert selection", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
