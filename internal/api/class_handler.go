package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/domain"
	"github.com/sports-academy/server/internal/store"
)

// ClassHandler serves the classes collection routes.
type ClassHandler struct {
	classes store.ClassStore
}

// NewClassHandler creates a ClassHandler backed by the given store.
func NewClassHandler(classes store.ClassStore) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// Create handles POST /class: an instructor submission, stored as posted
// (typically with status pending until an admin approves it).
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.classes.Insert(r.Context(), doc)
	if err != nil {
		respondInternalError(w, r, "failed to insert class", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// List handles GET /class.
func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.classes.List(r.Context())
	if err != nil {
		respondInternalError(w, r, "failed to list classes", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// ListByInstructor handles GET /class/{email}: the classes an instructor
// submitted.
func (h *ClassHandler) ListByInstructor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	docs, err := h.classes.ListByInstructor(r.Context(), email)
	if err != nil {
		respondInternalError(w, r, "failed to list instructor classes", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Upsert handles PUT /singleClass/{id}: full-document replace-or-insert,
// used for instructor edits and admin approval alike.
func (h *ClassHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.classes.Upsert(r.Context(), id, doc)
	if err != nil {
		respondInternalError(w, r, "failed to upsert class", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Get handles GET /classSingle/{id}. A miss responds 200 with an empty
// object, not 404.
func (h *ClassHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.classes.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, store.Document{})
		return
	}
	if err != nil {
		respondInternalError(w, r, "failed to find class", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Approved handles GET /approveClass: the classes admins have approved.
func (h *ClassHandler) Approved(w http.ResponseWriter, r *http.Request) {
	docs, err := h.classes.ListByStatus(r.Context(), domain.StatusApproved)
	if err != nil {
		respondInternalError(w, r, "failed to list approved classes", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Popular handles GET /popularClass: approved classes by enroll count
// descending, capped.
func (h *ClassHandler) Popular(w http.ResponseWriter, r *http.Request) {
	docs, err := h.classes.ListPopularByStatus(
		r.Context(),
		domain.StatusApproved,
		domain.PopularLimit,
	)
	if err != nil {
		respondInternalError(w, r, "failed to list popular classes", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}
