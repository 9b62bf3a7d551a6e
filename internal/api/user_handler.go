package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/domain"
	"github.com/sports-academy/server/internal/store"
)

// UserHandler serves the users collection routes.
type UserHandler struct {
	users store.UserStore
}

// NewUserHandler creates a UserHandler backed by the given store.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.users.List(r.Context())
	if err != nil {
		respondInternalError(w, r, "failed to list users", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// Role handles GET /role. The gate has already verified the caller holds a
// valid token; identity comes from the email query parameter and no
// ownership check is applied beyond token validity. A miss responds with an
// empty object, not 404.
func (h *UserHandler) Role(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	doc, err := h.users.FindByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		shared.RespondWithJSON(w, r, http.StatusOK, store.Document{})
		return
	}
	if err != nil {
		respondInternalError(w, r, "failed to look up user role", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Create handles POST /users: insert the posted document unless a user with
// the same email already exists. Uniqueness is enforced here, not by the
// store.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	email, _ := doc["email"].(string)
	_, err := h.users.FindByEmail(r.Context(), email)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "user already exists",
		})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		respondInternalError(w, r, "failed to check for existing user", err)
		return
	}

	result, err := h.users.Insert(r.Context(), doc)
	if err != nil {
		respondInternalError(w, r, "failed to insert user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Upsert handles PUT /users/{id}: full-document replace-or-insert.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var doc store.Document
	if err := shared.DecodeJSON(r, &doc); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.users.Upsert(r.Context(), id, doc)
	if err != nil {
		respondInternalError(w, r, "failed to upsert user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Instructors handles GET /instructor: every user carrying the stored
// instructor role literal.
func (h *UserHandler) Instructors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.users.ListByRole(r.Context(), domain.RoleInstructor)
	if err != nil {
		respondInternalError(w, r, "failed to list instructors", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}

// PopularInstructors handles GET /popularinstractor: instructors by enroll
// count descending, capped.
func (h *UserHandler) PopularInstructors(w http.ResponseWriter, r *http.Request) {
	docs, err := h.users.ListPopularByRole(r.Context(), domain.RoleInstructor, domain.PopularLimit)
	if err != nil {
		respondInternalError(w, r, "failed to list popular instructors", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, docs)
}
