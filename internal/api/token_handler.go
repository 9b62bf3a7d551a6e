package api

import (
	"net/http"

	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/service/auth"
)

// TokenHandler issues identity tokens for the frontend session flow.
type TokenHandler struct {
	tokens auth.TokenService
}

// NewTokenHandler creates a TokenHandler with the given token service.
func NewTokenHandler(tokens auth.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// TokenResponse carries a freshly issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt: the posted identity payload is signed as-is.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.tokens.IssueToken(r.Context(), payload)
	if err != nil {
		respondInternalError(w, r, "failed to issue token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
