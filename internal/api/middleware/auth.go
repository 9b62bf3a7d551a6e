// Package middleware provides the request-level guards applied by the
// router, chiefly the bearer-token authorization gate.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/service/auth"
)

// unauthorizedMessage is the fixed rejection text the frontend matches on.
const unauthorizedMessage = "unauthorized access"

// AuthMiddleware guards routes behind bearer-token verification. It is
// applied per route group; routes outside a gated group are deliberately
// open, and that asymmetry is part of the system's contract.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates an AuthMiddleware verifying with the given
// token service.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid, unexpired token and
// attaches the decoded claims to the request context. Every rejection is a
// 401 with the fixed unauthorized body. The scheme word of the Authorization
// header is not inspected: the second whitespace-separated field is taken as
// the token, whatever precedes it.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		var token string
		if parts := strings.Split(header, " "); len(parts) > 1 {
			token = parts[1]
		}

		claims, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaims extracts the verified token claims from the request context.
// Returns false when the request did not pass through the gate.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
