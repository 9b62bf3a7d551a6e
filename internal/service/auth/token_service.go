// Package auth implements the signed-token identity service behind the
// authorization gate. Tokens are issued over whatever identity payload the
// frontend posts; the only claim the rest of the system interprets is the
// email, which is the logical identity of a user.
package auth

import (
	"context"
	"time"
)

// TokenService defines the operations for issuing and verifying identity tokens.
type TokenService interface {
	// IssueToken signs the given identity payload into a token with the
	// service's fixed validity window. The payload is embedded verbatim;
	// issued-at and expiry claims are added on top.
	IssueToken(ctx context.Context, payload map[string]interface{}) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its
	// decoded claims. It fails with ErrExpiredToken or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims are the decoded contents of a verified token.
type Claims struct {
	// Email is the caller's identity as claimed at issue time. Empty when the
	// issued payload carried no email field.
	Email string

	// IssuedAt and ExpiresAt are the token's validity window.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Payload holds every claim of the token, including the fields above in
	// their raw form.
	Payload map[string]interface{}
}
