package auth

import "errors"

// Common token service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't verify against the server secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's validity window has passed.
	ErrExpiredToken = errors.New("authentication token has expired")
)
