package auth

import (
	"context"
	"testing"
	"time"

	"github.com/sports-academy/server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		TokenSecret:          "test-signing-secret",
		TokenLifetimeMinutes: 120,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testConfig())

	payload := map[string]interface{}{
		"email": "student@example.com",
		"name":  "A Student",
	}

	token, err := svc.IssueToken(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "A Student", claims.Payload["name"])

	// Validity window is fixed at the configured lifetime.
	assert.WithinDuration(t, claims.IssuedAt.Add(2*time.Hour), claims.ExpiresAt, time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	ctx := context.Background()

	issuedAt := time.Now()
	svc := &hmacTokenService{
		signingKey:    []byte("test-signing-secret"),
		tokenLifetime: 2 * time.Hour,
		timeFunc:      func() time.Time { return issuedAt },
	}

	token, err := svc.IssueToken(ctx, map[string]interface{}{"email": "student@example.com"})
	require.NoError(t, err)

	// Still valid just inside the window.
	svc.timeFunc = func() time.Time { return issuedAt.Add(119 * time.Minute) }
	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)

	// Rejected once past it.
	svc.timeFunc = func() time.Time { return issuedAt.Add(121 * time.Minute) }
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testConfig())

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewTokenService(config.AuthConfig{
			TokenSecret:          "a-different-secret",
			TokenLifetimeMinutes: 120,
		})
		token, err := other.IssueToken(ctx, map[string]interface{}{"email": "x@example.com"})
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestIssueToken_PayloadCannotOverrideExpiry(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testConfig())

	forged := time.Now().Add(1000 * time.Hour)
	token, err := svc.IssueToken(ctx, map[string]interface{}{
		"email": "student@example.com",
		"exp":   forged.Unix(),
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Before(forged.Add(-900*time.Hour)))
}
