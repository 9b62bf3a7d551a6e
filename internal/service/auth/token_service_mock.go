package auth

import "context"

// MockTokenService is a configurable TokenService double for tests. This is
// the single canonical mock; tests must not define their own.
type MockTokenService struct {
	IssueTokenFunc    func(ctx context.Context, payload map[string]interface{}) (string, error)
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*Claims, error)

	// Fixed fields for simple cases.
	Token       string
	Claims      *Claims
	IssueErr    error
	ValidateErr error
}

var _ TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) IssueToken(
	ctx context.Context,
	payload map[string]interface{},
) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, payload)
	}
	return m.Token, m.IssueErr
}

func (m *MockTokenService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
