package payment

import "context"

// MockService is a configurable Service double for tests. This is the single
// canonical mock; tests must not define their own.
type MockService struct {
	CreateIntentFunc func(ctx context.Context, price float64) (string, error)

	// Fixed fields for simple cases.
	ClientSecret string
	Err          error

	// Prices records every CreateIntent call.
	Prices []float64
}

var _ Service = (*MockService)(nil)

func (m *MockService) CreateIntent(ctx context.Context, price float64) (string, error) {
	m.Prices = append(m.Prices, price)
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, price)
	}
	return m.ClientSecret, m.Err
}
