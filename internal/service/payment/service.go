// Package payment wraps the card-payment gateway behind a single
// create-intent call: a decimal price goes in, the gateway's client secret
// comes out. No retries and no idempotency key are applied; a failed gateway
// call surfaces to the caller as-is.
package payment

import "context"

// Service defines the payment gateway operations the API uses.
type Service interface {
	// CreateIntent requests a card payment intent for the given decimal price
	// in the platform currency and returns the client secret the frontend
	// uses to complete the charge.
	CreateIntent(ctx context.Context, price float64) (string, error)
}
