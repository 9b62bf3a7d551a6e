package payment

import (
	"context"
	"fmt"

	"github.com/sports-academy/server/internal/config"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
)

// stripeService implements Service against the Stripe API.
type stripeService struct{}

var _ Service = (*stripeService)(nil)

// NewStripeService configures the Stripe client with the gateway API key and
// returns the payment service.
func NewStripeService(cfg config.PaymentConfig) Service {
	stripe.Key = cfg.SecretKey
	return &stripeService{}
}

// CreateIntent creates a card payment intent in USD for the given price.
func (s *stripeService) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
