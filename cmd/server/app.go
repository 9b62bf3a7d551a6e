package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sports-academy/server/internal/config"
	"github.com/sports-academy/server/internal/platform/mongodb"
	"github.com/sports-academy/server/internal/service/auth"
	"github.com/sports-academy/server/internal/service/payment"
	"github.com/sports-academy/server/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// application holds the process-scoped dependencies. Stores and services are
// interface-typed so the router tests can swap in doubles.
type application struct {
	config *config.Config
	logger *slog.Logger
	client *mongo.Client

	users      store.UserStore
	classes    store.ClassStore
	selections store.SelectionStore
	payLog     store.PaymentStore

	tokens   auth.TokenService
	payments payment.Service
}

// newApplication wires every dependency from the established store client.
func newApplication(cfg *config.Config, logger *slog.Logger, client *mongo.Client) *application {
	return &application{
		config: cfg,
		logger: logger,
		client: client,

		users:      mongodb.NewUserStore(client, cfg.Database.Name),
		classes:    mongodb.NewClassStore(client, cfg.Database.Name),
		selections: mongodb.NewSelectionStore(client, cfg.Database.Name),
		payLog:     mongodb.NewPaymentStore(client, cfg.Database.Name),

		tokens:   auth.NewTokenService(cfg.Auth),
		payments: payment.NewStripeService(cfg.Payment),
	}
}

// Run builds the router and serves until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
