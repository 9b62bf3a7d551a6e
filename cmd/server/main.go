// Package main implements the sports academy API server: user registration,
// class publishing and approval, student cart selections, and card payment
// intents, backed by MongoDB and Stripe.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sports-academy/server/internal/config"
	"github.com/sports-academy/server/internal/platform/logger"
	"github.com/sports-academy/server/internal/platform/mongodb"
)

func main() {
	// A .env file is optional; deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A malformed store address is fatal. An unreachable deployment is not:
	// the listener starts regardless and requests surface store errors
	// individually. The client is never closed during normal operation.
	client, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize document store client: %v", err)
	}

	if err := mongodb.Ping(ctx, client); err != nil {
		appLogger.Error("failed to ping document store", "error", err)
	} else {
		appLogger.Info("connected to document store", "database", cfg.Database.Name)
	}

	app := newApplication(cfg, appLogger, client)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
