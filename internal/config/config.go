// Package config loads and validates the process configuration from the
// environment. Every recognized option has a default, so the server starts
// with no configuration at all and degrades per-request when secrets or
// store credentials are missing, mirroring how the deployment has always
// behaved.
package config

import (
	"fmt"
	"net/url"
)

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Payment  PaymentConfig
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the document-store connection settings.
type DatabaseConfig struct {
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_pass"`
	Host     string `mapstructure:"db_host" validate:"required"`
	Name     string `mapstructure:"db_name" validate:"required"`
}

// URI builds the connection string for the configured deployment. With
// credentials present it targets a hosted cluster over SRV, the way the
// production Atlas deployment is addressed; without them it falls back to a
// plain local connection.
func (c DatabaseConfig) URI() string {
	if c.User != "" && c.Password != "" {
		return fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(c.User),
			url.QueryEscape(c.Password),
			c.Host,
		)
	}
	return fmt.Sprintf("mongodb://%s", c.Host)
}

// AuthConfig contains the token-signing settings.
type AuthConfig struct {
	// TokenSecret is the HMAC key tokens are signed and verified with.
	TokenSecret string `mapstructure:"token_secret"`

	// TokenLifetimeMinutes is the fixed validity window of issued tokens.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// PaymentConfig contains the payment-gateway settings.
type PaymentConfig struct {
	// SecretKey is the gateway API key.
	SecretKey string `mapstructure:"payment_secret"`
}
