package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envKeys are the environment variables the server recognizes. Anything else
// in the environment is ignored.
var envKeys = []string{
	"port",
	"log_level",
	"db_user",
	"db_pass",
	"db_host",
	"db_name",
	"token_secret",
	"payment_secret",
	"token_lifetime_minutes",
}

// Load reads configuration from the environment, applies defaults, and
// validates the result. Environment variables use the upper-case form of the
// keys above (PORT, DB_USER, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 5000)
	v.SetDefault("log_level", "info")
	v.SetDefault("db_host", "localhost:27017")
	v.SetDefault("db_name", "sports")
	v.SetDefault("token_lifetime_minutes", 120)

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     v.GetInt("port"),
			LogLevel: v.GetString("log_level"),
		},
		Database: DatabaseConfig{
			User:     v.GetString("db_user"),
			Password: v.GetString("db_pass"),
			Host:     v.GetString("db_host"),
			Name:     v.GetString("db_name"),
		},
		Auth: AuthConfig{
			TokenSecret:          v.GetString("token_secret"),
			TokenLifetimeMinutes: v.GetInt("token_lifetime_minutes"),
		},
		Payment: PaymentConfig{
			SecretKey: v.GetString("payment_secret"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
