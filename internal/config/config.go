// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the server.
type Config struct {
	Port      string `env:"PORT" envDefault:"7521"`
	MongoURI  string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB   string `env:"MONGODB_DATABASE" envDefault:"catalog"`
	WasmDir   string `env:"WASM_DIR" envDefault:"web/wasm"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Clusters is the maximum number of categories produced by training.
	Clusters int `env:"MODEL_CLUSTERS" envDefault:"10"`
	// MaxFeatures bounds the vocabulary of the categorizer.
	MaxFeatures int `env:"MODEL_MAX_FEATURES" envDefault:"1000"`
	// NotificationLimit is the number of notifications served, newest first.
	NotificationLimit int `env:"NOTIFICATION_LIMIT" envDefault:"10"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Clusters < 1 {
		return nil, fmt.Errorf("MODEL_CLUSTERS must be positive, got %d", cfg.Clusters)
	}
	if cfg.MaxFeatures < 1 {
		return nil, fmt.Errorf("MODEL_MAX_FEATURES must be positive, got %d", cfg.MaxFeatures)
	}
	if cfg.NotificationLimit < 1 {
		return nil, fmt.Errorf("NOTIFICATION_LIMIT must be positive, got %d", cfg.NotificationLimit)
	}
	return &cfg, nil
}
