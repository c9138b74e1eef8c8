package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int    `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP
	Database  Database
	GRPC      GRPC   `envPrefix:"GRPC_"`
	TLS       TLS    `envPrefix:"TLS_"`
	Sentry    Sentry `envPrefix:"SENTRY_"`
}

// HTTP contains HTTP API server parameters.
type HTTP struct {
	Port      string `env:"PORT" envDefault:"3000"`
	BodyLimit int    `env:"HTTP_BODY_LIMIT" envDefault:"4194304"`
}

// Database contains database connection parameters.
type Database struct {
	URL string `env:"DATABASE_URL,required,notEmpty"`
}

// GRPC contains parameters of the gRPC health server.
type GRPC struct {
	Port    string `env:"PORT" envDefault:"50051"`
	Enabled bool   `env:"ENABLED" envDefault:"true"`
}

// TLS contains listener certificate parameters shared by both servers.
type TLS struct {
	Enabled            bool   `env:"ENABLED" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Sentry contains error reporting parameters. An empty DSN disables reporting.
type Sentry struct {
	DSN              string  `env:"DSN"`
	Environment      string  `env:"ENVIRONMENT" envDefault:"development"`
	TracesSampleRate float64 `env:"TRACES_SAMPLE_RATE" envDefault:"0"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
