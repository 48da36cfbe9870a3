package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. It is populated from the
// environment once at startup and never mutated afterwards.
type Config struct {
	// Server
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"5001"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUsername string `env:"DB_USERNAME" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBDatabase string `env:"DB_DATABASE" envDefault:"samurai"`
	DBSSL      bool   `env:"DB_SSL" envDefault:"true"`

	// Google OAuth
	GoogleClientID        string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret    string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI     string `env:"GOOGLE_REDIRECT_URI"`
	AfterLoginRedirectURI string `env:"AFTER_LOGIN_REDIRECT_URI"`

	// Signs the OAuth state parameter.
	StateSecret string `env:"STATE_SECRET" envDefault:"secret-string"`

	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	SentryDSN string `env:"SENTRY_DSN"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string from the DB_* parts.
// DB_SSL=true enables certificate verification on the connection.
func (c *Config) DSN() string {
	sslmode := "disable"
	if c.DBSSL {
		sslmode = "verify-full"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUsername, c.DBPassword, c.DBDatabase, c.DBPort, sslmode)
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
