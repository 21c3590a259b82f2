// Package config provides hierarchical configuration loading for Noteloft.
// Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the Noteloft service.
type Config struct {
	Server    Server    `yaml:"server"`
	Postgres  Postgres  `yaml:"postgres"`
	Auth      Auth      `yaml:"auth"`
	Logging   Logging   `yaml:"logging"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port string `yaml:"port"`
	// Env gates development-only surfaces such as POST /seed.
	Env string `yaml:"env"` // "development" | "production"
	// AllowSeeding permits POST /seed even when Env is "production".
	AllowSeeding bool `yaml:"allow_seeding"`
}

// Postgres holds PostgreSQL connection configuration.
type Postgres struct {
	DSN             string        `yaml:"dsn"`
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
	HealthCheck     time.Duration `yaml:"health_check"`
}

// Auth holds token signing and password hashing configuration.
type Auth struct {
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenExpiry time.Duration `yaml:"token_expiry"`
	BcryptCost  int           `yaml:"bcrypt_cost"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Telemetry holds OpenTelemetry export configuration. An empty endpoint
// disables export entirely.
type Telemetry struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// Defaults returns a Config with sensible default values. The Postgres
// DSN and the JWT secret deliberately have no default: both must come
// from YAML or the environment, so a misconfigured deployment fails at
// startup instead of running with a guessable signing key.
func Defaults() Config {
	return Config{
		Server: Server{
			Port: "8080",
			Env:  "development",
		},
		Postgres: Postgres{
			MaxConns:        10,
			MinConns:        2,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 10 * time.Minute,
			HealthCheck:     time.Minute,
		},
		Auth: Auth{
			TokenExpiry: 24 * time.Hour,
			BcryptCost:  12,
		},
		Logging: Logging{
			Level:   "info",
			Service: "noteloft",
		},
		Telemetry: Telemetry{
			Insecure: true,
		},
	}
}
