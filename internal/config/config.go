package config

import (
	"github.com/caarlos0/env/v11"

	"affiliate-tracker/internal/config/configs"
)

// Config aggregates all configuration sections for the tracker. Fields are
// populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is not
	// currently used by the application but may be useful for logging or
	// metrics.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server, including the CORS
	// allow-list. Environment variables prefixed with HTTP_ populate it.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ populate it.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection, either as a single URL or
	// as discrete host/port/credential fields. Environment variables
	// prefixed with PSQL_ populate it.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Dashboard configures the base URLs the embedded dashboard uses to
	// reach the tracking API. Environment variables prefixed with
	// DASHBOARD_ populate it.
	Dashboard configs.Dashboard `envPrefix:"DASHBOARD_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
