package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"keyword-planner/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL run store. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the fetch cache.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// DataForSEO configures the keyword sources.
	DataForSEO configs.DataForSEO `envPrefix:"DATAFORSEO_"`

	// OpenAI configures the completion client.
	OpenAI configs.OpenAI `envPrefix:"OPENAI_"`

	Research configs.Research `envPrefix:"RESEARCH_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; values
// already set in the environment win. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
