package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL,required"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	Port         int    `env:"PORT" envDefault:"4000"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// ServerAddr returns the listen address in :port format.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AIConfigured reports whether the summarization collaborator can be used.
func (c *Config) AIConfigured() bool {
	return c.OpenAIAPIKey != ""
}
