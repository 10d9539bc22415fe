package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is built once at startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// Common
	Env      string `env:"ENV" env-default:"local"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	// API
	Port string `env:"PORT" env-default:"8080"`
	// Provider
	Provider             string `env:"PROVIDER" env-default:"chain"`
	ProviderBaseURL      string `env:"PROVIDER_BASE_URL" env-default:"https://api.exchangerate.host"`
	ProviderAPIKey       string `env:"PROVIDER_API_KEY"`
	ProviderAPIKeyHeader string `env:"PROVIDER_API_KEY_HEADER"`
	// Pricing
	SpreadBPS int `env:"SPREAD_BPS" env-default:"100"`
}

// Load reads environment variables and applies defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	return cfg, nil
}

// APIKeyEnabled reports whether primary provider calls carry the API key header.
func (c Config) APIKeyEnabled() bool {
	return c.ProviderAPIKey != "" && c.ProviderAPIKeyHeader != ""
}
