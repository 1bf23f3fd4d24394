// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Provider  ProviderConfig
	Search    SearchConfig
	GeoIP     GeoIPConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
	Countries CountriesConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// ProviderConfig holds upstream flight-data provider settings.
type ProviderConfig struct {
	Host    string        `env:"RAPIDAPI_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	APIKey  string        `env:"RAPIDAPI_KEY"`
	BaseURL string        `env:"RAPIDAPI_BASE_URL"`
	Timeout time.Duration `env:"RAPIDAPI_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds flight search fan-out settings.
type SearchConfig struct {
	GlobalTimeout time.Duration `env:"SEARCH_GLOBAL_TIMEOUT" envDefault:"30s"`
	MaxWindowDays int           `env:"SEARCH_MAX_WINDOW_DAYS" envDefault:"14"`
	MaxConcurrent int           `env:"SEARCH_MAX_CONCURRENT" envDefault:"8"`
}

// GeoIPConfig holds IP geolocation service settings.
type GeoIPConfig struct {
	BaseURL string        `env:"GEOIP_BASE_URL" envDefault:"https://ipapi.co"`
	Timeout time.Duration `env:"GEOIP_TIMEOUT" envDefault:"5s"`
}

// RateLimitConfig holds client-side upstream rate limiting settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	// APIKey guards the search endpoints. An empty value disables the guard.
	APIKey string `env:"API_KEY"`
}

// CountriesConfig holds the country market table settings.
type CountriesConfig struct {
	Path string `env:"COUNTRIES_CONFIG_PATH" envDefault:"data/countries-config.json"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("RAPIDAPI_TIMEOUT must be positive")
	}
	if cfg.Search.GlobalTimeout <= 0 {
		return fmt.Errorf("SEARCH_GLOBAL_TIMEOUT must be positive")
	}
	if cfg.GeoIP.Timeout <= 0 {
		return fmt.Errorf("GEOIP_TIMEOUT must be positive")
	}

	// Validate per-call timeout is less than the search global timeout
	if cfg.Provider.Timeout >= cfg.Search.GlobalTimeout {
		return fmt.Errorf("RAPIDAPI_TIMEOUT (%s) should be less than SEARCH_GLOBAL_TIMEOUT (%s)",
			cfg.Provider.Timeout, cfg.Search.GlobalTimeout)
	}

	// Validate provider credentials
	if cfg.Provider.Host == "" {
		return fmt.Errorf("RAPIDAPI_HOST must not be empty")
	}

	// Validate fan-out bounds
	if cfg.Search.MaxWindowDays < 2 {
		return fmt.Errorf("SEARCH_MAX_WINDOW_DAYS must be at least 2, got %d", cfg.Search.MaxWindowDays)
	}
	if cfg.Search.MaxConcurrent < 1 {
		return fmt.Errorf("SEARCH_MAX_CONCURRENT must be at least 1, got %d", cfg.Search.MaxConcurrent)
	}

	// Validate rate limiting
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimit.Burst)
	}

	// Validate countries table path
	if cfg.Countries.Path == "" {
		return fmt.Errorf("COUNTRIES_CONFIG_PATH must not be empty")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
