// Package config contains configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the tunalyze CLI.
type Config struct {
	// Spotify
	SpotifyClientID     string
	SpotifyClientSecret string

	// Requests
	Timeout  time.Duration
	Language string

	// Export
	Market   string
	Timezone string
}

// Load reads the configuration from environment variables. A .env file in
// the working directory is loaded first when present. Credentials are not
// required at load time; the gateway checks them with Validate when it is
// constructed, so commands like --help work on an unconfigured machine.
func Load() (*Config, error) {
	// Ignore the error if the file is not found.
	_ = godotenv.Load()

	timeout, err := getEnvDuration("TUNALYZE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Config{
		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		Timeout:             timeout,
		Language:            getEnv("TUNALYZE_LANGUAGE", "en"),
		Market:              getEnv("TUNALYZE_MARKET", ""),
		Timezone:            getEnv("TUNALYZE_TIMEZONE", ""),
	}, nil
}

// Validate checks that the credentials are configured.
func (c *Config) Validate() error {
	if c.SpotifyClientID == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID is required")
	}

	if c.SpotifyClientSecret == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_SECRET is required")
	}

	return nil
}

// String renders the configuration for logging. The client secret is
// redacted.
func (c *Config) String() string {
	return fmt.Sprintf("Config(client_id=%s, client_secret=<redacted>, timeout=%s, language=%s, market=%q, timezone=%q)",
		c.SpotifyClientID, c.Timeout, c.Language, c.Market, c.Timezone)
}

// getEnv reads an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as a time.Duration.
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 5s: %w", key, err)
	}
	return duration, nil
}
