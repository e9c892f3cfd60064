// Package config loads server settings from an optional JSON file with
// environment-variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port    int    `json:"port"`
	DataDir string `json:"data_dir"`

	TMDBAPIKey  string `json:"tmdb_api_key"`
	TMDBBaseURL string `json:"tmdb_base_url,omitempty"`

	// Outbound fetch tuning.
	MaxConcurrentFetches int `json:"max_concurrent_fetches"`
	RetryAttempts        int `json:"retry_attempts"`
	RetryBaseDelayMS     int `json:"retry_base_delay_ms"`

	// Inbound API protection.
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateLimitBurst     int     `json:"rate_limit_burst"`

	LogFile string `json:"log_file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:                 3000,
		DataDir:              "./data",
		MaxConcurrentFetches: 15,
		RetryAttempts:        3,
		RetryBaseDelayMS:     500,
		RateLimitPerSecond:   20,
		RateLimitBurst:       40,
	}
}

// Load reads the JSON config at path (if it exists) over the defaults,
// then applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.TMDBAPIKey == "" {
		return Config{}, fmt.Errorf("TMDB_API_KEY is not configured")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.TMDBAPIKey = v
	}
	if v := os.Getenv("TMDB_BASE_URL"); v != "" {
		cfg.TMDBBaseURL = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("MAX_CONCURRENT_FETCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConcurrentFetches = n
		}
	}
	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryAttempts = n
		}
	}
	if v := os.Getenv("RETRY_BASE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryBaseDelayMS = n
		}
	}
}
