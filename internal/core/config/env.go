package config

import "os"

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_HTTP_USER_AGENT"); v != "" {
		cfg.HTTP.UserAgent = v
	}
	if v := os.Getenv("TADA_HTTP_AUTHORIZATION"); v != "" {
		cfg.HTTP.Authorization = v
	}
	if v := os.Getenv("TADA_HTTP_FROM"); v != "" {
		cfg.HTTP.From = v
	}
}
