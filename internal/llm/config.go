package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation client.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	APIVersion string
	MaxTokens  int
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults.
// The API key has no default; it must come from the environment.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.anthropic.com",
		Model:      "claude-sonnet-4-20250514",
		APIVersion: "2023-06-01",
		MaxTokens:  8000,
		TimeoutMs:  60000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("TAPER_API_KEY")
	if v := os.Getenv("TAPER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TAPER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TAPER_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("TAPER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TAPER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("TAPER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
