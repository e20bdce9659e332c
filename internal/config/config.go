// Package config loads dmv-dates settings from the environment, an optional
// .env file and a YAML file of applicant form fields.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/dmv-dates/internal/scraper"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration
type Config struct {
	Endpoint    string
	UserAgent   string
	Timeout     time.Duration
	Location    *time.Location
	Concurrency int
	ParamsFile  string
	LogLevel    string
	LogFormat   string

	TwitterAPIKey       string
	TwitterAPISecret    string
	TwitterAccessToken  string
	TwitterAccessSecret string

	TelegramBotToken string
	TelegramChatID   string
}

// Load reads configuration from environment variables and .env file (if present).
// Existing environment variables take precedence over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment, applying defaults
func FromEnv() (*Config, error) {
	cfg := &Config{
		Endpoint:    getenv("DMV_ENDPOINT", scraper.BehindTheWheelURL),
		UserAgent:   getenv("DMV_USER_AGENT", scraper.UserAgent),
		Timeout:     scraper.Timeout,
		Location:    time.UTC,
		Concurrency: 1,
		ParamsFile:  os.Getenv("DMV_PARAMS_FILE"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getenv("LOG_FORMAT", "text")),

		TwitterAPIKey:       os.Getenv("TWITTER_API_KEY"),
		TwitterAPISecret:    os.Getenv("TWITTER_API_SECRET"),
		TwitterAccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		TwitterAccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}

	if v := os.Getenv("DMV_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DMV_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid DMV_TIMEOUT: must be positive, got %s", d)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("DMV_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DMV_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	if v := os.Getenv("DMV_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DMV_CONCURRENCY: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid DMV_CONCURRENCY: must be at least 1, got %d", n)
		}
		cfg.Concurrency = n
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %s (must be 'text' or 'json')", cfg.LogFormat)
	}

	return cfg, nil
}

// LoadParams reads applicant form fields from a YAML mapping such as
//
//	firstName: PAT
//	lastName: DRIVER
//	birthYear: 1990
//
// Scalar values are kept as written; nested values are rejected.
func LoadParams(path string) (scraper.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing params file: %w", err)
	}

	params := make(scraper.Params, len(raw))
	for k, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("params file: field %q must be a scalar", k)
		}
		params[k] = node.Value
	}
	return params, nil
}

// ParseParam splits a "key=value" flag into its parts
func ParseParam(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", fmt.Errorf("invalid param %q (want key=value)", s)
	}
	return k, v, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
