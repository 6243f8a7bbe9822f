// Package config loads seoaudit settings from the environment. Values in
// .env.development or .env are loaded first; real environment variables win
// over both, and command-line flags win over everything.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "SEO Analyzer Bot"
	DefaultFormat    = "pdf"
	DefaultPort      = "8082"

	minTimeout = time.Second
	maxTimeout = 2 * time.Minute
)

var (
	errInvalidTimeout   = errors.New("config: SEOAUDIT_TIMEOUT must be between 1s and 2m")
	errInvalidFormat    = errors.New("config: SEOAUDIT_FORMAT must be pdf, markdown, json or html")
	errInvalidPort      = errors.New("config: invalid PORT number")
	errInvalidLogLevel  = errors.New("config: LOG_LEVEL must be debug, info, warn or error")
	errInvalidLogFormat = errors.New("config: LOG_FORMAT must be text or json")
	errInvalidRateLimit = errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
)

// Config holds all application configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	OutputDir string
	Format    string

	LogLevel  string
	LogFormat string

	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env files if present, then the environment, and validates the
// result.
func Load() (Config, error) {
	cfg := Read()
	return cfg, cfg.Validate()
}

// Read is Load without validation, for callers that apply overrides before
// calling Validate themselves.
func Read() Config {
	loadEnvFiles()
	return FromEnv()
}

// loadEnvFiles loads .env.development, falling back to .env. Missing files
// are ignored; godotenv never overrides variables that are already set.
func loadEnvFiles() {
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}
}

// FromEnv builds a Config from environment variables with defaults. It does
// not validate.
func FromEnv() Config {
	return Config{
		Timeout:        getEnvAsDuration("SEOAUDIT_TIMEOUT", DefaultTimeout),
		UserAgent:      getEnv("SEOAUDIT_USER_AGENT", DefaultUserAgent),
		OutputDir:      getEnv("SEOAUDIT_OUTPUT_DIR", ""),
		Format:         strings.ToLower(getEnv("SEOAUDIT_FORMAT", DefaultFormat)),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Port:           getEnv("PORT", DefaultPort),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 5),
	}
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if c.Timeout < minTimeout || c.Timeout > maxTimeout {
		return fmt.Errorf("%w: got %s", errInvalidTimeout, c.Timeout)
	}

	switch c.Format {
	case "pdf", "markdown", "md", "json", "html":
	default:
		return fmt.Errorf("%w: got %q", errInvalidFormat, c.Format)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", errInvalidPort, c.Port)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: got %q", errInvalidLogLevel, c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: got %q", errInvalidLogFormat, c.LogFormat)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("%w: got %v/%d", errInvalidRateLimit, c.RateLimitRPS, c.RateLimitBurst)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsFloat(key string, fallback float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

// getEnvAsDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return fallback
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
