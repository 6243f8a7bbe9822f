package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SEOAUDIT_TIMEOUT", "SEOAUDIT_USER_AGENT", "SEOAUDIT_OUTPUT_DIR", "SEOAUDIT_FORMAT",
	"LOG_LEVEL", "LOG_FORMAT", "PORT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "SEO Analyzer Bot", cfg.UserAgent)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "8082", cfg.Port)
	assert.Equal(t, 2.0, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEOAUDIT_TIMEOUT", "30s")
	t.Setenv("SEOAUDIT_USER_AGENT", "TestBot/1.0")
	t.Setenv("SEOAUDIT_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("SEOAUDIT_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PORT", "9000")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg := FromEnv()
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "TestBot/1.0", cfg.UserAgent)
	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_BareSecondsAndGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEOAUDIT_TIMEOUT", "15")
	t.Setenv("RATE_LIMIT_BURST", "lots")
	cfg := FromEnv()
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.RateLimitBurst)

	t.Setenv("SEOAUDIT_TIMEOUT", "soon")
	assert.Equal(t, DefaultTimeout, FromEnv().Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"timeout too short", func(c *Config) { c.Timeout = 500 * time.Millisecond }, errInvalidTimeout},
		{"timeout too long", func(c *Config) { c.Timeout = 3 * time.Minute }, errInvalidTimeout},
		{"bad format", func(c *Config) { c.Format = "docx" }, errInvalidFormat},
		{"bad port", func(c *Config) { c.Port = "http" }, errInvalidPort},
		{"port out of range", func(c *Config) { c.Port = "70000" }, errInvalidPort},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, errInvalidLogLevel},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, errInvalidLogFormat},
		{"zero rps", func(c *Config) { c.RateLimitRPS = 0 }, errInvalidRateLimit},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, errInvalidRateLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg := FromEnv()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SEOAUDIT_USER_AGENT")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEOAUDIT_USER_AGENT=DotEnvBot\n"), 0644))

	t.Chdir(dir)
	t.Cleanup(func() { _ = os.Unsetenv("SEOAUDIT_USER_AGENT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DotEnvBot", cfg.UserAgent)
}

func TestRead_SkipsValidation(t *testing.T) {
	t.Setenv("SEOAUDIT_TIMEOUT", "500ms")

	cfg := Read()
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	assert.ErrorIs(t, cfg.Validate(), errInvalidTimeout)

	cfg.Timeout = 5 * time.Second
	assert.NoError(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn", "json")
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("url", "https://example.com").Warn("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "https://example.com", entry["url"])

	assert.Equal(t, logrus.InfoLevel, newLogger(&buf, "nonsense", "text").GetLevel())
}
