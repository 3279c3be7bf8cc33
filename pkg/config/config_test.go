package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_BURST", "LOG_LEVEL", "LOG_FILE",
	"CACHE_TYPE", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "MEMORY_CACHE_EXPIRATION", "SQLITE_PATH",
	"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_TIMEOUT", "DEFAULT_MODEL", "RESULT_TTL", "SESSION_TTL",
}

// clearConfigEnv blanks every key; t.Setenv restores them after the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 2.0, cfg.Server.RateLimit)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, 3600, cfg.Cache.Memory.DefaultExpiration)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Provider.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Provider.Timeout)
	assert.Equal(t, "gpt-4o", cfg.Provider.DefaultModel)
	assert.Equal(t, 24*time.Hour, cfg.Generation.ResultTTL)
	assert.Equal(t, 2*time.Hour, cfg.Generation.SessionTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("RATE_LIMIT", "0.5")
	t.Setenv("CACHE_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("OPENAI_API_KEY", "sk-server")
	t.Setenv("OPENAI_TIMEOUT", "45s")
	t.Setenv("RESULT_TTL", "3600")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Server.RateLimit)
	assert.Equal(t, "sqlite", cfg.Cache.Type)
	assert.Equal(t, "/tmp/x.db", cfg.Cache.SQLitePath)
	assert.Equal(t, "sk-server", cfg.Provider.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, time.Hour, cfg.Generation.ResultTTL, "bare numbers are seconds")
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
}

func TestLoadFromEnv_InvalidNumbersFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RATE_BURST", "lots")
	t.Setenv("SESSION_TTL", "soon")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, 2*time.Hour, cfg.Generation.SessionTTL)
}

func TestLoadFromEnv_ReadsDotEnv(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("DEFAULT_MODEL")
	os.Unsetenv("PORT")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DEFAULT_MODEL=gpt-4.1\nPORT=9000\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("DEFAULT_MODEL")
		os.Unsetenv("PORT")
	})

	// Real environment variables take precedence over the file
	t.Setenv("PORT", "7000")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1", cfg.Provider.DefaultModel)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8000", RateLimit: 1, RateBurst: 5},
		Cache:  CacheConfig{Type: "memory"},
		Provider: ProviderConfig{
			BaseURL:      "https://api.openai.com/v1",
			Timeout:      time.Minute,
			DefaultModel: "gpt-4o",
		},
		Generation: GenerationConfig{ResultTTL: time.Hour, SessionTTL: time.Hour},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"rate limiting disabled", func(c *Config) { c.Server.RateLimit = 0; c.Server.RateBurst = 0 }, ""},
		{"redis with address", func(c *Config) { c.Cache.Type = "redis"; c.Cache.Redis.Address = "localhost:6379" }, ""},
		{"sqlite with path", func(c *Config) { c.Cache.Type = "sqlite"; c.Cache.SQLitePath = "cache.db" }, ""},
		{"empty port", func(c *Config) { c.Server.Port = "" }, "port cannot be empty"},
		{"negative rate", func(c *Config) { c.Server.RateLimit = -1 }, "rate limit cannot be negative"},
		{"zero burst", func(c *Config) { c.Server.RateBurst = 0 }, "rate burst must be at least 1"},
		{"unknown cache", func(c *Config) { c.Cache.Type = "memcached" }, "cache type must be"},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis" }, "redis address cannot be empty"},
		{"sqlite without path", func(c *Config) { c.Cache.Type = "sqlite" }, "sqlite path cannot be empty"},
		{"no base url", func(c *Config) { c.Provider.BaseURL = "" }, "base URL"},
		{"no timeout", func(c *Config) { c.Provider.Timeout = 0 }, "timeout must be positive"},
		{"no default model", func(c *Config) { c.Provider.DefaultModel = "" }, "default model"},
		{"no result ttl", func(c *Config) { c.Generation.ResultTTL = 0 }, "result TTL"},
		{"no session ttl", func(c *Config) { c.Generation.SessionTTL = 0 }, "session TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
