package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/kiekky-couples/internal/matching"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis", cfg.HistoryBackend)
	assert.Equal(t, 14, cfg.HistoryLookback)
	assert.Equal(t, "embedded", cfg.CatalogSource)
	assert.Equal(t, 3, cfg.SuggestionCount)
	assert.Equal(t, matching.AdditiveScore, cfg.DateScoreMode)
	assert.Equal(t, matching.WeightedPenalty, cfg.GiftTriggerPolicy)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HISTORY_BACKEND", "Postgres")
	t.Setenv("HISTORY_LOOKBACK", "7")
	t.Setenv("DATE_SCORE_MODE", "deductive")
	t.Setenv("GIFT_TRIGGER_POLICY", "HARD-VETO")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("ENABLE_METRICS", "false")
	t.Setenv("ALLOWED_ORIGINS", " https://app.kiekky.com, ,https://admin.kiekky.com ")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.HistoryBackend)
	assert.Equal(t, 7, cfg.HistoryLookback)
	assert.Equal(t, matching.DeductiveScore, cfg.DateScoreMode)
	assert.Equal(t, matching.HardVeto, cfg.GiftTriggerPolicy)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, []string{"https://app.kiekky.com", "https://admin.kiekky.com"}, cfg.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default secret in production", func(c *Config) { c.Environment = "production" }},
		{"memory history in production", func(c *Config) {
			c.Environment = "production"
			c.JWTSecret = "real"
			c.HistoryBackend = "memory"
		}},
		{"unknown history backend", func(c *Config) { c.HistoryBackend = "mongo" }},
		{"redis without url", func(c *Config) { c.RedisURL = "" }},
		{"negative lookback", func(c *Config) { c.HistoryLookback = -1 }},
		{"file catalog without path", func(c *Config) { c.CatalogSource = "file" }},
		{"s3 catalog without bucket", func(c *Config) { c.CatalogSource = "s3" }},
		{"unknown catalog source", func(c *Config) { c.CatalogSource = "ftp" }},
		{"zero suggestions", func(c *Config) { c.SuggestionCount = 0 }},
		{"unknown score mode", func(c *Config) { c.DateScoreMode = "average" }},
		{"unknown trigger policy", func(c *Config) { c.GiftTriggerPolicy = "ignore" }},
		{"wildcard origin in production", func(c *Config) {
			c.Environment = "production"
			c.JWTSecret = "real"
			c.AllowedOrigins = []string{"*"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
