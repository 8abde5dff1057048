package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("FT_STRING", "value")
	t.Setenv("FT_BOOL", "false")
	t.Setenv("FT_BAD_BOOL", "nope")
	t.Setenv("FT_INT", "7")
	t.Setenv("FT_FLOAT", "2.5")
	t.Setenv("FT_DURATION", "150ms")
	t.Setenv("FT_BAD_DURATION", "soon")

	assert.Equal(t, "value", envString("FT_STRING", "def"))
	assert.Equal(t, "def", envString("FT_MISSING", "def"))
	assert.False(t, envBool("FT_BOOL", true))
	assert.True(t, envBool("FT_BAD_BOOL", true))
	assert.Equal(t, 7, envInt("FT_INT", 1))
	assert.Equal(t, 2.5, envFloat("FT_FLOAT", 1))
	assert.Equal(t, 150*time.Millisecond, envDuration("FT_DURATION", time.Second))
	assert.Equal(t, time.Second, envDuration("FT_BAD_DURATION", time.Second))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AI_GENERATION_DELAY", "")

	cfg := Load()

	assert.Equal(t, "FitTrack", cfg.AppName)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 2*time.Second, cfg.AIGenerationDelay)
	assert.Equal(t, StorageDriverLocal, cfg.StorageDriver)
}

func TestSanitizedDropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:      "FitTrack",
		ResendAPIKey: "re_secret",
		S3SecretKey:  "s3_secret",
		MetricsPass:  "pass",
		DBConnection: "postgres://user:pw@host/db",
		S3Endpoint:   "http://minio:9000",
	}

	safe := cfg.Sanitized()

	assert.Equal(t, "FitTrack", safe.AppName)
	assert.Equal(t, "http://minio:9000", safe.S3Endpoint)
	assert.Empty(t, safe.ResendAPIKey)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.MetricsPass)
	assert.Empty(t, safe.DBConnection)
}
