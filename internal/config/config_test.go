package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LOG_LEVEL", "MINIO_FILE_ACCOUNT", "MINIO_FILE_REGION",
		"S3_MAX_IDLE_CONNS", "S3_MAX_IDLE_CONNS_PER_HOST", "S3_CONNECT_TIMEOUT_SECONDS",
		"S3_RESPONSE_HEADER_TIMEOUT_SECONDS", "S3_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "HO", cfg.DefaultAccount)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 100, cfg.HTTP.MaxIdleConns)
	assert.Equal(t, 10, cfg.HTTP.ConnectTimeout)
	assert.Equal(t, 0, cfg.HTTP.RequestTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MINIO_FILE_ACCOUNT", "VIZ")
	t.Setenv("MINIO_FILE_REGION", "eu-central-1")
	t.Setenv("S3_CONNECT_TIMEOUT_SECONDS", "3")
	t.Setenv("S3_REQUEST_TIMEOUT_SECONDS", "600")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "VIZ", cfg.DefaultAccount)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, 3, cfg.HTTP.ConnectTimeout)
	assert.Equal(t, 600, cfg.HTTP.RequestTimeout)
}

func TestLoadIgnoresInvalidInts(t *testing.T) {
	t.Setenv("S3_MAX_IDLE_CONNS", "lots")
	t.Setenv("S3_CONNECT_TIMEOUT_SECONDS", "-5")

	cfg := Load()
	assert.Equal(t, 100, cfg.HTTP.MaxIdleConns)
	assert.Equal(t, 10, cfg.HTTP.ConnectTimeout)
}
