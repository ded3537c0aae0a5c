package config

import (
	"os"
	"strconv"

	"github.com/sashko-guz/minio-file/internal/storage"
	"github.com/sashko-guz/minio-file/internal/storage/drivers"
)

type Config struct {
	LogLevel       string
	DefaultAccount string
	Region         string
	HTTP           drivers.HTTPConfig
}

func Load() *Config {
	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultAccount: getEnv("MINIO_FILE_ACCOUNT", string(storage.AccountHO)),
		Region:         getEnv("MINIO_FILE_REGION", storage.DefaultRegion),
		HTTP: drivers.HTTPConfig{
			MaxIdleConns:          getEnvInt("S3_MAX_IDLE_CONNS", 100),
			MaxIdleConnsPerHost:   getEnvInt("S3_MAX_IDLE_CONNS_PER_HOST", 100),
			ConnectTimeout:        getEnvInt("S3_CONNECT_TIMEOUT_SECONDS", 10),
			ResponseHeaderTimeout: getEnvInt("S3_RESPONSE_HEADER_TIMEOUT_SECONDS", 10),
			RequestTimeout:        getEnvInt("S3_REQUEST_TIMEOUT_SECONDS", 0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}

	return parsed
}
