package config

import (
	"os"
	"strconv"
)

// Config aggregates service configuration values
type Config struct {
	Addr           string
	DBPath         string
	MaxUploadBytes int64
}

const (
	defaultAddr           = ":8080"
	defaultDBPath         = "orders.db"
	defaultMaxUploadBytes = 32 << 20
)

// Load reads configuration from environment variables, applying defaults
func Load() Config {
	cfg := Config{
		Addr:           valueOrDefault("SERVER_ADDR", defaultAddr),
		DBPath:         valueOrDefault("ORDERS_DB_PATH", defaultDBPath),
		MaxUploadBytes: defaultMaxUploadBytes,
	}

	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}

	return cfg
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
