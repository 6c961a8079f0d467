package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// Base URL of the shopping-cart backend.
	ShopURL string

	// Per-request timeout on the shared HTTP client.
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. Defaults fit a backend
// running locally on its standard port; override with env vars or flags.
func Load() Config {
	return Config{
		ShopURL:        getenv("SHOP_URL", "http://localhost:8080"),
		RequestTimeout: parseDuration(getenv("REQUEST_TIMEOUT", "10s"), 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
