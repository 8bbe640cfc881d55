package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Data locations
	DataDir       string
	ParamsPath    string
	RatingsDBPath string

	// Season CSV fetching
	FetchRPS     float64
	FetchTimeout time.Duration

	// Telemetry
	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:       envStr("ELO_DATA_DIR", "data"),
		ParamsPath:    envStr("ELO_PARAMS_PATH", "internal/config/elo_params.yaml"),
		RatingsDBPath: envStr("RATINGS_DB_PATH", "data/ratings.db"),

		// Public stat sites throttle aggressively; default to one request
		// every two seconds.
		FetchRPS:     envFloat("FETCH_RPS", 0.5),
		FetchTimeout: time.Duration(envInt("FETCH_TIMEOUT_SEC", 30)) * time.Second,

		LogLevel: envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
