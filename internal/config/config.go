package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           int
	Env            string
	RequestTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Provider
	TennisAPIKey      string
	TennisAPIBaseURL  string
	ProviderTimeout   time.Duration
	ProviderRateLimit float64
	ProviderRateBurst int
	ProviderCacheTTL  time.Duration

	// Circuit breaker
	BreakerMaxRequests  uint32
	BreakerTimeout      time.Duration
	BreakerFailureRatio float64

	// Cache, optional
	RedisURL string

	// Worker pool
	WorkerCount int
	QueueSize   int
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists. It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnvInt("PORT", 8080),
		Env:            getEnv("ENV", "development"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),

		TennisAPIBaseURL:  getEnv("TENNIS_API_BASE_URL", "https://api.api-tennis.com/tennis/"),
		ProviderTimeout:   getEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),
		ProviderRateLimit: getEnvFloat("PROVIDER_RATE_LIMIT", 5),
		ProviderRateBurst: getEnvInt("PROVIDER_RATE_BURST", 10),
		ProviderCacheTTL:  getEnvDuration("PROVIDER_CACHE_TTL", 10*time.Minute),

		BreakerMaxRequests:  uint32(getEnvInt("BREAKER_MAX_REQUESTS", 3)),
		BreakerTimeout:      getEnvDuration("BREAKER_TIMEOUT", 30*time.Second),
		BreakerFailureRatio: getEnvFloat("BREAKER_FAILURE_RATIO", 0.6),

		RedisURL: getEnv("REDIS_URL", ""),

		WorkerCount: getEnvInt("WORKER_COUNT", 4),
		QueueSize:   getEnvInt("QUEUE_SIZE", 100),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.TennisAPIKey, err = getEnvRequired("TENNIS_API_KEY"); err != nil {
		return nil, err
	}

	if cfg.BreakerFailureRatio <= 0 || cfg.BreakerFailureRatio > 1 {
		return nil, fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cfg.BreakerFailureRatio)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
