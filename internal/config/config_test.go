package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TENNIS_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 || !cfg.IsDevelopment() {
		t.Errorf("server defaults = %d %q", cfg.Port, cfg.Env)
	}
	if cfg.TennisAPIKey != "secret" {
		t.Errorf("TennisAPIKey = %q", cfg.TennisAPIKey)
	}
	if cfg.ProviderTimeout != 10*time.Second || cfg.ProviderCacheTTL != 10*time.Minute {
		t.Errorf("provider defaults = %v %v", cfg.ProviderTimeout, cfg.ProviderCacheTTL)
	}
	if cfg.BreakerMaxRequests != 3 || cfg.BreakerFailureRatio != 0.6 {
		t.Errorf("breaker defaults = %d %v", cfg.BreakerMaxRequests, cfg.BreakerFailureRatio)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TENNIS_API_KEY", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("PROVIDER_RATE_LIMIT", "2.5")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9090 || cfg.IsDevelopment() {
		t.Errorf("server = %d %q", cfg.Port, cfg.Env)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.ProviderRateLimit != 2.5 || cfg.ProviderTimeout != 3*time.Second {
		t.Errorf("provider = %v %v", cfg.ProviderRateLimit, cfg.ProviderTimeout)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want fallback 4", cfg.WorkerCount)
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{"TENNIS_API_KEY": ""}},
		{"ratio above one", map[string]string{"TENNIS_API_KEY": "k", "BREAKER_FAILURE_RATIO": "1.5"}},
		{"negative ratio", map[string]string{"TENNIS_API_KEY": "k", "BREAKER_FAILURE_RATIO": "-0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}
