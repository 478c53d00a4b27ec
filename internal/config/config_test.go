package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HOST", "PORT", "SHUTDOWN_TIMEOUT", "METRICS_ENABLED", "METRICS_TOKEN",
		"APP_ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr() != ":8080" {
		t.Fatalf("addr=%q", cfg.Server.Addr())
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown=%s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Env != EnvProduction || cfg.IsDevelopment() {
		t.Fatalf("env=%q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Token != "" {
		t.Fatalf("metrics=%+v", cfg.Metrics)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("cors=%v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_TOKEN", "scrape")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Fatalf("addr=%q", cfg.Server.Addr())
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Fatalf("shutdown=%s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("env=%q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Token != "scrape" {
		t.Fatalf("metrics=%+v", cfg.Metrics)
	}
	if strings.Join(cfg.CORSAllowedOrigins, "|") != "http://a.example|http://b.example" {
		t.Fatalf("cors=%v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UnparsableNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown=%s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics should stay enabled")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port not numeric", "PORT", "http"},
		{"unknown env", "APP_ENV", "staging"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"negative shutdown", "SHUTDOWN_TIMEOUT", "-1"},
		{"no origins", "CORS_ALLOWED_ORIGINS", " , "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
