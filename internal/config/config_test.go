package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "API_BASE_PATH", "API_ENABLE_METRICS", "LOG_VERBOSITY", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "localhost:7000" {
		t.Fatalf("expected localhost:7000, got %q", cfg.Addr())
	}
	if cfg.APIBasePath != "/" {
		t.Fatalf("expected base path /, got %q", cfg.APIBasePath)
	}
	if !cfg.EnableMetrics {
		t.Fatalf("expected metrics enabled by default")
	}
	if cfg.Verbosity != 0 {
		t.Fatalf("expected verbosity 0, got %d", cfg.Verbosity)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("API_ENABLE_METRICS", "false")
	t.Setenv("LOG_VERBOSITY", "1")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9000" {
		t.Fatalf("expected 0.0.0.0:9000, got %q", cfg.Addr())
	}
	if cfg.EnableMetrics {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Verbosity != 1 {
		t.Fatalf("expected verbosity 1, got %d", cfg.Verbosity)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_VERBOSITY", "1")

	cfg, err := Load([]string{"-a", "127.0.0.1:7100", "-vv", "--base-path", "/fixture", "--metrics=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != "7100" {
		t.Fatalf("expected 127.0.0.1:7100, got %q", cfg.Addr())
	}
	if cfg.Verbosity != 2 {
		t.Fatalf("expected verbosity 2, got %d", cfg.Verbosity)
	}
	if cfg.APIBasePath != "/fixture" {
		t.Fatalf("expected base path /fixture, got %q", cfg.APIBasePath)
	}
	if cfg.EnableMetrics {
		t.Fatalf("expected metrics disabled by flag")
	}
}

func TestLoadRejectsVerbosityAboveMax(t *testing.T) {
	clearEnv(t)
	if _, err := Load([]string{"-vvv"}); err == nil {
		t.Fatalf("expected error for -vvv")
	}

	t.Setenv("LOG_VERBOSITY", "5")
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for LOG_VERBOSITY=5")
	}
}

func TestLoadRejectsBadAddress(t *testing.T) {
	if _, err := Load([]string{"--address", "no-port"}); err == nil {
		t.Fatalf("expected error for address without port")
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected pflag.ErrHelp, got %v", err)
	}
}
