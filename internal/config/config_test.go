package config

import (
	"testing"
	"time"

	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "cfb-fantasy-api" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if !cfg.ESPNEnabled {
		t.Fatalf("expected ESPN sync enabled by default")
	}
	if cfg.GamedaySyncInterval != 5*time.Minute {
		t.Fatalf("unexpected gameday sync interval %s", cfg.GamedaySyncInterval)
	}
	if cfg.ReconcileInterval != time.Hour {
		t.Fatalf("unexpected reconcile interval %s", cfg.ReconcileInterval)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without server address")
	}
}

func TestLoad_ESPNConfig(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ESPN_MAX_RETRIES", "4")
	t.Setenv("ESPN_TIMEOUT", "10s")
	t.Setenv("ESPN_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ESPNMaxRetries != 4 {
		t.Fatalf("unexpected ESPNMaxRetries %d", cfg.ESPNMaxRetries)
	}
	if cfg.ESPNTimeout != 10*time.Second {
		t.Fatalf("unexpected ESPNTimeout %s", cfg.ESPNTimeout)
	}
	if cfg.ESPNCircuitFailureCount != 3 {
		t.Fatalf("unexpected ESPNCircuitFailureCount %d", cfg.ESPNCircuitFailureCount)
	}
}

func TestLoad_RejectsInvalidDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("JOB_RECONCILE_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid JOB_RECONCILE_INTERVAL")
	}
}

func TestLoad_RejectsInvalidBooleans(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ESPN_ENABLED", "maybe")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ESPN_ENABLED")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"warn":    logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"info":    logging.LevelInfo,
		"bogus":   logging.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLogLevel(raw); got != want {
			t.Fatalf("parseLogLevel(%q)=%s, want %s", raw, got, want)
		}
	}
}
