package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Maps.Timeout != 3*time.Second {
		t.Errorf("expected 3s maps timeout, got %s", cfg.Maps.Timeout)
	}
	if cfg.Locator.FuzzyDistance != 0 {
		t.Errorf("expected fuzzy matching off, got %d", cfg.Locator.FuzzyDistance)
	}
}

func TestLoad_MissingKeyDisablesMaps(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Maps.Enabled() {
		t.Error("expected maps disabled without API key")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	t.Setenv("MAPS_TIMEOUT", "750ms")
	t.Setenv("MAPS_TRANSIT_ENABLED", "false")
	t.Setenv("FUZZY_DISTANCE", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("expected port 8081, got %d", cfg.Server.Port)
	}
	if !cfg.Maps.Enabled() || cfg.Maps.TransitEnabled {
		t.Errorf("unexpected maps config: %+v", cfg.Maps)
	}
	if cfg.Maps.Timeout != 750*time.Millisecond {
		t.Errorf("expected 750ms timeout, got %s", cfg.Maps.Timeout)
	}
	if cfg.Locator.FuzzyDistance != 1 {
		t.Errorf("expected fuzzy distance 1, got %d", cfg.Locator.FuzzyDistance)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port too high", "SERVER_PORT", "70000"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"timeout too short", "MAPS_TIMEOUT", "10ms"},
		{"timeout too long", "MAPS_TIMEOUT", "1m"},
		{"fuzzy too large", "FUZZY_DISTANCE", "5"},
		{"watch without file", "GAZETTEER_WATCH", "true"},
		{"zero workers", "WORKER_COUNT", "0"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
