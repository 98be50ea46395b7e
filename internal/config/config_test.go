package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ICONFINDER_API_KEY", " abc ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "abc" {
		t.Fatalf("expected trimmed api key, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://api.iconfinder.com/v4" {
		t.Fatalf("unexpected base url %s", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.JournalTTL != 7*24*time.Hour {
		t.Fatalf("unexpected journal ttl %v", cfg.JournalTTL)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestStringRedactsAPIKey(t *testing.T) {
	cfg := Config{APIKey: "super-secret"}
	if s := cfg.String(); strings.Contains(s, "super-secret") {
		t.Fatalf("api key leaked: %s", s)
	}
}
