package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANALYZER_URL", "")
	t.Setenv("REQUEST_TIMEOUT_SEC", "")
	t.Setenv("ARCHIVE_BACKEND", "")

	cfg := Load()
	if cfg.AnalyzerURL != "http://127.0.0.1:8000" {
		t.Errorf("AnalyzerURL: got %q, want loopback default", cfg.AnalyzerURL)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout: got %v, want 90s", cfg.RequestTimeout)
	}
	if cfg.ArchiveBackend != ArchiveNone {
		t.Errorf("ArchiveBackend: got %q, want %q", cfg.ArchiveBackend, ArchiveNone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANALYZER_URL", "https://analyzer.internal:9000")
	t.Setenv("SESSION_TTL_MIN", "5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg := Load()
	if cfg.AnalyzerURL != "https://analyzer.internal:9000" {
		t.Errorf("AnalyzerURL: got %q", cfg.AnalyzerURL)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("SessionTTL: got %v, want 5m", cfg.SessionTTL)
	}
	if cfg.RateLimitBurst != 5 {
		t.Errorf("RateLimitBurst: got %d, want fallback 5", cfg.RateLimitBurst)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{AnalyzerURL: "http://127.0.0.1:8000", ArchiveBackend: ArchiveNone, DefaultLang: "de"}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"ok", func(*Config) {}, nil},
		{"relative analyzer url", func(c *Config) { c.AnalyzerURL = "/analyze" }, ErrInvalidAnalyzerURL},
		{"ftp analyzer url", func(c *Config) { c.AnalyzerURL = "ftp://host" }, ErrInvalidAnalyzerURL},
		{"unknown archive", func(c *Config) { c.ArchiveBackend = "mongo" }, ErrUnknownArchive},
		{"unsupported lang", func(c *Config) { c.DefaultLang = "fr" }, ErrUnsupportedLang},
	}

	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		err := cfg.Validate()
		if tt.want == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}
