package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.raw); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestLoggerFiltersBelowMinimum(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, LevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")
	l.Error("visible error")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug/info should be filtered, got %q", out.String())
	}
	if !strings.Contains(out.String(), "visible warn") {
		t.Errorf("warn missing from stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "visible error") {
		t.Errorf("error missing from stderr: %q", errOut.String())
	}
}

func TestLoggerWithPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out, LevelDebug).With("server").With("req-1")

	l.Info("hello %d", 42)

	if !strings.Contains(out.String(), "[server] [req-1] hello 42") {
		t.Errorf("unexpected line: %q", out.String())
	}
}
