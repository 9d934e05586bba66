package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUseWriter(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, "info")
	defer UseWriter(&bytes.Buffer{}, "info")

	Debug().Msg("hidden")
	Error().Err(errors.New("boom")).Str("app", "Terminal").Msg("launch failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug message should be filtered at info level")
	}

	var line map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &line); err != nil {
		t.Fatalf("Expected one JSON line, got %q: %v", out, err)
	}
	if line["app"] != "Terminal" || line["error"] != "boom" || line["level"] != "error" {
		t.Errorf("Unexpected log line: %v", line)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	UseWriter(&buf, "error")
	defer UseWriter(&bytes.Buffer{}, "info")

	Info().Msg("before")
	SetLevel("debug")
	Debug().Msg("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("Info should be filtered at error level")
	}
	if !strings.Contains(out, "after") {
		t.Error("Debug should be written after SetLevel(debug)")
	}
}

func TestUseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rocket.log")

	if err := UseFile(path, "info"); err != nil {
		t.Fatalf("UseFile failed: %v", err)
	}
	Info().Int("apps", 3).Msg("index built")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file should exist: %v", err)
	}
	if !strings.Contains(string(data), "index built") {
		t.Errorf("Log file missing message: %s", data)
	}

	// Closing twice is harmless
	if err := Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}
}
