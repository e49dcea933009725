package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "warn" {
		t.Errorf("expected default level 'warn', got '%s'", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format 'console', got '%s'", cfg.Format)
	}
}

func TestInit_JSON(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Debug().Int("nodes", 3).Msg("graph built")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "graph built" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["nodes"] != float64(3) {
		t.Errorf("nodes = %v", entry["nodes"])
	}
	if _, ok := entry["time"]; ok {
		t.Error("timestamp present without Timestamp option")
	}
}

func TestInit_LevelFilters(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info event logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn event missing: %s", out)
	}
}

func TestInit_Console(t *testing.T) {
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})

	l := With("import")
	l.Info().Str("file", "cocktails.csv").Msg("importing")

	out := buf.String()
	for _, want := range []string{"importing", "component=import", "file=cocktails.csv"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q: %s", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{" debug ", zerolog.DebugLevel},
		{"invalid", zerolog.WarnLevel},
		{"", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
