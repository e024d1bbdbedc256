package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriter_JSONForProduction(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "bluegreen-demo", "info", "production")

	log.Info("Starting", "commit_id", "deadbeef")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	if record["app"] != "bluegreen-demo" {
		t.Errorf("expected app attribute 'bluegreen-demo', got %v", record["app"])
	}
	if record["commit_id"] != "deadbeef" {
		t.Errorf("expected commit_id 'deadbeef', got %v", record["commit_id"])
	}
}

func TestNewWithWriter_TextForDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "bluegreen-demo", "debug", "local")

	log.Debug("debugging")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("expected text output with debug level, got %q", out)
	}
	// A bytes.Buffer is not a terminal, so no escape codes.
	if strings.Contains(out, colorReset) {
		t.Errorf("expected no color codes outside a terminal, got %q", out)
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "app", "warn", "production")

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info record to be filtered, got %q", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("expected warn record to be written")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).Level(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColorWriter_Enabled(t *testing.T) {
	var buf bytes.Buffer
	cw := &colorWriter{writer: &buf, enabled: true}

	input := []byte("level=ERROR msg=boom\n")
	n, err := cw.Write(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(input) {
		t.Errorf("expected %d bytes reported, got %d", len(input), n)
	}
	if !strings.Contains(buf.String(), colorRed+"level=ERROR"+colorReset) {
		t.Errorf("expected colored level, got %q", buf.String())
	}
}
