package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestJSONHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("search started", "exe", "Game.exe")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "search started" {
		t.Errorf("expected msg 'search started', got %q", m["msg"])
	}
	if m["exe"] != "Game.exe" {
		t.Errorf("expected exe 'Game.exe', got %q", m["exe"])
	}
}

func TestTextHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("search started", "exe", "Game.exe")

	out := buf.String()
	if !strings.Contains(out, "msg=\"search started\"") {
		t.Errorf("expected text output containing msg, got: %s", out)
	}
	if !strings.Contains(out, "exe=Game.exe") {
		t.Errorf("expected text output containing exe=Game.exe, got: %s", out)
	}
}
