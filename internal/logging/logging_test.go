package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("note added", "author", "Kid")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "note added") || !strings.Contains(out, "author=Kid") {
		t.Fatalf("output = %q, want info record with author attr", out)
	}
}

func TestOpen_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "familyboard.log")

	logger, closer, err := Open(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Debug("navigate", "to", "board")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "navigate") {
		t.Fatalf("log file = %q, want navigate record", data)
	}
}

func TestOpen_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "env.log")

	logger, closer, err := Open(Options{Path: path})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Warn("dropped")
	_ = closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Fatalf("warn record written with LOG_LEVEL=error: %q", data)
	}
}

func TestOpen_EmptyPathFails(t *testing.T) {
	if _, _, err := Open(Options{Path: "  "}); err == nil {
		t.Fatalf("Open returned nil error, want error")
	}
}
