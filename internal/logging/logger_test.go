package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPrintfAppendsTimestampedLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := New(dir)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.sink.clock = func() time.Time { return time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC) }
	logger.Printf("starting (home %s)\n", "/tmp/archive")
	logger.Named("catalog").Printf("%d specimens total", 25)
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{
		"[2024-05-01T08:30:00Z] starting (home /tmp/archive)",
		"[2024-05-01T08:30:00Z] catalog: 25 specimens total",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Printf("ignored")
	logger.Named("tui").Printf("ignored")
	if err := logger.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
