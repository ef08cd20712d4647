package util

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogErrorWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "storyboard.log")
	l, err := InitLogger(path, "debug")
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	LogError("export pdf", errors.New("disk full"))
	LogError("ignored", nil)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "disk full") {
		t.Fatalf("expected logged error, got %q", data)
	}
	if strings.Contains(string(data), "ignored") {
		t.Fatalf("nil error should not be logged")
	}
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatalf("Logger should never be nil")
	}
}
