package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("  ", true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("nop logger reports debug enabled")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shelf.log")

	logger, err := New(path, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("film toggled")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "film toggled") {
		t.Fatalf("log = %q, want it to contain the info message", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log = %q, debug message written at info level", out)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.log")

	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("log = %q, want debug message", string(data))
	}
}
