package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/logging"
)

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{"zero", 0, nil},
		{"partial", 5, all[5:]},
		{"exact", 10, all},
		{"more than exists", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tail(path, tt.maxLines)
			if err != nil {
				t.Fatalf("tail returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("tail mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecent_MissingFile(t *testing.T) {
	entries, err := Recent(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || len(entries) != 0 {
		t.Fatalf("Recent(missing) = (%v, %v), want (empty, nil)", entries, err)
	}
}

func TestRecent_DecodesZapLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.log")
	logger, err := logging.New(path, true)
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	logger.Info("person added", zap.String("name", "Ada"), zap.Int("age", 30))
	logger.Debug("films published", zap.Int("favorites", 1))
	_ = logger.Sync()

	entries, err := Recent(path, 1)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Message != "films published" {
		t.Fatalf("entries = %+v, want only the last line", entries)
	}

	entries, err = Recent(path, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	first := entries[0]
	if first.Level != "info" || first.Message != "person added" {
		t.Fatalf("first = %q/%q, want info/person added", first.Level, first.Message)
	}
	if first.Time.IsZero() {
		t.Fatalf("first.Time is zero")
	}
	if got := first.Summary(); got != "age=30 name=Ada" {
		t.Fatalf("Summary() = %q, want %q", got, "age=30 name=Ada")
	}
}

func TestDecode_PlainLine(t *testing.T) {
	e := decode("not json")
	if e.Message != "not json" || e.Summary() != "" {
		t.Fatalf("decode(plain) = %+v", e)
	}
}
