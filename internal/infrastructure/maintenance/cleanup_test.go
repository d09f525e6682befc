package maintenance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("log"), 0o644); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRemoveOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := writeAged(t, dir, "bot.log.2026-01-01", 60*24*time.Hour)
	recent := writeAged(t, dir, "bot.log", time.Hour)
	unrelated := writeAged(t, dir, "notes.txt", 60*24*time.Hour)

	cleaner := NewLogCleaner(dir, zerolog.Nop())

	removed, err := cleaner.RemoveOldLogs(35 * 24 * time.Hour)
	if err != nil {
		t.Fatalf("RemoveOldLogs failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 removed file, got %d", removed)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("Expected aged log removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("Expected recent log kept")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("Expected non-log file kept")
	}
}

func TestRemoveOldLogs_MissingDir(t *testing.T) {
	cleaner := NewLogCleaner(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())

	if _, err := cleaner.RemoveOldLogs(time.Hour); err == nil {
		t.Error("Expected error for missing directory")
	}
}
