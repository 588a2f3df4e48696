package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetBeforeInitializeIsNop(t *testing.T) {
	// Must not panic or write anywhere.
	Get(CategoryBoard).Info("dropped on the floor")
	Board().Debug("also dropped")
}

func TestInitializeWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer Close()

	Get(CategoryAPI).Info("analyze complete", zap.Int("status", 200))
	Close()

	path := filepath.Join(dir, fmt.Sprintf("clash_%s.log", time.Now().Format("2006-01-02")))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "analyze complete") {
		t.Errorf("log file missing entry, got:\n%s", out)
	}
	if !strings.Contains(out, "api") {
		t.Errorf("log file missing category name, got:\n%s", out)
	}
}

func TestDebugGate(t *testing.T) {
	dir := t.TempDir()
	if err := Initialize(dir, false); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Get(CategoryBoard).Debug("too quiet for info level")
	Close()

	path := filepath.Join(dir, fmt.Sprintf("clash_%s.log", time.Now().Format("2006-01-02")))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(data), "too quiet") {
		t.Error("debug entry leaked through info level")
	}
}
