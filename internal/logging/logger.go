// Package logging provides categorized file-based logging for clash.
// The interactive board owns the terminal, so nothing may write to stdout
// or stderr while it runs; all diagnostics go to a dated log file instead.
// Until Initialize is called every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem's log stream.
type Category string

const (
	CategoryBoot  Category = "boot"  // Startup, config resolution
	CategoryAPI   Category = "api"   // Arena service calls
	CategoryBoard Category = "board" // Board state transitions
	CategoryWatch Category = "watch" // File watcher events
	CategoryMock  Category = "mock"  // Mock arena service
)

var (
	mu   sync.RWMutex
	root *zap.Logger
	file *os.File
)

// Initialize opens the log file under dir and builds the root logger.
// Call once at startup; debug widens the level from info to debug.
func Initialize(dir string, debug bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("clash_%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), level)

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
	}
	root = zap.New(core)
	file = f

	root.Named(string(CategoryBoot)).Info("logging initialized",
		zap.String("path", path),
		zap.Bool("debug", debug))
	return nil
}

// Get returns the logger for a category. Safe to call before Initialize;
// it hands out a no-op logger until then.
func Get(category Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if root == nil {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Boot returns the startup logger.
func Boot() *zap.Logger { return Get(CategoryBoot) }

// API returns the arena-call logger.
func API() *zap.Logger { return Get(CategoryAPI) }

// Board returns the board-state logger.
func Board() *zap.Logger { return Get(CategoryBoard) }

// Watch returns the file-watcher logger.
func Watch() *zap.Logger { return Get(CategoryWatch) }

// Mock returns the mock-service logger.
func Mock() *zap.Logger { return Get(CategoryMock) }

// Close flushes and closes the log file. Call at shutdown.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		_ = root.Sync()
		root = nil
	}
	if file != nil {
		file.Close()
		file = nil
	}
}
