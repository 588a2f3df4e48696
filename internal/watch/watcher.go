// Package watch reloads the submission buffer when the backing file changes
// on disk. It watches the file's parent directory (editors replace files by
// rename, which drops inode watches) and debounces rapid save bursts.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"codeclash/internal/logging"
)

// Event is one settled change to the watched file.
type Event struct {
	Path string
	At   time.Time
}

// Stats tracks watcher activity for debugging.
type Stats struct {
	Reloads   int
	Errors    int
	LastEvent time.Time
}

// FileWatcher delivers debounced change notifications for a single file.
type FileWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	pending     time.Time
	debounceDur time.Duration
	events      chan Event
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	logger      *zap.Logger

	stats Stats
}

// New creates a FileWatcher for path. The file itself may not exist yet;
// the parent directory must.
func New(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher:     watcher,
		path:        abs,
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		events:      make(chan Event, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logging.Watch(),
	}, nil
}

// Events is the channel settled changes arrive on. Stop closes it once the
// loop has drained.
func (fw *FileWatcher) Events() <-chan Event {
	return fw.events
}

// Start begins watching. Non-blocking; the loop runs in a goroutine until
// Stop is called or ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	fw.mu.Unlock()

	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		fw.mu.Lock()
		fw.running = false
		fw.mu.Unlock()
		return err
	}
	fw.logger.Info("watching file", zap.String("path", fw.path))

	go fw.run(ctx)
	return nil
}

// Stop halts the watcher and waits for the loop to exit.
func (fw *FileWatcher) Stop() {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return
	}
	fw.running = false
	fw.mu.Unlock()

	close(fw.stopCh)
	<-fw.doneCh

	if err := fw.watcher.Close(); err != nil {
		fw.logger.Error("closing watcher", zap.Error(err))
	}
	close(fw.events)
}

// IsWatching reports whether the loop is running.
func (fw *FileWatcher) IsWatching() bool {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	return fw.running
}

// GetStats returns a snapshot of watcher activity.
func (fw *FileWatcher) GetStats() Stats {
	fw.mu.RLock()
	defer fw.mu.RUnlock()
	return fw.stats
}

func (fw *FileWatcher) run(ctx context.Context) {
	defer close(fw.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watch error", zap.Error(err))
			fw.mu.Lock()
			fw.stats.Errors++
			fw.mu.Unlock()

		case <-ticker.C:
			fw.flushPending()
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != fw.path {
		return
	}
	// Write covers in-place saves; Create and Rename cover editors that
	// write a temp file and swap it in. Chmod is noise.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	fw.logger.Debug("file event", zap.String("op", event.Op.String()))

	fw.mu.Lock()
	fw.pending = time.Now()
	fw.stats.LastEvent = fw.pending
	fw.mu.Unlock()
}

func (fw *FileWatcher) flushPending() {
	fw.mu.Lock()
	if fw.pending.IsZero() || time.Since(fw.pending) < fw.debounceDur {
		fw.mu.Unlock()
		return
	}
	fw.pending = time.Time{}
	fw.mu.Unlock()

	// The file may have been deleted between the event and the flush.
	if _, err := os.Stat(fw.path); err != nil {
		return
	}

	fw.mu.Lock()
	fw.stats.Reloads++
	fw.mu.Unlock()

	ev := Event{Path: fw.path, At: time.Now()}
	select {
	case fw.events <- ev:
	default:
		// A reload is already queued; the consumer reads the file fresh
		// anyway, so dropping the duplicate loses nothing.
	}
}
