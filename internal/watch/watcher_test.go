package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solution.py")
	if err := os.WriteFile(path, []byte("print(1)\n"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	fw, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer fw.Stop()

	if !fw.IsWatching() {
		t.Fatal("watcher not running after Start")
	}

	if err := os.WriteFile(path, []byte("print(2)\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case ev := <-fw.Events():
		if filepath.Clean(ev.Path) != path {
			t.Errorf("event path = %q, want %q", ev.Path, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload event within 5s")
	}

	if got := fw.GetStats().Reloads; got < 1 {
		t.Errorf("Reloads = %d, want >= 1", got)
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solution.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	fw, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer fw.Stop()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("unrelated"), 0644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case ev := <-fw.Events():
		t.Errorf("unexpected event for sibling write: %+v", ev)
	case <-time.After(1200 * time.Millisecond):
		// Debounce window plus slack elapsed with no event.
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	fw, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := fw.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	fw.Stop()
	fw.Stop()

	if fw.IsWatching() {
		t.Error("watcher still running after Stop")
	}
}
