package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForEvent(t *testing.T, w *Watcher, want string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case got, ok := <-w.Events:
			if !ok {
				t.Fatal("events channel closed before expected event")
			}
			if got == want {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("unexpected watcher error: %v", err)
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", want)
		}
	}
}

func TestWatcherReportsDefinitionEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "sheet.yaml")
	if err := os.WriteFile(target, []byte("sheet: a.png\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForEvent(t, w, target)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	script := filepath.Join(dir, "on_frame.tengo")
	if err := os.WriteFile(script, []byte("onEvent := func() {}\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// only the script should come through
	waitForEvent(t, w, script)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error on second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatal("expected events channel to be closed")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
