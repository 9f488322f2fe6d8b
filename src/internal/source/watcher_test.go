package source

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DebouncedReload(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "domains", domainList)

	var calls atomic.Int32
	changed := make(chan struct{}, 10)
	w := NewWatcher(dir, 50*time.Millisecond, func() {
		calls.Add(1)
		changed <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the tree.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "domains", "list.json")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(domainList), 0644); err != nil {
			t.Fatal(err)
		}
	}
	writeList(t, dir, "cloud", cloudList)

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected reload callback")
	}

	time.Sleep(200 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("Expected burst of writes to trigger one reload, got %d", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	if err := w.Run(context.Background()); err == nil {
		t.Error("Expected error for missing directory")
	}
}
