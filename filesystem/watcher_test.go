package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherMergesWrites(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "watched.conf")
	if err := os.WriteFile(fpath, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher, err := OpenWatcher()
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Watch(fpath); err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"b", "c", "d"} {
		if err := os.WriteFile(fpath, []byte(s), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	select {
	case ev := <-watcher.Events():
		if filepath.Clean(ev.Name) != filepath.Clean(fpath) {
			t.Errorf("event for %s, want %s", ev.Name, fpath)
		}
		if !ev.Has(WatchOpWrite) {
			t.Errorf("merged event should have Write, got %v", ev.Op)
		}
	case err := <-watcher.Errors():
		t.Fatal(err)
	case <-ctx.Done():
		t.Fatal("no event received from Watcher")
	}

	// writes are merged, so no more event should follow soon.
	select {
	case ev := <-watcher.Events():
		t.Errorf("unexpected second event %v", ev)
	case <-time.After(3 * settleDuration):
	}
}
