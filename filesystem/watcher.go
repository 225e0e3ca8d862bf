package filesystem

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Re-exported so that users need not import fsnotify.
type WatchEvent = fsnotify.Event
type WatchOp = fsnotify.Op

const (
	WatchOpCreate = fsnotify.Create
	WatchOpWrite  = fsnotify.Write
	WatchOpRemove = fsnotify.Remove
	WatchOpRename = fsnotify.Rename
	WatchOpChmod  = fsnotify.Chmod
)

// Watcher notifies file changes.
type Watcher interface {
	Watch(filepath string) error
	UnWatch(filepath string) error
	Events() <-chan WatchEvent
	Errors() <-chan error
	Close() error
}

// Editors often save a file by several writes in a row.
// Events arriving within settleDuration are merged into one per file.
const settleDuration = 100 * time.Millisecond

type debounceWatcher struct {
	w            *fsnotify.Watcher
	pathResolver PathResolver

	events chan WatchEvent
	errors chan error
	done   chan struct{}
}

func newWatcher(pr PathResolver) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	dw := &debounceWatcher{
		w:            w,
		pathResolver: pr,
		events:       make(chan WatchEvent),
		errors:       make(chan error),
		done:         make(chan struct{}),
	}
	go dw.loop()
	return dw, nil
}

func (dw *debounceWatcher) loop() {
	defer func() {
		close(dw.events)
		close(dw.errors)
	}()

	settle := time.NewTimer(settleDuration)
	if !settle.Stop() {
		<-settle.C
	}
	pending := make(map[string]WatchOp)
	var order []string

	for {
		select {
		case <-dw.done:
			return

		case ev, ok := <-dw.w.Events:
			if !ok {
				return
			}
			if _, exist := pending[ev.Name]; !exist {
				order = append(order, ev.Name)
			}
			pending[ev.Name] |= ev.Op
			if !settle.Stop() {
				select {
				case <-settle.C:
				default:
				}
			}
			settle.Reset(settleDuration)

		case err, ok := <-dw.w.Errors:
			if !ok {
				return
			}
			select {
			case dw.errors <- err:
			case <-dw.done:
				return
			}

		case <-settle.C:
			for _, name := range order {
				select {
				case dw.events <- WatchEvent{Name: name, Op: pending[name]}:
				case <-dw.done:
					return
				}
				delete(pending, name)
			}
			order = order[:0]
		}
	}
}

func (dw *debounceWatcher) Close() error {
	select {
	case <-dw.done:
	default:
		close(dw.done)
	}
	return dw.w.Close()
}

func (dw *debounceWatcher) Watch(fpath string) error {
	p, err := dw.pathResolver.ResolvePath(fpath)
	if err != nil {
		return fmt.Errorf("failed to Watch(%s): %w", fpath, err)
	}
	return dw.w.Add(p)
}

func (dw *debounceWatcher) UnWatch(fpath string) error {
	p, err := dw.pathResolver.ResolvePath(fpath)
	if err != nil {
		return fmt.Errorf("failed to UnWatch(%s): %w", fpath, err)
	}
	return dw.w.Remove(p)
}

func (dw *debounceWatcher) Events() <-chan WatchEvent { return dw.events }
func (dw *debounceWatcher) Errors() <-chan error      { return dw.errors }
