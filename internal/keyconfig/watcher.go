package keyconfig

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("keyconfig: watcher closed")

// ChangeHandler is called with the path of a changed layer file.
type ChangeHandler func(path string)

// Watcher monitors layer files for changes. A change to a watched file
// means the configuration was edited outside the engine, so callers hook
// handlers that invalidate cached resolution state.
type Watcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	handlers []ChangeHandler
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher. Callers must Close it when done.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// OnChange registers a handler called for every observed change.
func (w *Watcher) OnChange(fn ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, fn)
}

// Watch starts watching a layer file.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.watcher.Add(abs)
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// loop dispatches fsnotify events to handlers until closed.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			handlers := make([]ChangeHandler, len(w.handlers))
			copy(handlers, w.handlers)
			w.mu.Unlock()
			for _, fn := range handlers {
				fn(ev.Name)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; a missed event at worst
			// delays invalidation until the next fingerprint check.
		}
	}
}
