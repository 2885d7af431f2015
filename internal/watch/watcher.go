package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"cfgen/pkg/logging"
)

// DefaultDebounce is how long the watcher waits for additional changes before
// invoking the callback.
const DefaultDebounce = 500 * time.Millisecond

// Watcher invokes a callback when the watched override file changes.
type Watcher struct {
	mu sync.Mutex

	// path is the override file being watched
	path string

	// debounce is how long to wait for additional changes
	debounce time.Duration

	// onChange is invoked after changes settle
	onChange func()

	watcher *fsnotify.Watcher
	timer   *time.Timer
	stopCh  chan struct{}
	running bool
}

// New creates a watcher for the override file at path. A zero debounce uses
// DefaultDebounce.
func New(path string, debounce time.Duration, onChange func()) *Watcher {
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
	}
}

// Start begins watching. The parent directory is watched rather than the file
// itself so that creation and editor rename-over-save are observed too.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		w.Stop()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logging.Info("Watch", "Watching %s for changes", w.path)
	go w.processEvents(ctx)
	return nil
}

// Stop stops watching and cancels any pending callback. Safe to call more
// than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	w.watcher.Close()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("Watch", "Override file changed (%s), scheduling regeneration", event.Op)
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("Watch", "Watcher error: %v", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}
