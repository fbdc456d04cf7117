// Package watch notifies when the SQLite store file is changed, so an open
// panel can pick up colors generated by another hexpair process.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of writes SQLite makes for one transaction.
const debounce = 100 * time.Millisecond

// Watcher watches a database file (and its -wal/-shm/-journal siblings).
// Changes arrive on C as empty signals; at most one is pending at a time.
type Watcher struct {
	C      <-chan struct{}
	Errors <-chan error

	w      *fsnotify.Watcher
	base   string
	out    chan struct{}
	errs   chan error
	stopCh chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New starts watching the directory containing path.
func New(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		w:      fw,
		base:   filepath.Base(path),
		out:    make(chan struct{}, 1),
		errs:   make(chan error, 1),
		stopCh: make(chan struct{}),
	}
	w.C = w.out
	w.Errors = w.errs

	go w.run()
	return w, nil
}

// Close stops the watcher. Pending debounced signals are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.stopCh)
	return w.w.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.schedule()
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case <-w.stopCh:
			return
		}
	}
}

// relevant reports whether event touches the database or one of its
// SQLite side files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.base)
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounce, w.emit)
}

func (w *Watcher) emit() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if stopped {
		return
	}
	select {
	case w.out <- struct{}{}:
	default:
	}
}
