package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external rewrites of a FileStore's record so a running
// session can reload state written by another process. The parent directory
// is watched rather than the file itself, so a record that does not exist
// yet (or is replaced atomically) is still picked up.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchFile starts watching the store's backing file and invokes onChange
// after writes settle. onChange runs on the watcher goroutine; callers that
// mutate shared state must marshal the call back onto their own thread.
func WatchFile(store *FileStore, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	path := filepath.Clean(store.Path())
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}
	go w.loop(path, onChange)
	return w, nil
}

// Stop closes the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
}

func (w *Watcher) loop(path string, onChange func()) {
	defer close(w.done)

	// Debounce: editors and atomic renames produce event bursts. The timer
	// is armed by the first event of a burst and re-armed by each follower,
	// so the loop is fully idle while nothing changes.
	const debounce = 100 * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
		case <-timer.C:
			onChange()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
