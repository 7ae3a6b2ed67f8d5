// Package watch monitors dataset files and reports settled changes so
// the caller can re-run the analysis pipeline. Each change produces a
// fresh batch run; nothing is recomputed incrementally.
package watch

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoFiles is returned when a watcher is created with nothing to watch.
var ErrNoFiles = errors.New("no files to watch")

// Change reports a dataset file whose contents have settled after
// one or more filesystem events.
type Change struct {
	Path string
}

// Watcher monitors dataset files using fsnotify. Events are debounced
// so editors that save in bursts trigger a single change. The parent
// directories are watched rather than the files themselves, which
// keeps rename-and-replace saves visible.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	files   map[string]bool
	dirs    []string
	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given dataset files.
func NewWatcher(files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watched := make(map[string]bool, len(files))
	dirSet := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		watched[abs] = true
		dirSet[filepath.Dir(abs)] = true
	}
	dirs := make([]string, 0, len(dirSet))
	for d := range dirSet {
		dirs = append(dirs, d)
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		files:   watched,
		dirs:    dirs,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the dataset directories for changes.
func (w *Watcher) Start() error {
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 200 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Flush pending on close. Stop is blocked on done at
				// this point, so nothing may be reading changes; drop
				// what the buffer can't hold rather than deadlock.
				for file := range pending {
					select {
					case w.changes <- Change{Path: file}:
					default:
						return
					}
				}
				return
			}

			if !w.isDatasetFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- Change{Path: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) isDatasetFile(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return w.files[abs]
}
