package stores

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const (
	debounceDelay   = 50 * time.Millisecond
	eventBufferSize = 16
)

// Change reports that a data file was modified outside this process.
type Change struct {
	// File is the base name of the changed file, e.g. "blocks.json".
	File string
}

// Watcher watches the data directory so a running TUI can reload data files
// another process (or another instance) wrote.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan Change

	mu       sync.Mutex
	debounce map[string]*time.Timer
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher starts watching dataDir. The directory is created if missing.
func NewWatcher(dataDir string) (*Watcher, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dataDir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		events:   make(chan Change, eventBufferSize),
		debounce: make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Events returns the change channel.
func (w *Watcher) Events() <-chan Change { return w.events }

// Close stops watching and closes the event channel.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	w.closed = true
	for name, t := range w.debounce {
		t.Stop()
		delete(w.debounce, name)
	}
	w.mu.Unlock()

	close(w.events)
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			name := filepath.Base(ev.Name)
			if filepath.Ext(name) != ".json" {
				continue
			}
			w.schedule(name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("data watcher error")
		}
	}
}

// schedule emits a change after a short quiet period, collapsing the burst
// of events an atomic write produces into one notification.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.debounce[name]; ok {
		t.Reset(debounceDelay)
		return
	}

	w.debounce[name] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		delete(w.debounce, name)
		if w.closed {
			return
		}
		select {
		case w.events <- Change{File: name}:
		default:
		}
	})
}
