// Package watcher drives regeneration in watch mode: it observes the
// project's theme sources and config file and invokes a callback when any
// of them change.
package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Options controls watch behavior.
type Options struct {
	// DebounceMs groups rapid successive writes to the same file into one
	// regeneration. Editors often write a file several times per save.
	DebounceMs int

	// Extensions limits which files trigger regeneration. Empty means any
	// file.
	Extensions []string
}

// DefaultOptions returns the watch defaults.
func DefaultOptions() Options {
	return Options{
		DebounceMs: 200,
		Extensions: []string{".ts", ".tsx", ".js", ".json", ".yaml", ".yml"},
	}
}

// Watcher watches theme and config sources and calls OnChange per
// changed path, debounced.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	options Options

	// OnChange is invoked with the changed path after the debounce window.
	OnChange func(path string)

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// New creates a watcher. onChange must not be nil.
func New(onChange func(path string), options Options, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		watcher:        fsw,
		logger:         logger,
		options:        options,
		OnChange:       onChange,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start watches the given paths. Directories are watched recursively;
// plain files are watched through their parent directory so editors that
// replace files on save still produce events.
func (w *Watcher) Start(paths []string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher: already stopped")
	}
	w.mu.Unlock()

	watched := make(map[string]bool)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			w.logger.Warn("skipping unwatchable path", "path", p, "error", err)
			continue
		}
		dir := p
		if !info.IsDir() {
			dir = filepath.Dir(p)
		}
		if err := w.addRecursive(dir, watched); err != nil {
			return err
		}
	}
	if len(watched) == 0 {
		return fmt.Errorf("watcher: no watchable paths")
	}

	w.logger.Info("watcher started", "directories", len(watched))
	go w.eventLoop()
	return nil
}

func (w *Watcher) addRecursive(root string, watched map[string]bool) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if shouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watched[path] {
			return nil
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
			return nil
		}
		watched[path] = true
		return nil
	})
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if shouldIgnoreDir(path) || !w.matchesExtension(path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.logger.Debug("file event", "op", event.Op.String(), "file", path)
	w.debounce(path)
}

// debounce schedules the change callback; a newer event on the same path
// resets the window.
func (w *Watcher) debounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}
	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()

			if w.OnChange != nil {
				w.OnChange(path)
			}
		},
	)
}

func (w *Watcher) matchesExtension(path string) bool {
	if len(w.options.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range w.options.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func shouldIgnoreDir(path string) bool {
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build", ".next":
		return true
	}
	return false
}
