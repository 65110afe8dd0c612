package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads an options file whenever it is written
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. Editors often replace a file instead of
// writing it in place, so the directory is watched and events are filtered
// by name.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return &Watcher{path: abs, watcher: w}, nil
}

// Run hands every successfully parsed version of the file to onChange until
// ctx is done. Versions that fail to parse are logged and skipped, a save
// in progress often shows up as a truncated file first.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(w.path)
			if err != nil {
				log.Printf("Watcher: failed to read %s: %v", w.path, err)
				continue
			}
			cfg, err := Parse(data)
			if err != nil {
				log.Printf("Watcher: ignoring %s: %v", w.path, err)
				continue
			}
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
