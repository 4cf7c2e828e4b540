package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file changes on disk and
// passes the result to onChange. It blocks until ctx is canceled.
// Editors typically replace the file rather than write in place, so
// the parent directory is watched and events are filtered by name.
func Watch(ctx context.Context, onChange func(*Config)) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load()
			if err != nil {
				// A half-written file mid-save; the next event will
				// carry the complete version.
				continue
			}
			onChange(cfg)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
