package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stacklint/stacklint/internal/application/wiring"
	"github.com/stacklint/stacklint/internal/ui"
	"github.com/stacklint/stacklint/internal/validate"
)

// watchAndValidate re-runs validation whenever the deployments file
// changes. It watches the containing directory because most editors
// replace the file on save rather than writing it in place.
func watchAndValidate(container *wiring.Container, path string, opts validate.Options, format string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	validateOnce(container, opts, format)
	ui.Infof("Watching %s for changes (Ctrl-C to stop)", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// let the editor finish replacing the file
			time.Sleep(100 * time.Millisecond)

			ui.Step("Change detected, re-validating...")
			validateOnce(container, opts, format)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.Errorf("watch error: %v", watchErr)
		}
	}
}
