package theme

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/sunder/pkg/errors"
	"github.com/go-drift/sunder/pkg/sunder"
)

// Watch reloads the theme file at path whenever it changes and passes the
// new theme to onChange. Files that fail to load are passed to onError (if
// non-nil) and otherwise ignored, so a half-saved file never replaces a good
// theme. A panic in onChange is reported and the watch goes on. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Theme), onError func(error)) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch theme: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch theme: %w", err)
	}
	sunder.Logger().Info("watching theme", "path", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			t, err := Load(path)
			if err != nil {
				sunder.Logger().Warn("theme reload failed", "path", path, "err", err)
				if onError != nil {
					onError(err)
				}
				continue
			}
			deliver(t, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

func deliver(t *Theme, onChange func(*Theme)) {
	defer errors.Scope{Op: "theme.Watch"}.Recover(nil)
	onChange(t)
}
