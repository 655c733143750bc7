package host

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the configuration whenever the file at path is written,
// created or renamed into place. Bursts of events are collapsed: the reload
// happens once no event has arrived for the debounce period. The parent
// directory is watched, not the file, so atomic replace-by-rename is seen.
//
// Watch blocks until ctx is done.
func (h *Host) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	h.logger.Info("watching configuration file", zap.String("path", target))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(h.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn("watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			if err := h.Reload(ctx); err != nil {
				h.logger.Warn("reload failed", zap.Error(err))
			}
		}
	}
}
