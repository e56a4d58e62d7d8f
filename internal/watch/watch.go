// Package watch waits for the registry document to appear on disk.
//
// The registry loader itself never retries; this lives on the CLI side for
// callers that start avm before Application Version Manager has written its
// document.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sevanssp/avm/internal/logger"
)

// WaitForFile blocks until path exists, the timeout elapses, or ctx is
// cancelled. The parent directory must already exist.
func WaitForFile(ctx context.Context, path string, timeout time.Duration) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	// The file may have appeared between the Stat and the Add.
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	logger.Debug().Str("path", path).Dur("timeout", timeout).Msg("waiting for registry document")

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	want := filepath.Clean(path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename) {
				if filepath.Clean(ev.Name) == want {
					return nil
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			return err
		case <-timer.C:
			return fmt.Errorf("timed out after %s waiting for %s", timeout, path)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
