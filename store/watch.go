package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/personaplus/plus/internal/osutil"
)

// Watch signals on the returned channel whenever a file beneath dir is
// written, created, removed, or renamed. Signals are coalesced: a reader that
// falls behind sees one pending signal, not a backlog. The channel is closed
// once ctx is done or the watcher fails.
func Watch(ctx context.Context, dir string) (<-chan struct{}, error) {
	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}

	var closeOnce sync.Once

	closeWatcher := func() {
		closeOnce.Do(func() {
			_ = watcher.Close()
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer closeWatcher()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op == fsnotify.Chmod {
					continue
				}

				select {
				case changes <- struct{}{}:
				default:
				}
			}
		}
	}()

	return changes, nil
}
