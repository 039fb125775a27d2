// Package watcher re-runs a callback when any of a set of files changes.
// Parent directories are watched rather than the files themselves, so
// editor save-via-rename and regenerated files keep triggering events.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the window in which rapid successive events collapse
// into a single callback invocation.
const DefaultDebounce = 500 * time.Millisecond

type Config struct {
	// Paths are the files to watch.
	Paths []string
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// Logf receives progress and callback-failure messages. Optional.
	Logf func(format string, args ...any)
}

// Run watches the configured files until ctx is cancelled, invoking fn after
// each debounced batch of changes. A failing fn is logged and watching
// continues; only watcher setup errors and ctx cancellation end the loop.
func Run(ctx context.Context, cfg Config, fn func(context.Context) error) error {
	if len(cfg.Paths) == 0 {
		return errors.New("nothing to watch")
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer fsw.Close()

	watched := make(map[string]struct{}, len(cfg.Paths))
	dirs := make(map[string]struct{})
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve %s", p)
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if _, ours := watched[filepath.Clean(event.Name)]; !ours {
				continue
			}
			if !event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			logf("change detected: %s", event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logf("watch error: %v", err)

		case <-timerC:
			timerC = nil
			if err := fn(ctx); err != nil {
				logf("run failed: %v", err)
			}
		}
	}
}
