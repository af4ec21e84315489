package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle is how long a path must stay quiet before it is reported, so an
// editor's burst of writes turns into one callback.
const settle = 100 * time.Millisecond

type Watcher struct {
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	exts    []string
}

// NewWatcher watches paths. Directories are watched recursively. Events are
// queued from the moment NewWatcher returns.
func NewWatcher(logger *zap.Logger, paths []string, exts []string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{logger: logger, watcher: fw, exts: exts}
	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
	}
	return w, nil
}

func (w *Watcher) add(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.watcher.Add(root)
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) wanted(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return slices.Contains(w.exts, filepath.Ext(path))
}

// Run calls fn for every written or created file until ctx is done, then
// closes the watcher.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	defer w.watcher.Close()

	pending := make(map[string]time.Time)
	tick := time.NewTicker(settle / 2)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.add(event.Name); err != nil {
						w.logger.Warn("watch new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !w.wanted(event.Name) {
				continue
			}
			w.logger.Debug("file event", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			pending[event.Name] = time.Now()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		case now := <-tick.C:
			for path, at := range pending {
				if now.Sub(at) < settle {
					continue
				}
				delete(pending, path)
				if info, err := os.Stat(path); err != nil || info.IsDir() {
					continue
				}
				fn(path)
			}
		}
	}
}
