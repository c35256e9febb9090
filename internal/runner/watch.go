package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watch runs once over paths, then re-runs changed .sql files whenever they
// are written or created, until ctx is cancelled. Each batch of results is
// passed to report.
func (r *Runner) Watch(ctx context.Context, paths []string, debounce time.Duration, report func([]FileResult)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	results, err := r.Run(ctx, paths)
	if err != nil {
		return err
	}
	report(results)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	explicit := make(map[string]bool)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := watchDirRecursive(watcher, p); err != nil {
				return fmt.Errorf("failed to watch %s: %w", p, err)
			}
			continue
		}
		explicit[filepath.Clean(p)] = true
		if err := watcher.Add(filepath.Dir(p)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(name); err == nil && info.IsDir() && !strings.HasPrefix(info.Name(), ".") {
					if err := watchDirRecursive(watcher, name); err != nil {
						r.logger.Error("failed to watch new directory", "path", name, "error", err)
					}
					continue
				}
			}
			if !explicit[name] && filepath.Ext(name) != SQLExt {
				continue
			}
			pending[name] = true
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			files := make([]string, 0, len(pending))
			for name := range pending {
				if _, err := os.Stat(name); err == nil {
					files = append(files, name)
				}
			}
			clear(pending)
			if len(files) == 0 {
				continue
			}
			slices.Sort(files)
			r.logger.Debug("files changed", "files", files)

			results, err := r.RunFiles(ctx, files)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			report(results)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all non-hidden subdirectories to
// the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
