package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/cppent/compiler/load"
	"github.com/syssam/cppent/internal/logger"
)

// DebounceDelay batches the file events of one save.
const DebounceDelay = 200 * time.Millisecond

// Watch runs Generate once and again every time a schema file under
// cfg.Paths changes, until ctx is canceled. Each outcome is passed to
// onResult; generation errors do not stop the watch.
func Watch(ctx context.Context, cfg Config, onResult func(*Report, error)) error {
	log := logger.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(cfg.Paths)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	log.Info("watching schemas", "directories", len(dirs))

	onResult(Generate(ctx, cfg))

	// The timer is created stopped and re-armed on every relevant event.
	debounce := time.NewTimer(DebounceDelay)
	debounce.Stop()
	defer debounce.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			log.Debug("schema changed", "path", ev.Name, "op", ev.Op.String())
			debounce.Reset(DebounceDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "error", err)
		case <-debounce.C:
			onResult(Generate(ctx, cfg))
		}
	}
}

// watchDirs returns the directories to watch: directories as given and the
// parent directory of files, since editors often replace files on save.
func watchDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		dir := p
		if !info.IsDir() {
			dir = filepath.Dir(p)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, errors.New("watch: no schema path")
	}
	return dirs, nil
}

func relevant(ev fsnotify.Event) bool {
	return load.Supported(ev.Name) && ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
