package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vango-dev/accordion/internal/errors"
)

// Watch watches the config file at path and emits a parsed Config whenever
// it is written. The current contents are emitted first. Writes that fail to
// parse or validate are logged and skipped; the channel closes when ctx is
// done.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan *Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "config", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	// The directory, not the file: a save that renames over the file
	// replaces its inode.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory of %s: %w", path, err)
	}

	out := make(chan *Config)

	load := func() *Config {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		cfg, err := Parse(data)
		if err != nil {
			errors.Report(logger, errors.FromError(err, errors.CodeConfigRead))
			return nil
		}
		cfg.configPath = path
		return cfg
	}

	go func() {
		defer close(out)
		defer watcher.Close()

		if cfg := load(); cfg != nil {
			select {
			case out <- cfg:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				cfg := load()
				if cfg == nil {
					continue
				}
				logger.Debug("config reloaded")

				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "error", err)
			}
		}
	}()

	return out, nil
}
