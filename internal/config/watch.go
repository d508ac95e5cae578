package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"vectoriser/internal/errors"
	"vectoriser/internal/log"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directory holding path. Watching the
// directory rather than the file keeps working across editors that save
// by renaming a temp file over the original.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.NewFileError("invalid config path", path, errors.InvalidPath, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create config watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.NewFileError("failed to watch config directory", filepath.Dir(abs), errors.FileNotFound, err)
	}

	return &Watcher{path: abs, watcher: fw}, nil
}

// Run delivers a freshly loaded config (or the load error) to onChange
// after each change until ctx is done. It closes the underlying watcher
// before returning.
//
// A change that leaves no file at path, such as a move or delete, is
// logged and skipped so the current settings stay in place.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config, error)) error {
	defer w.watcher.Close()
	logger := log.LogWithFields(log.F("path", w.path)).WithContext(ctx)

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.With(log.F("op", event.Op.String())).Debug("Config event")
			timer.Reset(reloadDelay)

		case <-timer.C:
			cfg, err := w.reload()
			if errors.IsFileNotFound(err) {
				logger.Info("Config file removed, keeping current settings")
				continue
			}
			onChange(cfg, err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("Config watcher error")
		}
	}
}

// reload loads the watched file. Unlike LoadConfigFile, a missing file
// is an error.
func (w *Watcher) reload() (*Config, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		return nil, errors.NewFileError("config file removed", w.path, errors.FileNotFound, err)
	}
	return LoadConfigFile(w.path)
}
