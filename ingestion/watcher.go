// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingestion

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher re-syncs the data directory whenever a corpus file changes.
type Watcher struct {
	pipeline *Pipeline
	fs       *fsnotify.Watcher
	dataDir  string
	debounce time.Duration
	onSync   func(SyncStats)
	logger   *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher) error

// WithDebounce sets the quiet period before a sync runs.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) error {
		if d <= 0 {
			d = DefaultDebounce
		}
		w.debounce = d
		return nil
	}
}

// WithOnSync registers a callback run after every successful sync.
func WithOnSync(fn func(SyncStats)) WatcherOption {
	return func(w *Watcher) error {
		w.onSync = fn
		return nil
	}
}

// WithWatcherLogger sets a custom logger.
// Default is slog.Default().
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// NewWatcher creates a watcher over the pipeline's data directory and its
// category directories. Watches are in place when NewWatcher returns.
func NewWatcher(pipeline *Pipeline, opts ...WatcherOption) (*Watcher, error) {
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}

	w := &Watcher{
		pipeline: pipeline,
		dataDir:  filepath.Clean(pipeline.Loader().DataDir()),
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	w.logger = w.logger.With("component", "watcher")

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(w.dataDir); err != nil {
		fs.Close()
		return nil, err
	}
	for _, dir := range CategoryDirs {
		// Missing category directories are picked up when created.
		_ = fs.Add(filepath.Join(w.dataDir, dir))
	}
	w.fs = fs
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run processes file events until ctx is cancelled or the watcher is closed.
// Sync errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && w.isCategoryDir(event.Name) {
				if err := w.fs.Add(event.Name); err != nil {
					w.logger.Warn("error watching directory", "dir", event.Name, "err", err)
				}
			}
			if w.relevant(event) {
				w.logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "err", err)
		case <-timer.C:
			w.sync(ctx)
		}
	}
}

func (w *Watcher) sync(ctx context.Context) {
	stats, err := w.pipeline.Sync(ctx)
	if err != nil {
		w.logger.Error("sync failed", "err", err)
		return
	}
	if w.onSync != nil {
		w.onSync(stats)
	}
}

// relevant reports whether an event can change the corpus.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if filepath.Ext(base) == sourceExt {
		return true
	}
	return w.isCategoryDir(event.Name)
}

func (w *Watcher) isCategoryDir(path string) bool {
	if filepath.Dir(filepath.Clean(path)) != w.dataDir {
		return false
	}
	base := filepath.Base(path)
	for _, dir := range CategoryDirs {
		if base == dir {
			return true
		}
	}
	return false
}
