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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/guidepost/core"
)

// CategoryDirs maps each category to its directory under the data directory.
var CategoryDirs = map[core.Category]string{
	core.CategoryFood:  "Food",
	core.CategoryPlace: "Places",
	core.CategoryEvent: "Events",
}

const sourceExt = ".txt"

// Source is one corpus file.
type Source struct {
	Category core.Category
	Key      string
	Path     string
}

// Name identifies the source in checkpoints: "<category>/<key>".
func (s Source) Name() string {
	return s.Category.String() + "/" + s.Key
}

// Loaded is a parsed source file.
type Loaded struct {
	Source     Source
	Checksum   core.ID
	Collection core.Collection
	// Empty is set when the file holds no text at all.
	Empty bool
}

// Loader discovers and parses corpus files.
type Loader struct {
	dataDir string
	pool    *ants.Pool
	logger  *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithPoolSize sets the number of files parsed concurrently.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) LoaderOption {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if l.pool != nil {
			l.pool.Release()
		}
		l.pool = pool
		return nil
	}
}

// WithLoaderLogger sets a custom logger.
// Default is slog.Default().
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader for dataDir.
func NewLoader(dataDir string, opts ...LoaderOption) (*Loader, error) {
	if dataDir == "" {
		return nil, ErrDataDirRequired
	}

	pool, err := ants.NewPool(max(runtime.NumCPU(), 1))
	if err != nil {
		return nil, err
	}

	l := &Loader{
		dataDir: dataDir,
		pool:    pool,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}
	l.logger = l.logger.With("component", "loader")
	return l, nil
}

// DataDir returns the directory the loader reads.
func (l *Loader) DataDir() string {
	return l.dataDir
}

// Release releases the worker pool. The loader should not be used afterwards.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

// Discover lists the corpus files, ordered by category then key. Missing
// category directories are skipped.
func (l *Loader) Discover() ([]Source, error) {
	info, err := os.Stat(l.dataDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, l.dataDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDataDirNotFound, l.dataDir)
	}

	var sources []Source
	for _, category := range core.Categories {
		dir := filepath.Join(l.dataDir, CategoryDirs[category])
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		var found []Source
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || filepath.Ext(name) != sourceExt || strings.HasPrefix(name, ".") {
				continue
			}
			found = append(found, Source{
				Category: category,
				Key:      strings.TrimSuffix(name, sourceExt),
				Path:     filepath.Join(dir, name),
			})
		}
		slices.SortFunc(found, func(a, b Source) int { return strings.Compare(a.Key, b.Key) })
		sources = append(sources, found...)
	}
	return sources, nil
}

// ReadSource reads a source file and returns its bytes with their checksum.
func ReadSource(src Source) ([]byte, core.ID, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, 0, err
	}
	return data, core.IDFromContent(string(data)), nil
}

func (l *Loader) loadSource(src Source) (Loaded, error) {
	data, checksum, err := ReadSource(src)
	if err != nil {
		return Loaded{}, err
	}
	loaded := Loaded{Source: src, Checksum: checksum}
	content := decodeSource(data)
	if content == "" {
		loaded.Empty = true
		loaded.Collection = core.Collection{Category: src.Category, Key: src.Key}
		return loaded, nil
	}
	loaded.Collection = ParseCollection(src.Category, src.Key, content)
	l.logger.Debug("parsed source", "source", src.Name(), "records", len(loaded.Collection.Records))
	return loaded, nil
}

// LoadSources parses the given sources on the worker pool. Results keep the
// order of sources. The first read error is returned.
func (l *Loader) LoadSources(ctx context.Context, sources []Source) ([]Loaded, error) {
	results := make([]Loaded, len(sources))
	errs := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		submitErr := l.pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = l.loadSource(src)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
			break
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", sources[i].Name(), err)
		}
	}
	return results, nil
}

// Load reads the whole data directory into a corpus. Empty files contribute
// no collection.
func (l *Loader) Load(ctx context.Context) (*core.Corpus, error) {
	sources, err := l.Discover()
	if err != nil {
		return nil, err
	}
	loaded, err := l.LoadSources(ctx, sources)
	if err != nil {
		return nil, err
	}
	collections := make([]core.Collection, 0, len(loaded))
	for _, ld := range loaded {
		if ld.Empty {
			continue
		}
		collections = append(collections, ld.Collection)
	}
	corpus := core.NewCorpus(collections...)
	l.logger.Info("corpus loaded", "collections", len(collections), "records", corpus.Len())
	return corpus, nil
}
