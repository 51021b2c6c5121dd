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
	"log/slog"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/storage"
)

// SyncStats summarizes one sync run.
type SyncStats struct {
	Parsed  int // Sources parsed and stored
	Skipped int // Sources unchanged since their checkpoint
	Removed int // Sources whose files disappeared
	Records int // Records stored by this run
}

// Changed reports whether the run modified storage.
func (s SyncStats) Changed() bool {
	return s.Parsed > 0 || s.Removed > 0
}

// Pipeline syncs a data directory into storage.
type Pipeline struct {
	loader         *Loader
	corpusRepo     storage.CorpusRepository
	checkpointRepo storage.CheckpointRepository
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a sync pipeline.
func NewPipeline(
	loader *Loader,
	corpusRepo storage.CorpusRepository,
	checkpointRepo storage.CheckpointRepository,
	opts ...Option,
) (*Pipeline, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}
	if corpusRepo == nil {
		return nil, ErrCorpusRepositoryRequired
	}
	if checkpointRepo == nil {
		return nil, ErrCheckpointRepositoryRequired
	}

	p := &Pipeline{
		loader:         loader,
		corpusRepo:     corpusRepo,
		checkpointRepo: checkpointRepo,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.logger = p.logger.With("component", "pipeline")
	return p, nil
}

// Loader returns the loader the pipeline reads with.
func (p *Pipeline) Loader() *Loader {
	return p.loader
}

// Sync brings storage in line with the data directory. Unchanged files are
// skipped, changed files are parsed and stored, and collections whose files
// are gone are removed. An empty file removes its collection.
func (p *Pipeline) Sync(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	sources, err := p.loader.Discover()
	if err != nil {
		return stats, err
	}

	present := make(map[string]bool, len(sources))
	var changed []Source
	for _, src := range sources {
		present[src.Name()] = true
		_, checksum, err := ReadSource(src)
		if err != nil {
			return stats, err
		}
		checkpoint, err := p.checkpointRepo.LoadCheckpoint(ctx, src.Name())
		if err != nil {
			return stats, err
		}
		if checkpoint != nil && checkpoint.Checksum == checksum {
			stats.Skipped++
			continue
		}
		changed = append(changed, src)
	}

	loaded, err := p.loader.LoadSources(ctx, changed)
	if err != nil {
		return stats, err
	}
	for _, ld := range loaded {
		if ld.Empty {
			if err := p.deleteCollection(ctx, ld.Source.Category, ld.Source.Key); err != nil {
				return stats, err
			}
		} else {
			if err := p.corpusRepo.SaveCollection(ctx, &ld.Collection); err != nil {
				return stats, err
			}
			stats.Records += len(ld.Collection.Records)
		}
		checkpoint := &core.Checkpoint{Source: ld.Source.Name(), Checksum: ld.Checksum}
		if err := p.checkpointRepo.SaveCheckpoint(ctx, checkpoint); err != nil {
			return stats, err
		}
		stats.Parsed++
		p.logger.Info("source synced", "source", ld.Source.Name(), "records", len(ld.Collection.Records))
	}

	removed, err := p.removeMissing(ctx, present)
	if err != nil {
		return stats, err
	}
	stats.Removed = removed

	p.logger.Info("sync complete", "parsed", stats.Parsed, "skipped", stats.Skipped, "removed", stats.Removed)
	return stats, nil
}

func (p *Pipeline) removeMissing(ctx context.Context, present map[string]bool) (int, error) {
	checkpoints, err := p.checkpointRepo.ListCheckpoints(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, checkpoint := range checkpoints {
		if present[checkpoint.Source] {
			continue
		}
		category, key, ok := parseSourceName(checkpoint.Source)
		if ok {
			if err := p.deleteCollection(ctx, category, key); err != nil {
				return removed, err
			}
		}
		if err := p.checkpointRepo.DeleteCheckpoint(ctx, checkpoint.Source); err != nil {
			return removed, err
		}
		removed++
		p.logger.Info("source removed", "source", checkpoint.Source)
	}
	return removed, nil
}

func (p *Pipeline) deleteCollection(ctx context.Context, category core.Category, key string) error {
	err := p.corpusRepo.DeleteCollection(ctx, category, key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func parseSourceName(name string) (core.Category, string, bool) {
	for _, category := range core.Categories {
		prefix := category.String() + "/"
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			return category, name[len(prefix):], true
		}
	}
	return 0, "", false
}
