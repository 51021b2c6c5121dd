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

package storage

import (
	"context"

	"github.com/poiesic/guidepost/core"
)

type Repository interface {
	// Close closes the storage backend and releases resources.
	Close() error
}

type CorpusRepository interface {
	Repository
	// SaveCollection validates and stores a collection, replacing any
	// collection with the same category and key.
	SaveCollection(ctx context.Context, collection *core.Collection) error

	// DeleteCollection removes a collection.
	// Returns ErrNotFound if the collection doesn't exist.
	DeleteCollection(ctx context.Context, category core.Category, key string) error

	// GetCollection retrieves a single collection.
	// Returns ErrNotFound if the collection doesn't exist.
	GetCollection(ctx context.Context, category core.Category, key string) (*core.Collection, error)

	// ListCollections returns the keys of every collection in a category,
	// in ascending key order.
	ListCollections(ctx context.Context, category core.Category) ([]string, error)

	// Snapshot reads every collection into an immutable corpus.
	// Collections appear in ascending key order within each category.
	Snapshot(ctx context.Context) (*core.Corpus, error)
}

type CheckpointRepository interface {
	Repository
	// SaveCheckpoint stores the checkpoint for a source file.
	// Sets LoadedAt if not already set.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a source file.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, source string) (*core.Checkpoint, error)

	// DeleteCheckpoint removes the checkpoint for a source file.
	// Deleting a missing checkpoint is not an error.
	DeleteCheckpoint(ctx context.Context, source string) error

	// ListCheckpoints returns every stored checkpoint in source order.
	ListCheckpoints(ctx context.Context) ([]*core.Checkpoint, error)
}
