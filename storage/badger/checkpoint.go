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

package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/storage"
)

// CheckpointRepository implements storage.CheckpointRepository for BadgerDB.
type CheckpointRepository struct {
	backend *Backend
}

var _ storage.CheckpointRepository = (*CheckpointRepository)(nil)

// NewCheckpointRepository creates a new CheckpointRepository.
func NewCheckpointRepository(backend *Backend) (*CheckpointRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &CheckpointRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CheckpointRepository has no resources to release.
func (r *CheckpointRepository) Close() error {
	return nil
}

// SaveCheckpoint persists a checkpoint for a source file.
func (r *CheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if checkpoint.LoadedAt.IsZero() {
			checkpoint.LoadedAt = time.Now().UTC()
		}
		key := makeCheckpointKey(checkpoint.Source)
		value := storage.MarshalCheckpoint(checkpoint)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCheckpoint retrieves the checkpoint for a source file.
// Returns nil, nil if no checkpoint exists.
func (r *CheckpointRepository) LoadCheckpoint(ctx context.Context, source string) (*core.Checkpoint, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var checkpoint *core.Checkpoint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey(source))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			checkpoint, unmarshalErr = storage.UnmarshalCheckpoint(val)
			return unmarshalErr
		})
	}, false)

	return checkpoint, err
}

// DeleteCheckpoint removes the checkpoint for a source file.
func (r *CheckpointRepository) DeleteCheckpoint(ctx context.Context, source string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCheckpointKey(source)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListCheckpoints returns every stored checkpoint in source order.
func (r *CheckpointRepository) ListCheckpoints(ctx context.Context) ([]*core.Checkpoint, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var checkpoints []*core.Checkpoint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return scanPrefix(tx, []byte(checkpointPrefix+":"), func(_, val []byte) error {
			checkpoint, err := storage.UnmarshalCheckpoint(val)
			if err != nil {
				return err
			}
			checkpoints = append(checkpoints, checkpoint)
			return nil
		})
	}, false)
	return checkpoints, err
}
