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
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/storage"
)

// CorpusRepository implements storage.CorpusRepository for BadgerDB.
type CorpusRepository struct {
	backend *Backend
}

var _ storage.CorpusRepository = (*CorpusRepository)(nil)

// NewCorpusRepository creates a new CorpusRepository.
func NewCorpusRepository(backend *Backend) (*CorpusRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	return &CorpusRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CorpusRepository has no resources to release.
func (r *CorpusRepository) Close() error {
	return nil
}

// SaveCollection validates and stores a collection.
func (r *CorpusRepository) SaveCollection(ctx context.Context, collection *core.Collection) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if err := core.ValidateCollection(collection); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrInvalidCollection, err)
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCollectionKey(collection.Category, collection.Key)
		if err := tx.Set(key, storage.MarshalCollection(collection)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteCollection removes a collection.
func (r *CorpusRepository) DeleteCollection(ctx context.Context, category core.Category, key string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		k := makeCollectionKey(category, key)
		if _, err := tx.Get(k); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(k); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetCollection retrieves a single collection.
func (r *CorpusRepository) GetCollection(ctx context.Context, category core.Category, key string) (*core.Collection, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var collection *core.Collection
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCollectionKey(category, key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			collection, unmarshalErr = storage.UnmarshalCollection(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

// ListCollections returns the collection keys of a category in key order.
func (r *CorpusRepository) ListCollections(ctx context.Context, category core.Category) ([]string, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	prefix := makeCollectionPrefix(category)
	var keys []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, strings.TrimPrefix(string(iter.Item().Key()), string(prefix)))
		}
		return nil
	}, false)
	return keys, err
}

// Snapshot reads every stored collection into an immutable corpus.
func (r *CorpusRepository) Snapshot(ctx context.Context) (*core.Corpus, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var collections []core.Collection
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, category := range core.Categories {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := scanPrefix(tx, makeCollectionPrefix(category), func(_, val []byte) error {
				collection, err := storage.UnmarshalCollection(val)
				if err != nil {
					return err
				}
				collections = append(collections, *collection)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("corpus snapshot read", "collections", len(collections))
	return core.NewCorpus(collections...), nil
}
