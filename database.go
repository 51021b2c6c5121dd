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

package guidepost

import (
	"log/slog"

	"github.com/poiesic/guidepost/ingestion"
	"github.com/poiesic/guidepost/storage"
	"github.com/poiesic/guidepost/storage/badger"
)

// Database owns the BadgerDB backend and the repositories built on it.
type Database struct {
	backend        *badger.Backend
	corpusRepo     storage.CorpusRepository
	checkpointRepo storage.CheckpointRepository
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
	logger   *slog.Logger
}

// WithInMemory keeps the database in memory; the path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithDatabaseLogger sets a custom logger.
// Default is slog.Default().
func WithDatabaseLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// OpenDatabase opens (creating if needed) the database at filePath.
func OpenDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory, options.logger)
	if err != nil {
		return nil, err
	}

	corpusRepo, err := badger.NewCorpusRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	checkpointRepo, err := badger.NewCheckpointRepository(backend)
	if err != nil {
		corpusRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:        backend,
		corpusRepo:     corpusRepo,
		checkpointRepo: checkpointRepo,
		logger:         options.logger,
	}, nil
}

// Close closes the repositories and the backend.
func (db *Database) Close() error {
	if err := db.checkpointRepo.Close(); err != nil {
		db.logger.Error("error closing checkpoint repository", "err", err)
		return err
	}
	if err := db.corpusRepo.Close(); err != nil {
		db.logger.Error("error closing corpus repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CorpusRepository returns the stored corpus.
func (db *Database) CorpusRepository() storage.CorpusRepository {
	return db.corpusRepo
}

// CheckpointRepository returns the load checkpoints.
func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

// NewPipeline creates a sync pipeline from loader into this database.
func (db *Database) NewPipeline(loader *ingestion.Loader, opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(loader, db.corpusRepo, db.checkpointRepo, opts...)
}
