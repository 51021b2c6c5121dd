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

// Package storage provides the storage abstraction layer for guidepost.
//
// This package defines repository interfaces that decouple corpus
// persistence from the loader and the query engine. The BadgerDB
// implementation lives in storage/badger.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - CorpusRepository: one serialized value per collection, keyed by
//     category and collection key, plus Snapshot for building an immutable
//     core.Corpus
//   - CheckpointRepository: one checkpoint per source file, used to skip
//     reloading unchanged files
//
// Values are encoded with the MUS serializers in package core.
package storage
