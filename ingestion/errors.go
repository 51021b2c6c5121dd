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

import "errors"

var (
	// ErrDataDirRequired is returned when no data directory is configured.
	ErrDataDirRequired = errors.New("data directory required")

	// ErrDataDirNotFound is returned when the data directory does not exist.
	ErrDataDirNotFound = errors.New("data directory not found")

	// ErrLoaderRequired is returned when a loader is not provided.
	ErrLoaderRequired = errors.New("loader required")

	// ErrCorpusRepositoryRequired is returned when a corpus repository is not provided.
	ErrCorpusRepositoryRequired = errors.New("corpus repository required")

	// ErrCheckpointRepositoryRequired is returned when a checkpoint repository is not provided.
	ErrCheckpointRepositoryRequired = errors.New("checkpoint repository required")

	// ErrPipelineRequired is returned when a pipeline is not provided.
	ErrPipelineRequired = errors.New("pipeline required")
)
