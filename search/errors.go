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

package search

import "errors"

var (
	// ErrInvalidVocabulary is returned when vocabulary data cannot be used.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")

	// ErrVocabularyRequired is returned when a nil vocabulary is supplied.
	ErrVocabularyRequired = errors.New("vocabulary required")
)

// Fallback outcomes
var (
	// ErrNoPlaceData is returned when places were asked for but none are loaded.
	ErrNoPlaceData = errors.New("no place data available")

	// ErrEmptyCorpus is returned when the corpus holds no records.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrNoFallbackData is returned when no sample matches the question's categories.
	ErrNoFallbackData = errors.New("no matching data to fall back on")
)
