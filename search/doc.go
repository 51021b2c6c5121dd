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

// Package search turns a free-text question into the set of corpus records
// worth showing for it.
//
// The Assembler type runs a rule-based pipeline over an immutable
// core.Corpus:
//   - Typo-tolerant keyword expansion (typo table plus bounded edit distance)
//   - Intent classification into named collections or broad categories
//   - Date, month and location-phrase extraction
//   - Per-category matching with certification ranking and size caps
//
// All keyword data lives in a Vocabulary, loaded from the embedded
// vocabulary.yaml unless another one is supplied.
package search
