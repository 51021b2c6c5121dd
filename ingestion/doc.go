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

// Package ingestion turns the on-disk corpus into stored collections.
//
// A data directory holds one sub-directory per category:
//
//	Food/    *.txt files of "Business Name:" blocks (shops.txt uses "Store Name:" blocks)
//	Places/  *.txt files of "Place Name:" blocks
//	Events/  *.txt files of pipe-separated lines
//
// Each file becomes one collection keyed by its file stem. The Loader parses
// files concurrently on a worker pool. The Pipeline syncs a data directory into
// storage, skipping files whose checksum matches the last load, and the
// Watcher re-runs the sync whenever the directory changes.
package ingestion
