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

import (
	"github.com/poiesic/guidepost/core"
)

// AssemblyMonitor receives callbacks during context assembly.
// This can be used to trace or debug how a result was built.
type AssemblyMonitor interface {
	Start(question string)
	AfterQueryParsed(q *Query)
	CollectionMatched(cat core.Category, key string, matched, kept int)
	CollectionFallback(cat core.Category, key string, kept int)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of AssemblyMonitor
type noopMonitor struct{}

var _ AssemblyMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                        {}
func (n *noopMonitor) AfterQueryParsed(_ *Query)                             {}
func (n *noopMonitor) CollectionMatched(_ core.Category, _ string, _, _ int) {}
func (n *noopMonitor) CollectionFallback(_ core.Category, _ string, _ int)   {}
func (n *noopMonitor) Finish(_ *Result)                                      {}
