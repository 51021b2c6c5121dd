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

// CollectionResult holds the records kept from one collection. An empty
// Records slice means the collection was consulted and nothing matched.
type CollectionResult struct {
	Key     string
	Records []core.Record
}

// Section is the part of a Result belonging to one category.
type Section struct {
	Category core.Category
	// Relevant is set when the question concerned this category at all.
	Relevant    bool
	Collections []CollectionResult
}

func (s *Section) add(key string, records []core.Record) {
	s.Relevant = true
	s.Collections = append(s.Collections, CollectionResult{Key: key, Records: records})
}

// Len returns the number of records in the section.
func (s *Section) Len() int {
	n := 0
	for _, c := range s.Collections {
		n += len(c.Records)
	}
	return n
}

// Result is the assembled context for one question: every category is
// always present, possibly empty.
type Result struct {
	Query *Query

	Food  Section
	Place Section
	Event Section
}

func newResult(q *Query) *Result {
	return &Result{
		Query: q,
		Food:  Section{Category: core.CategoryFood},
		Place: Section{Category: core.CategoryPlace},
		Event: Section{Category: core.CategoryEvent},
	}
}

// Section returns the section of a category, or nil for an unknown one.
func (r *Result) Section(cat core.Category) *Section {
	switch cat {
	case core.CategoryFood:
		return &r.Food
	case core.CategoryPlace:
		return &r.Place
	case core.CategoryEvent:
		return &r.Event
	}
	return nil
}

// Sections returns the three sections in presentation order.
func (r *Result) Sections() []*Section {
	return []*Section{&r.Food, &r.Place, &r.Event}
}

// Records returns the records kept from one collection and whether that
// collection appears in the result.
func (r *Result) Records(cat core.Category, key string) ([]core.Record, bool) {
	s := r.Section(cat)
	if s == nil {
		return nil, false
	}
	for _, c := range s.Collections {
		if c.Key == key {
			return c.Records, true
		}
	}
	return nil, false
}

// Len returns the total number of records in the result.
func (r *Result) Len() int {
	return r.Food.Len() + r.Place.Len() + r.Event.Len()
}

// Empty reports whether no record was kept in any category.
func (r *Result) Empty() bool {
	return r.Len() == 0
}
