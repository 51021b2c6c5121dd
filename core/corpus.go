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

package core

import "slices"

// Corpus is an immutable snapshot of every loaded collection, grouped by
// category. Collections keep the order they were added in.
//
// A Corpus is safe for concurrent use by multiple readers; nothing in it
// is ever mutated after NewCorpus returns.
type Corpus struct {
	collections map[Category][]Collection
}

// NewCorpus builds a Corpus from the given collections. Record slices are
// copied so later changes by the caller are not observed. Collections with
// an unknown category are ignored; a repeated key replaces the earlier
// collection in place.
func NewCorpus(collections ...Collection) *Corpus {
	c := &Corpus{collections: make(map[Category][]Collection, len(Categories))}
	for _, col := range collections {
		if ValidateCategory(col.Category) != nil {
			continue
		}
		col.Records = slices.Clone(col.Records)
		existing := c.collections[col.Category]
		idx := slices.IndexFunc(existing, func(e Collection) bool { return e.Key == col.Key })
		if idx >= 0 {
			existing[idx] = col
			continue
		}
		c.collections[col.Category] = append(existing, col)
	}
	return c
}

// Collections returns the collections of a category in insertion order.
// The returned slice must not be modified.
func (c *Corpus) Collections(cat Category) []Collection {
	if c == nil {
		return nil
	}
	return c.collections[cat]
}

// Collection returns the collection with the given key.
func (c *Corpus) Collection(cat Category, key string) (Collection, bool) {
	for _, col := range c.Collections(cat) {
		if col.Key == key {
			return col, true
		}
	}
	return Collection{}, false
}

// Empty reports whether the corpus holds no records at all.
func (c *Corpus) Empty() bool {
	return c.Len() == 0
}

// Len returns the total number of records across every collection.
func (c *Corpus) Len() int {
	n := 0
	for _, cat := range Categories {
		for _, col := range c.Collections(cat) {
			n += len(col.Records)
		}
	}
	return n
}

// HasRecords reports whether any collection of cat holds at least one record.
func (c *Corpus) HasRecords(cat Category) bool {
	for _, col := range c.Collections(cat) {
		if len(col.Records) > 0 {
			return true
		}
	}
	return false
}
