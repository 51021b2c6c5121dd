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

// Sample sizes used when an empty context is widened to raw records.
const (
	FallbackPlaceSample = 5
	FallbackFoodSample  = 3
	FallbackEventSample = 3
)

// Fallback widens an empty context to raw samples of the categories the
// question mentions. Place words take every other category out of
// consideration; with no category word at all every category is sampled.
//
// It returns ErrNoPlaceData when only places were asked for and the corpus
// has none but holds other records, ErrEmptyCorpus when the corpus holds
// nothing, and ErrNoFallbackData when nothing could be sampled.
func (a *Assembler) Fallback(question string, corpus *core.Corpus) (*Result, error) {
	q := a.ParseQuery(question)
	place := countContained(q.Lower, a.vocab.indicators.Place) > 0 || containsAny(q.Lower, a.vocab.placeKeywords)
	food := !place && containsAny(q.Lower, a.vocab.fallbackFood)
	event := !place && containsAny(q.Lower, a.vocab.eventKeywords)
	if !place && !food && !event {
		place, food, event = true, true, true
	}

	result := newResult(q)
	sample := func(section *Section, cat core.Category, size int) {
		section.Relevant = true
		for _, col := range corpus.Collections(cat) {
			if len(col.Records) > 0 {
				section.add(col.Key, capped(col.Records, size, q.WantsFullList))
			}
		}
	}
	if place {
		sample(&result.Place, core.CategoryPlace, FallbackPlaceSample)
	}
	if food {
		sample(&result.Food, core.CategoryFood, FallbackFoodSample)
	}
	if event {
		sample(&result.Event, core.CategoryEvent, FallbackEventSample)
	}

	hasPlaces := corpus.HasRecords(core.CategoryPlace)
	hasOther := corpus.HasRecords(core.CategoryFood) || corpus.HasRecords(core.CategoryEvent)
	switch {
	case place && !food && !event && !hasPlaces && hasOther:
		return nil, ErrNoPlaceData
	case !result.Empty():
		return result, nil
	case corpus.Empty():
		return nil, ErrEmptyCorpus
	}
	return nil, ErrNoFallbackData
}
