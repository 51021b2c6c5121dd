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
	"log/slog"
	"slices"

	"github.com/poiesic/guidepost/core"
)

// Result size caps applied unless the question asks for a full list.
const (
	FoodLimit           = 10
	PlaceLimit          = 5
	EventLimit          = 5
	EventKeywordLimit   = 3
	EventLastResort     = 1
	SpecificEmptyLimit  = 1
	vagueKeywordCeiling = 3
)

// Assembler builds the context for a question from a corpus snapshot.
// It holds no mutable state and is safe for concurrent use.
type Assembler struct {
	vocab      *Vocabulary
	normalizer *Normalizer
	classifier *Classifier
	matcher    *Matcher
	logger     *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// WithVocabulary replaces the built-in vocabulary.
func WithVocabulary(vocab *Vocabulary) Option {
	return func(a *Assembler) error {
		if vocab == nil {
			return ErrVocabularyRequired
		}
		a.vocab = vocab
		return nil
	}
}

// NewAssembler creates a new assembler.
func NewAssembler(opts ...Option) (*Assembler, error) {
	a := &Assembler{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.vocab == nil {
		a.vocab = DefaultVocabulary()
	}

	var err error
	if a.normalizer, err = NewNormalizer(a.vocab); err != nil {
		return nil, err
	}
	if a.classifier, err = NewClassifier(a.vocab); err != nil {
		return nil, err
	}
	if a.matcher, err = NewMatcher(a.vocab); err != nil {
		return nil, err
	}
	return a, nil
}

// Vocabulary returns the vocabulary in use.
func (a *Assembler) Vocabulary() *Vocabulary {
	return a.vocab
}

// BuildContext returns the records relevant to question.
func (a *Assembler) BuildContext(question string, corpus *core.Corpus) *Result {
	return a.BuildContextWithMonitor(question, corpus, nil)
}

// BuildContextWithMonitor returns the records relevant to question,
// reporting each stage to monitor.
//
// A question naming collections present in the corpus is answered from
// those food collections alone. Otherwise every collection of each
// relevant category is searched with the category's own leniency and
// size caps.
func (a *Assembler) BuildContextWithMonitor(question string, corpus *core.Corpus, monitor AssemblyMonitor) *Result {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(question)
	q := a.ParseQuery(question)
	monitor.AfterQueryParsed(q)

	result := newResult(q)
	if targets := presentTargets(q.Intent.Targets, corpus); len(targets) > 0 {
		a.assembleSpecific(q, targets, result, monitor)
	} else {
		a.assembleVague(q, corpus, result, monitor)
	}

	a.logger.Debug("context assembled",
		"specific", q.Intent.Specific,
		"food", result.Food.Len(),
		"place", result.Place.Len(),
		"event", result.Event.Len())
	monitor.Finish(result)
	return result
}

// presentTargets returns the targeted food collections the corpus holds.
func presentTargets(targets []string, corpus *core.Corpus) []core.Collection {
	var out []core.Collection
	for _, key := range targets {
		if col, ok := corpus.Collection(core.CategoryFood, key); ok {
			out = append(out, col)
		}
	}
	return out
}

func (a *Assembler) assembleSpecific(q *Query, targets []core.Collection, result *Result, monitor AssemblyMonitor) {
	for _, col := range targets {
		matches := a.matcher.Match(col.Records, MatchOptions{
			Keywords:            q.Expanded,
			Locations:           q.Locations,
			RankByCertification: true,
		})
		if len(matches) > 0 {
			kept := capped(matches, FoodLimit, q.WantsFullList)
			monitor.CollectionMatched(core.CategoryFood, col.Key, len(matches), len(kept))
			result.Food.add(col.Key, kept)
			continue
		}
		kept := capped(SortedByCertification(col.Records), SpecificEmptyLimit, q.WantsFullList)
		monitor.CollectionFallback(core.CategoryFood, col.Key, len(kept))
		result.Food.add(col.Key, kept)
	}
}

func (a *Assembler) assembleVague(q *Query, corpus *core.Corpus, result *Result, monitor AssemblyMonitor) {
	broad := len(q.Meaningful) <= vagueKeywordCeiling && len(q.Locations) == 0

	if q.Intent.Food {
		result.Food.Relevant = true
		for _, col := range corpus.Collections(core.CategoryFood) {
			if len(col.Records) == 0 {
				continue
			}
			matches := a.matcher.Match(col.Records, MatchOptions{
				Keywords:               q.Expanded,
				Locations:              q.Locations,
				IncludeAllIfNoKeywords: broad,
				RankByCertification:    true,
			})
			if len(matches) > 0 {
				kept := capped(matches, FoodLimit, q.WantsFullList)
				monitor.CollectionMatched(core.CategoryFood, col.Key, len(matches), len(kept))
				result.Food.add(col.Key, kept)
				continue
			}
			kept := capped(SortedByCertification(col.Records), FoodLimit, q.WantsFullList)
			monitor.CollectionFallback(core.CategoryFood, col.Key, len(kept))
			result.Food.add(col.Key, kept)
		}
	}

	if q.Intent.Place {
		result.Place.Relevant = true
		lenient := broad || containsAny(q.Lower, a.vocab.lenientPlacePhrases)
		for _, col := range corpus.Collections(core.CategoryPlace) {
			if len(col.Records) == 0 {
				continue
			}
			matches := a.matcher.Match(col.Records, MatchOptions{
				Keywords:               q.Expanded,
				Locations:              q.Locations,
				IncludeAllIfNoKeywords: lenient,
			})
			if len(matches) > 0 {
				kept := capped(matches, PlaceLimit, q.WantsFullList)
				monitor.CollectionMatched(core.CategoryPlace, col.Key, len(matches), len(kept))
				result.Place.add(col.Key, kept)
				continue
			}
			kept := capped(col.Records, PlaceLimit, q.WantsFullList)
			monitor.CollectionFallback(core.CategoryPlace, col.Key, len(kept))
			result.Place.add(col.Key, kept)
		}
	}

	if q.Intent.Event {
		result.Event.Relevant = true
		for _, col := range corpus.Collections(core.CategoryEvent) {
			if len(col.Records) == 0 {
				continue
			}
			a.assembleEvents(q, col, result, monitor)
		}
	}
}

func (a *Assembler) assembleEvents(q *Query, col core.Collection, result *Result, monitor AssemblyMonitor) {
	matches := a.matcher.Match(col.Records, MatchOptions{
		Keywords:  q.Keywords,
		Locations: q.Locations,
		Date:      q.Date,
		Month:     q.Month,
	})
	if len(matches) > 0 {
		kept := capped(matches, EventLimit, q.WantsFullList)
		monitor.CollectionMatched(core.CategoryEvent, col.Key, len(matches), len(kept))
		result.Event.add(col.Key, kept)
		return
	}
	if q.HasDateFilter() {
		monitor.CollectionMatched(core.CategoryEvent, col.Key, 0, 0)
		result.Event.add(col.Key, []core.Record{})
		return
	}

	matches = a.matcher.Match(col.Records, MatchOptions{
		Keywords:  q.Keywords,
		Locations: q.Locations,
	})
	if len(matches) > 0 {
		kept := capped(matches, EventKeywordLimit, q.WantsFullList)
		monitor.CollectionMatched(core.CategoryEvent, col.Key, len(matches), len(kept))
		result.Event.add(col.Key, kept)
		return
	}
	kept := capped(col.Records, EventLastResort, q.WantsFullList)
	monitor.CollectionFallback(core.CategoryEvent, col.Key, len(kept))
	result.Event.add(col.Key, kept)
}

// capped returns a private copy of at most limit records, or all of them
// when full is set.
func capped(records []core.Record, limit int, full bool) []core.Record {
	if !full && len(records) > limit {
		records = records[:limit]
	}
	return slices.Clone(records)
}
