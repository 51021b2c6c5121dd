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

import "strings"

// Intent is the outcome of classifying a question.
type Intent struct {
	// Specific is set when the question names at least one collection.
	Specific bool
	// Targets lists the named collections in first-seen order.
	Targets []string

	Food  bool
	Place bool
	Event bool
}

// Classifier decides which collections and categories a question is about.
type Classifier struct {
	vocab      *Vocabulary
	normalizer *Normalizer
}

// NewClassifier creates a Classifier over vocab.
func NewClassifier(vocab *Vocabulary) (*Classifier, error) {
	normalizer, err := NewNormalizer(vocab)
	if err != nil {
		return nil, err
	}
	return &Classifier{vocab: vocab, normalizer: normalizer}, nil
}

// Classify detects named collections and the relevant categories of a
// question. A named collection always makes the question specific, even
// when place or event words appear alongside it. Category flags come from
// the indicator pass: place indicators exclude food and events, food
// indicators exclude events, and a question with no indicator at all
// concerns every category.
func (c *Classifier) Classify(question string) Intent {
	q := lower(question)
	targets := c.DetectTargets(q)
	food, place, event := c.categories(q)
	return Intent{
		Specific: len(targets) > 0,
		Targets:  targets,
		Food:     food,
		Place:    place,
		Event:    event,
	}
}

// DetectTargets returns the collections named by question, matching
// collection keywords as substrings of both the raw lowercase question and
// its typo-corrected form.
func (c *Classifier) DetectTargets(question string) []string {
	q := lower(question)
	text := q + " " + c.normalizer.NormalizeForIntent(q)

	var targets []string
	for _, ck := range c.vocab.collections {
		if strings.Contains(text, ck.Keyword) {
			targets = append(targets, ck.Targets...)
		}
	}
	return dedupe(targets)
}

// categories runs the indicator pass over the lowercase question.
func (c *Classifier) categories(q string) (food, place, event bool) {
	ind := c.vocab.indicators
	placeCount := countContained(q, ind.Place)
	foodCount := countContained(q, ind.Food)
	eventCount := countContained(q, ind.Event)

	place = placeCount > 0 || containsAny(q, c.vocab.placeKeywords)
	food = foodCount > 0 && !place
	event = eventCount > 0 && !place

	switch {
	case placeCount > 0:
		food, event = false, false
	case foodCount > 0:
		place, event = false, false
	case eventCount > 0:
		food, place = false, false
	}

	if !food && !place && !event {
		return true, true, true
	}
	return food, place, event
}
