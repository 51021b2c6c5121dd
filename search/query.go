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
	"strings"
	"time"
	"unicode/utf8"
)

// maxLocationWords bounds the phrase taken after a location trigger.
const maxLocationWords = 3

// Query is everything derived from one question. It is built per call and
// never shared.
type Query struct {
	Raw   string
	Lower string

	// Keywords are the question's words longer than two runes.
	Keywords []string
	// Meaningful are Keywords without stop words.
	Meaningful []string
	// Expanded is the typo-tolerant search form of Meaningful.
	Expanded []string

	WantsFullList bool
	Date          *time.Time
	Month         time.Month
	Locations     []string

	Intent Intent
}

// HasDateFilter reports whether the question carries a date or a month.
func (q *Query) HasDateFilter() bool {
	return q.Date != nil || q.Month != 0
}

// ParseQuery derives a Query from a question.
func (a *Assembler) ParseQuery(question string) *Query {
	q := &Query{Raw: question, Lower: lower(question)}

	for _, w := range words(q.Lower) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		q.Keywords = append(q.Keywords, w)
		if !a.vocab.IsStopWord(w) {
			q.Meaningful = append(q.Meaningful, w)
		}
	}
	q.Expanded = a.normalizer.ExpandKeywords(q.Meaningful)
	q.WantsFullList = containsAny(q.Lower, a.vocab.fullListPhrases)

	if d, ok := ParseDate(q.Lower); ok {
		q.Date = &d
		q.Month = d.Month()
	} else if m, ok := FindMonth(words(q.Lower)); ok {
		q.Month = m
	}

	q.Locations = a.extractLocations(q.Lower)
	q.Intent = a.classifier.Classify(q.Lower)
	return q
}

// extractLocations takes up to three words after each location trigger,
// unless the next word is a number or a month.
func (a *Assembler) extractLocations(q string) []string {
	fields := strings.Fields(q)
	var locations []string
	for i := range fields {
		next, ok := a.matchTrigger(fields, i)
		if !ok || next >= len(fields) {
			continue
		}
		if isDigits(fields[next]) || IsMonthName(fields[next]) {
			continue
		}
		end := min(next+maxLocationWords, len(fields))
		locations = append(locations, strings.Join(fields[next:end], " "))
	}
	return locations
}

// matchTrigger reports whether a trigger starts at fields[i] and returns
// the index of the first word after it. Multi-word triggers match
// consecutive fields.
func (a *Assembler) matchTrigger(fields []string, i int) (int, bool) {
	for _, trigger := range a.vocab.locationTriggers {
		parts := strings.Fields(trigger)
		if i+len(parts) > len(fields) {
			continue
		}
		matched := true
		for j, p := range parts {
			if fields[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			return i + len(parts), true
		}
	}
	return 0, false
}
