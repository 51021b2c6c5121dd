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
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/poiesic/guidepost/core"
)

// MatchOptions holds the per-call filters of Matcher.Match. The zero value
// matches nothing unless IncludeAllIfNoKeywords is set.
type MatchOptions struct {
	// Keywords are matched as substrings of a record's text values.
	Keywords []string
	// Locations are matched as substrings of a record's location.
	Locations []string
	// Date, when set, restricts events to those running on that day.
	Date *time.Time
	// Month, when non-zero and Date is nil, restricts events to that month
	// of ReferenceYear.
	Month time.Month
	// IncludeAllIfNoKeywords keeps records when no meaningful keyword is left.
	IncludeAllIfNoKeywords bool
	// RankByCertification sorts matches by certification priority.
	RankByCertification bool
}

func (o MatchOptions) hasDateFilter() bool {
	return o.Date != nil || o.Month != 0
}

// Matcher filters collections of records.
type Matcher struct {
	vocab *Vocabulary
}

// NewMatcher creates a Matcher over vocab.
func NewMatcher(vocab *Vocabulary) (*Matcher, error) {
	if vocab == nil {
		return nil, ErrVocabularyRequired
	}
	return &Matcher{vocab: vocab}, nil
}

// Match returns the records satisfying opts, each at most once and in
// input order unless ranking is requested.
//
// Event date filters are applied first and exclude outright. A record then
// matches on any meaningful keyword, else on any location phrase, else (for
// events) on the date filter alone, else when IncludeAllIfNoKeywords is set
// and no meaningful keyword exists. With IncludeAllIfNoKeywords and no
// keyword, location or date filter at all, every record is kept.
func (m *Matcher) Match(records []core.Record, opts MatchOptions) []core.Record {
	if opts.IncludeAllIfNoKeywords && len(opts.Keywords) == 0 && len(opts.Locations) == 0 && !opts.hasDateFilter() {
		matches := slices.Clone(records)
		if opts.RankByCertification {
			SortByCertification(matches)
		}
		return matches
	}

	keywords := m.MeaningfulKeywords(opts.Keywords)
	locations := lowerAll(opts.Locations)

	var matches []core.Record
	for _, r := range records {
		event, isEvent := r.(core.EventRecord)
		if isEvent && !eventPasses(event, opts) {
			continue
		}

		switch {
		case len(keywords) > 0 && containsAny(recordText(r), keywords):
			matches = append(matches, r)
		case len(locations) > 0:
			if containsAny(lower(r.Where()), locations) {
				matches = append(matches, r)
			}
		case isEvent && opts.hasDateFilter():
			matches = append(matches, r)
		case opts.IncludeAllIfNoKeywords && len(keywords) == 0:
			matches = append(matches, r)
		}
	}

	if opts.RankByCertification && len(matches) > 0 {
		SortByCertification(matches)
	}
	return matches
}

// MeaningfulKeywords lowercases keywords and drops stop words and entries
// of two runes or fewer.
func (m *Matcher) MeaningfulKeywords(keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		k := lower(kw)
		if utf8.RuneCountInString(k) > 2 && !m.vocab.IsStopWord(k) {
			out = append(out, k)
		}
	}
	return out
}

func eventPasses(e core.EventRecord, opts MatchOptions) bool {
	switch {
	case opts.Date != nil:
		return EventOnDate(e, *opts.Date)
	case opts.Month != 0:
		return EventInMonth(e, opts.Month, ReferenceYear)
	}
	return true
}

func recordText(r core.Record) string {
	return lower(strings.Join(r.TextValues(), " "))
}

// certificationPriority ranks food records; every other kind ranks 0.
func certificationPriority(r core.Record) int {
	if f, ok := r.(core.FoodRecord); ok {
		return f.Certification.Priority()
	}
	return 0
}

// SortByCertification stable-sorts records by descending certification
// priority: Gold, Silver, Bronze, then everything else.
func SortByCertification(records []core.Record) {
	slices.SortStableFunc(records, func(a, b core.Record) int {
		return certificationPriority(b) - certificationPriority(a)
	})
}

// SortedByCertification returns a ranked copy of records.
func SortedByCertification(records []core.Record) []core.Record {
	out := slices.Clone(records)
	SortByCertification(out)
	return out
}
