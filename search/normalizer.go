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
	"unicode/utf8"
)

// Normalizer corrects spelling noise in questions and keywords.
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer creates a Normalizer over vocab.
func NewNormalizer(vocab *Vocabulary) (*Normalizer, error) {
	if vocab == nil {
		return nil, ErrVocabularyRequired
	}
	return &Normalizer{vocab: vocab}, nil
}

// NormalizeForIntent rewrites a question for collection detection. Each
// token of two or more runes is replaced by its typo-table form; tokens
// missing from the table with four or more runes are fuzzily matched
// against the collection keywords. When no token survives the lowercase
// question is returned unchanged.
func (n *Normalizer) NormalizeForIntent(question string) string {
	q := lower(question)
	var out []string
	for _, tok := range strings.Fields(stripPunctuation(q)) {
		size := utf8.RuneCountInString(tok)
		if size < 2 {
			continue
		}
		canonical := n.vocab.Canonical(tok)
		if canonical == tok && size >= 4 {
			if fuzzy, ok := BestFuzzyMatch(tok, n.vocab.collectionKeywords, MaxEdits); ok {
				canonical = fuzzy
			}
		}
		out = append(out, canonical)
	}
	if len(out) == 0 {
		return q
	}
	return strings.Join(out, " ")
}

// ExpandKeywords returns the search form of tokens: each token of two or
// more runes contributes itself, its typo-table form and, from four runes
// up, its closest known keyword. Only entries longer than two runes are
// kept, deduplicated in first-seen order.
func (n *Normalizer) ExpandKeywords(tokens []string) []string {
	var expanded []string
	for _, tok := range tokens {
		k := lower(tok)
		size := utf8.RuneCountInString(k)
		if size < 2 {
			continue
		}
		expanded = append(expanded, k, n.vocab.Canonical(k))
		if size >= 4 {
			if fuzzy, ok := BestFuzzyMatch(k, n.vocab.expansionCandidates, MaxEdits); ok {
				expanded = append(expanded, fuzzy)
			}
		}
	}

	out := expanded[:0]
	for _, k := range dedupe(expanded) {
		if utf8.RuneCountInString(k) > 2 {
			out = append(out, k)
		}
	}
	return out
}
