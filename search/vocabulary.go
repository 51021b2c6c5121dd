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
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// CollectionKeyword maps one keyword to the collections it names.
type CollectionKeyword struct {
	Keyword string   `yaml:"keyword"`
	Targets []string `yaml:"targets"`
}

// Indicators are the per-category keyword lists of the vague-query pass.
type Indicators struct {
	Place []string `yaml:"place"`
	Food  []string `yaml:"food"`
	Event []string `yaml:"event"`
}

// VocabularyConfig is the serialized form of a Vocabulary.
type VocabularyConfig struct {
	Collections         []CollectionKeyword `yaml:"collections"`
	PlaceKeywords       []string            `yaml:"place_keywords"`
	EventKeywords       []string            `yaml:"event_keywords"`
	StopWords           []string            `yaml:"stop_words"`
	Typos               map[string]string   `yaml:"typos"`
	Indicators          Indicators          `yaml:"indicators"`
	LenientPlacePhrases []string            `yaml:"lenient_place_phrases"`
	FullListPhrases     []string            `yaml:"full_list_phrases"`
	LocationTriggers    []string            `yaml:"location_triggers"`
	FallbackFood        []string            `yaml:"fallback_food_indicators"`
}

// Vocabulary is the immutable keyword data used by every engine component.
// Build one with NewVocabulary, ParseVocabulary or LoadVocabulary, or use
// DefaultVocabulary.
type Vocabulary struct {
	collections         []CollectionKeyword
	collectionKeywords  []string
	placeKeywords       []string
	eventKeywords       []string
	expansionCandidates []string
	stopWords           map[string]struct{}
	typos               map[string]string
	indicators          Indicators
	lenientPlacePhrases []string
	fullListPhrases     []string
	locationTriggers    []string
	fallbackFood        []string
}

var (
	defaultVocabulary     *Vocabulary
	defaultVocabularyOnce sync.Once
)

// DefaultVocabulary returns the built-in vocabulary. It panics if the
// embedded data is malformed, which is a build defect.
func DefaultVocabulary() *Vocabulary {
	defaultVocabularyOnce.Do(func() {
		v, err := ParseVocabulary(defaultVocabularyYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded vocabulary: %v", err))
		}
		defaultVocabulary = v
	})
	return defaultVocabulary
}

// ParseVocabulary decodes a YAML vocabulary document.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var cfg VocabularyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}
	return NewVocabulary(cfg)
}

// LoadVocabulary reads and decodes a YAML vocabulary file.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// NewVocabulary validates cfg and builds a Vocabulary from a private copy of it.
func NewVocabulary(cfg VocabularyConfig) (*Vocabulary, error) {
	if len(cfg.Collections) == 0 {
		return nil, fmt.Errorf("%w: no collection keywords", ErrInvalidVocabulary)
	}
	v := &Vocabulary{
		collections:         make([]CollectionKeyword, 0, len(cfg.Collections)),
		placeKeywords:       lowerAll(cfg.PlaceKeywords),
		eventKeywords:       lowerAll(cfg.EventKeywords),
		stopWords:           make(map[string]struct{}, len(cfg.StopWords)),
		typos:               make(map[string]string, len(cfg.Typos)),
		lenientPlacePhrases: lowerAll(cfg.LenientPlacePhrases),
		fullListPhrases:     lowerAll(cfg.FullListPhrases),
		locationTriggers:    lowerAll(cfg.LocationTriggers),
		fallbackFood:        lowerAll(cfg.FallbackFood),
		indicators: Indicators{
			Place: lowerAll(cfg.Indicators.Place),
			Food:  lowerAll(cfg.Indicators.Food),
			Event: lowerAll(cfg.Indicators.Event),
		},
	}

	seen := make(map[string]struct{}, len(cfg.Collections))
	for i, ck := range cfg.Collections {
		kw := lower(ck.Keyword)
		if kw == "" {
			return nil, fmt.Errorf("%w: collection entry %d has no keyword", ErrInvalidVocabulary, i)
		}
		if len(ck.Targets) == 0 {
			return nil, fmt.Errorf("%w: keyword %q has no targets", ErrInvalidVocabulary, kw)
		}
		if _, dup := seen[kw]; dup {
			return nil, fmt.Errorf("%w: duplicate keyword %q", ErrInvalidVocabulary, kw)
		}
		seen[kw] = struct{}{}
		v.collections = append(v.collections, CollectionKeyword{Keyword: kw, Targets: slices.Clone(ck.Targets)})
		v.collectionKeywords = append(v.collectionKeywords, kw)
	}

	for _, w := range cfg.StopWords {
		v.stopWords[lower(w)] = struct{}{}
	}
	for typo, canonical := range cfg.Typos {
		v.typos[lower(typo)] = lower(canonical)
	}

	v.expansionCandidates = dedupe(slices.Concat(v.collectionKeywords, v.placeKeywords, v.eventKeywords))
	return v, nil
}

// IsStopWord reports whether w (lowercase) is a stop word.
func (v *Vocabulary) IsStopWord(w string) bool {
	_, ok := v.stopWords[w]
	return ok
}

// Canonical returns the typo-table form of w, or w itself when absent.
func (v *Vocabulary) Canonical(w string) string {
	if c, ok := v.typos[w]; ok {
		return c
	}
	return w
}

// CollectionKeywords returns the collection keywords in table order.
func (v *Vocabulary) CollectionKeywords() []string {
	return slices.Clone(v.collectionKeywords)
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = lower(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dedupe drops repeated values, keeping first occurrences in order.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
