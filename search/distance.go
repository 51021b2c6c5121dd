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

import "github.com/agext/levenshtein"

// MaxEdits is the largest edit distance accepted as a fuzzy match.
const MaxEdits = 2

// EditDistance returns the Levenshtein distance between a and b with unit
// costs for insertion, deletion and substitution, counted over runes.
func EditDistance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// BestFuzzyMatch returns the candidate closest to word within maxEdits.
// Words shorter than three runes never match. Exact membership wins
// outright; otherwise candidates whose length differs by more than
// maxEdits are skipped and ties go to the first candidate seen.
func BestFuzzyMatch(word string, candidates []string, maxEdits int) (string, bool) {
	w := []rune(word)
	if len(w) < 3 {
		return "", false
	}
	for _, c := range candidates {
		if c == word {
			return c, true
		}
	}

	best, bestDist := "", maxEdits+1
	for _, c := range candidates {
		diff := len([]rune(c)) - len(w)
		if diff > maxEdits || -diff > maxEdits {
			continue
		}
		d := EditDistance(word, c)
		if d <= maxEdits && d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
