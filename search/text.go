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
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_']+`)

// lower folds s to NFC and lowercases it, so composed and decomposed
// spellings of "café" compare equal.
func lower(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// stripPunctuation replaces every rune that is neither a word character
// nor whitespace with a space.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// words extracts word tokens, keeping inner apostrophes ("don't").
func words(s string) []string {
	matches := wordPattern.FindAllString(s, -1)
	out := matches[:0]
	for _, m := range matches {
		if m = strings.Trim(m, "'"); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// containsAny reports whether any needle is a substring of text.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// countContained returns how many needles are substrings of text.
func countContained(text string, needles []string) int {
	n := 0
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			n++
		}
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
