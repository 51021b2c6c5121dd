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

package ai

import (
	"regexp"
	"strings"
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+\.\s+`)
	blankRun       = regexp.MustCompile(`\n{3,}`)
)

// CleanResponse tidies a model reply: numbered-list prefixes are removed,
// trailing spaces dropped, runs of blank lines collapsed to one, and
// leading and trailing blank lines trimmed.
func CleanResponse(text string) string {
	if text == "" {
		return text
	}

	var cleaned []string
	prevBlank := false
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if !prevBlank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			prevBlank = true
			continue
		}
		if without := numberedPrefix.ReplaceAllString(stripped, ""); without != stripped {
			line = without
		}
		cleaned = append(cleaned, strings.TrimRight(line, " \t\r"))
		prevBlank = false
	}

	for len(cleaned) > 0 && strings.TrimSpace(cleaned[len(cleaned)-1]) == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return blankRun.ReplaceAllString(strings.Join(cleaned, "\n"), "\n\n")
}
