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
	"fmt"
	"strings"
)

// Language is the language an answer is written in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

// ParseLanguage maps a language code to a Language. An empty code means
// English.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "en", "english":
		return LanguageEnglish, nil
	case "fr", "french", "français", "francais":
		return LanguageFrench, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
