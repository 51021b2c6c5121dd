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

import "errors"

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("ai config")

	// ErrTokenRequired is returned when no API key is configured.
	ErrTokenRequired = errors.New("ai config: API token required (set OPENROUTER_API_KEY)")

	// ErrUnsupportedLanguage is returned for an unknown language code.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrEmptyResponse is returned when the model replies with no text.
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrInvalidMaxAttempts is returned when a retry is asked for zero attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
