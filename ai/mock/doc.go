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

// Package mock provides test doubles for the ai interfaces.
//
// # Usage in Tests
//
//	responder := mock.NewMockResponder()
//	responder.RespondFunc = func(ctx context.Context, prompt string) (string, error) {
//	    return "1. **Green Fork**", nil
//	}
//	provider := mock.NewMockProviderWithResponder(responder)
//
// By default MockResponder echoes a short fixed reply and records every
// prompt it receives.
package mock
