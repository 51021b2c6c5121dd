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

package mock

import (
	"context"
	"sync"

	"github.com/poiesic/guidepost/ai"
)

// DefaultReply is returned by MockResponder when RespondFunc is nil.
const DefaultReply = "Here is what I found."

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// RespondFunc is called by Respond if set.
	RespondFunc func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

var _ ai.Responder = (*MockResponder)(nil)

// NewMockResponder creates a mock responder with the default reply.
// Note: Returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Respond records the prompt and returns RespondFunc's result or DefaultReply.
func (m *MockResponder) Respond(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, prompt)
	}
	return DefaultReply, nil
}

// CallCount returns the number of Respond calls.
func (m *MockResponder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the most recent prompt, or "" if none.
func (m *MockResponder) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Reset clears recorded prompts and custom behavior.
func (m *MockResponder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
	m.RespondFunc = nil
}
