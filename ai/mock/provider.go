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

import "github.com/poiesic/guidepost/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	responder *MockResponder
	closed    bool
}

// NewMockProvider creates a provider with a default MockResponder.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{responder: NewMockResponder()}
}

// NewMockProviderWithResponder creates a provider around responder.
func NewMockProviderWithResponder(responder *MockResponder) ai.AIProvider {
	return &MockProvider{responder: responder}
}

// Responder returns the mock responder.
func (p *MockProvider) Responder() ai.Responder {
	return p.responder
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}

// GetMockResponder returns the concrete responder for assertions.
func (p *MockProvider) GetMockResponder() *MockResponder {
	return p.responder
}
