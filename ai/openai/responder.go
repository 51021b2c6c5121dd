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

package openai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/guidepost/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Responder implements ai.Responder using an OpenAI-compatible chat API.
type Responder struct {
	client      llms.Model
	temperature float64
	maxAttempts int
	retryDelay  time.Duration
	timeout     time.Duration
	logger      *slog.Logger
}

var _ ai.Responder = (*Responder)(nil)

// newResponder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newResponder(config *ai.Config) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return newResponderWithModel(client, config), nil
}

func newResponderWithModel(client llms.Model, config *ai.Config) *Responder {
	return &Responder{
		client:      client,
		temperature: config.Temperature,
		maxAttempts: config.MaxRetries + 1,
		retryDelay:  config.RetryDelay,
		timeout:     config.Timeout,
		logger:      slog.Default().With("component", "openai-responder"),
	}
}

// NewResponder creates a new responder using the provided configuration.
//
// Returns ai.Responder interface to enforce abstraction.
func NewResponder(config *ai.Config) (ai.Responder, error) {
	return newResponder(config)
}

// Respond sends prompt as a single user message and returns the reply.
// Failed calls are retried with exponential backoff.
func (r *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	var reply string
	err := ai.RetryWithBackoff(ctx, func() error {
		callCtx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		text, err := llms.GenerateFromSinglePrompt(callCtx, r.client, prompt, llms.WithTemperature(r.temperature))
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return ai.ErrEmptyResponse
		}
		reply = text
		return nil
	}, r.maxAttempts, r.retryDelay, r.logger)
	if err != nil {
		r.logger.Error("failed to generate answer", "err", err)
		return "", err
	}
	return reply, nil
}
