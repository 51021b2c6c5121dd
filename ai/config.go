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
	"time"
)

// Config holds configuration for the answer model.
type Config struct {
	// Host is the base URL of an OpenAI-compatible API.
	// Example: "https://openrouter.ai/api/v1", "http://localhost:11434/v1"
	Host string

	// Model is the chat model identifier.
	// Example: "openai/gpt-4o-mini"
	Model string

	// Token is the API key sent as a bearer token.
	Token string

	// Temperature is the sampling temperature, between 0 and 2.
	// Default: 0.7
	Temperature float64

	// MaxRetries is how many times a failed call is retried.
	// Default: 2
	MaxRetries int

	// RetryDelay is the delay before the first retry; it doubles on each
	// further retry.
	// Default: 1s
	RetryDelay time.Duration

	// Timeout bounds a single call.
	// Default: 60s
	Timeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithToken sets the API key.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

// WithMaxRetries sets the number of retries after a failed call.
func WithMaxRetries(retries int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = retries
	}
}

// WithRetryDelay sets the base retry delay.
func WithRetryDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = delay
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// DefaultConfig returns a Config for OpenRouter. The token is left empty.
func DefaultConfig() *Config {
	return &Config{
		Host:        "https://openrouter.ai/api/v1",
		Model:       "openai/gpt-4o-mini",
		Temperature: 0.7,
		MaxRetries:  2,
		RetryDelay:  time.Second,
		Timeout:     60 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithToken(os.Getenv("OPENROUTER_API_KEY")),
//	    WithModel("openai/gpt-4o"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It adds the /v1 suffix to the host if missing, which OpenAI-compatible
// APIs require.
func (c *Config) Normalize() {
	c.Token = strings.TrimSpace(c.Token)
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: Model is required", ErrInvalidConfig)
	}
	if c.Token == "" {
		return ErrTokenRequired
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%w: Temperature must be between 0 and 2", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: MaxRetries must not be negative", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: RetryDelay must not be negative", ErrInvalidConfig)
	}
	return nil
}
