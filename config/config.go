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

// Package config reads the guidepost configuration file.
//
// The file is TOML:
//
//	database_path = "~/.guidepost/db"
//	data_dir      = "./data"
//	language      = "en"
//	vocabulary    = ""            # optional vocabulary override
//
//	[ai]
//	host        = "https://openrouter.ai/api/v1"
//	model       = "openai/gpt-4o-mini"
//	token       = ""              # OPENROUTER_API_KEY takes precedence
//	temperature = 0.7
//	max_retries = 2
//	retry_delay = "1s"
//	timeout     = "60s"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/poiesic/guidepost/ai"
)

// TokenEnv is the environment variable that overrides the AI token.
const TokenEnv = "OPENROUTER_API_KEY"

// ErrInvalidConfig is returned when the file holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the guidepost configuration.
type Config struct {
	DatabasePath string   `toml:"database_path"`
	DataDir      string   `toml:"data_dir"`
	Language     string   `toml:"language"`
	Vocabulary   string   `toml:"vocabulary,omitempty"`
	AI           AIConfig `toml:"ai"`
}

// AIConfig is the [ai] table.
type AIConfig struct {
	Host        string  `toml:"host"`
	Model       string  `toml:"model"`
	Token       string  `toml:"token,omitempty"`
	Temperature float64 `toml:"temperature"`
	MaxRetries  int     `toml:"max_retries"`
	RetryDelay  string  `toml:"retry_delay"`
	Timeout     string  `toml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		DatabasePath: filepath.Join(defaultDir(), "db"),
		DataDir:      "data",
		Language:     string(ai.LanguageEnglish),
		AI: AIConfig{
			Host:        aiDefaults.Host,
			Model:       aiDefaults.Model,
			Temperature: aiDefaults.Temperature,
			MaxRetries:  aiDefaults.MaxRetries,
			RetryDelay:  aiDefaults.RetryDelay.String(),
			Timeout:     aiDefaults.Timeout.String(),
		},
	}
}

func defaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".guidepost"
	}
	return filepath.Join(home, ".guidepost")
}

// DefaultPath returns ~/.guidepost/config.toml.
func DefaultPath() string {
	return filepath.Join(defaultDir(), "config.toml")
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults. The token environment variable is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides the AI token from the environment when set.
func (c *Config) ApplyEnv() {
	if token := os.Getenv(TokenEnv); token != "" {
		c.AI.Token = token
	}
}

// Save writes the configuration to path, creating parent directories.
// The file is written with owner-only permissions since it may hold a token.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LanguageCode parses the configured language.
func (c *Config) LanguageCode() (ai.Language, error) {
	return ai.ParseLanguage(c.Language)
}

// AIOptions converts the [ai] table into ai.Config options.
func (c *Config) AIOptions() ([]ai.ConfigOption, error) {
	opts := []ai.ConfigOption{
		ai.WithHost(c.AI.Host),
		ai.WithModel(c.AI.Model),
		ai.WithToken(c.AI.Token),
		ai.WithTemperature(c.AI.Temperature),
		ai.WithMaxRetries(c.AI.MaxRetries),
	}
	if c.AI.RetryDelay != "" {
		d, err := time.ParseDuration(c.AI.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("%w: retry_delay: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, ai.WithRetryDelay(d))
	}
	if c.AI.Timeout != "" {
		d, err := time.ParseDuration(c.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: timeout: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, ai.WithTimeout(d))
	}
	return opts, nil
}

// AIConfig builds the ai.Config described by the [ai] table.
func (c *Config) AIConfig() (*ai.Config, error) {
	opts, err := c.AIOptions()
	if err != nil {
		return nil, err
	}
	return ai.NewConfig(opts...), nil
}
