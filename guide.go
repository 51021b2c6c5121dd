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

// Package guidepost answers city-guide questions from a local corpus of
// food venues, places and events.
//
// A Guide keeps an immutable snapshot of the stored corpus, assembles the
// records relevant to a question and, when an AI provider is configured,
// asks a language model to phrase the answer.
package guidepost

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/poiesic/guidepost/ai"
	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/search"
	"github.com/poiesic/guidepost/storage"
)

// Answer is the outcome of Ask.
type Answer struct {
	// Text is the cleaned model reply, or a fixed message when no context
	// could be assembled.
	Text string
	// Result is the context the reply was based on; nil for fixed messages.
	Result *search.Result
	// Fallback is set when Result holds raw samples instead of matches.
	Fallback bool
}

// Guide answers questions against the current corpus snapshot.
// It is safe for concurrent use.
type Guide struct {
	corpusRepo storage.CorpusRepository
	assembler  *search.Assembler
	provider   ai.AIProvider
	language   ai.Language
	corpus     atomic.Pointer[core.Corpus]
	logger     *slog.Logger
}

// Option configures a Guide.
type Option func(*Guide) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guide) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// WithAssembler sets the context assembler.
// Default is search.NewAssembler with the built-in vocabulary.
func WithAssembler(assembler *search.Assembler) Option {
	return func(g *Guide) error {
		if assembler != nil {
			g.assembler = assembler
		}
		return nil
	}
}

// WithProvider sets the AI provider Ask uses.
func WithProvider(provider ai.AIProvider) Option {
	return func(g *Guide) error {
		g.provider = provider
		return nil
	}
}

// WithLanguage sets the default answer language.
// Default is English.
func WithLanguage(language ai.Language) Option {
	return func(g *Guide) error {
		if _, err := ai.ParseLanguage(string(language)); err != nil {
			return err
		}
		g.language = language
		return nil
	}
}

// NewGuide creates a guide over corpusRepo. The guide starts with an empty
// corpus; call Reload to read the stored one.
func NewGuide(corpusRepo storage.CorpusRepository, opts ...Option) (*Guide, error) {
	if corpusRepo == nil {
		return nil, ErrCorpusRepositoryRequired
	}

	g := &Guide{
		corpusRepo: corpusRepo,
		language:   ai.LanguageEnglish,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.logger = g.logger.With("component", "guide")

	if g.assembler == nil {
		assembler, err := search.NewAssembler(search.WithLogger(g.logger))
		if err != nil {
			return nil, err
		}
		g.assembler = assembler
	}
	g.corpus.Store(core.NewCorpus())
	return g, nil
}

// Reload replaces the snapshot with the stored corpus. Questions already
// being answered keep the snapshot they started with.
func (g *Guide) Reload(ctx context.Context) error {
	corpus, err := g.corpusRepo.Snapshot(ctx)
	if err != nil {
		return err
	}
	g.corpus.Store(corpus)
	g.logger.Info("corpus reloaded", "records", corpus.Len())
	return nil
}

// Corpus returns the current snapshot.
func (g *Guide) Corpus() *core.Corpus {
	return g.corpus.Load()
}

// BuildContext assembles the records relevant to question.
func (g *Guide) BuildContext(question string) *search.Result {
	return g.assembler.BuildContext(question, g.corpus.Load())
}

// BuildContextWithMonitor assembles the records relevant to question,
// reporting each stage to monitor.
func (g *Guide) BuildContextWithMonitor(question string, monitor search.AssemblyMonitor) *search.Result {
	return g.assembler.BuildContextWithMonitor(question, g.corpus.Load(), monitor)
}

// Ask answers question in language (the guide's default when empty).
//
// When nothing matches, the context widens to raw samples of the
// categories the question mentions. A fixed message is returned without
// calling the model when places were asked for but none are loaded, or
// when no sample fits the question. ErrEmptyCorpus is returned before any
// assembly when no records are loaded at all.
func (g *Guide) Ask(ctx context.Context, question string, language ai.Language) (*Answer, error) {
	if g.provider == nil {
		return nil, ErrAIProviderRequired
	}
	if language == "" {
		language = g.language
	}

	corpus := g.corpus.Load()
	if corpus.Empty() {
		return nil, ErrEmptyCorpus
	}

	answer := &Answer{Result: g.assembler.BuildContext(question, corpus)}
	if answer.Result.Empty() {
		fallback, err := g.assembler.Fallback(question, corpus)
		switch {
		case errors.Is(err, search.ErrNoPlaceData):
			return &Answer{Text: ai.NoPlaceDataMessage}, nil
		case errors.Is(err, search.ErrNoFallbackData):
			return &Answer{Text: ai.NotSpecificMessage}, nil
		case err != nil:
			return nil, err
		}
		g.logger.Debug("using fallback context", "records", fallback.Len())
		answer.Result = fallback
		answer.Fallback = true
	}

	prompt := ai.BuildPrompt(question, ai.FormatContext(answer.Result), language)
	reply, err := g.provider.Responder().Respond(ctx, prompt)
	if err != nil {
		return nil, err
	}
	answer.Text = ai.CleanResponse(reply)
	return answer, nil
}
