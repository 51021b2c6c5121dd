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

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/guidepost"
	"github.com/poiesic/guidepost/ai"
	"github.com/poiesic/guidepost/ai/openai"
	"github.com/poiesic/guidepost/config"
	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/ingestion"
	"github.com/poiesic/guidepost/search"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "guidepost",
		Usage: "Answer Kingston city-guide questions from a local corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML configuration file",
				Value:   config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Corpus directory holding Food, Places and Events (overrides config)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Answer language, en or fr (overrides config)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Sync the corpus directory into the database",
				Action: loadCommand,
			},
			{
				Name:      "context",
				Usage:     "Print the context assembled for a question",
				ArgsUsage: "<question>",
				Action:    contextCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "trace",
						Usage: "Log each assembly stage to stderr",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Answer a question with the configured language model",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "sync",
						Usage: "Sync the corpus directory before answering",
					},
				},
			},
			{
				Name:   "watch",
				Usage:  "Keep the database in sync with the corpus directory",
				Action: watchCommand,
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "debounce",
						Usage: "Quiet period before a burst of changes is synced",
						Value: ingestion.DefaultDebounce,
					},
				},
			},
		},
	}
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("db") {
		cfg.DatabasePath = c.String("db")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = c.String("data-dir")
	}
	if c.IsSet("lang") {
		cfg.Language = c.String("lang")
	}
	return cfg, nil
}

func newAssembler(cfg *config.Config) (*search.Assembler, error) {
	opts := []search.Option{}
	if cfg.Vocabulary != "" {
		vocab, err := search.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts = append(opts, search.WithVocabulary(vocab))
	}
	return search.NewAssembler(opts...)
}

func question(c *cli.Context) (string, error) {
	q := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if q == "" {
		return "", errors.New("question is required")
	}
	return q, nil
}

func newPipeline(db *guidepost.Database, cfg *config.Config) (*ingestion.Pipeline, error) {
	loader, err := ingestion.NewLoader(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}
	pipeline, err := db.NewPipeline(loader)
	if err != nil {
		loader.Release()
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	return pipeline, nil
}

func syncCorpus(ctx context.Context, db *guidepost.Database, cfg *config.Config) (ingestion.SyncStats, error) {
	pipeline, err := newPipeline(db, cfg)
	if err != nil {
		return ingestion.SyncStats{}, err
	}
	defer pipeline.Loader().Release()

	stats, err := pipeline.Sync(ctx)
	if err != nil {
		return stats, fmt.Errorf("sync failed: %w", err)
	}
	return stats, nil
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := guidepost.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := syncCorpus(ctx, db, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Parsed: %d\nSkipped: %d\nRemoved: %d\nRecords: %d\n",
		stats.Parsed, stats.Skipped, stats.Removed, stats.Records)
	return nil
}

func contextCommand(c *cli.Context) error {
	ctx := context.Background()

	q, err := question(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	assembler, err := newAssembler(cfg)
	if err != nil {
		return err
	}

	db, err := guidepost.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	guide, err := guidepost.NewGuide(db.CorpusRepository(), guidepost.WithAssembler(assembler))
	if err != nil {
		return err
	}
	if err := guide.Reload(ctx); err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	var result *search.Result
	if c.Bool("trace") {
		result = guide.BuildContextWithMonitor(q, newTraceMonitor(slog.Default()))
	} else {
		result = guide.BuildContext(q)
	}
	fmt.Fprintln(c.App.Writer, ai.FormatContext(result))
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	q, err := question(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	language, err := cfg.LanguageCode()
	if err != nil {
		return err
	}
	aiConfig, err := cfg.AIConfig()
	if err != nil {
		return err
	}
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}
	assembler, err := newAssembler(cfg)
	if err != nil {
		return err
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	db, err := guidepost.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if c.Bool("sync") {
		if _, err := syncCorpus(ctx, db, cfg); err != nil {
			return err
		}
	}

	guide, err := guidepost.NewGuide(db.CorpusRepository(),
		guidepost.WithAssembler(assembler),
		guidepost.WithProvider(provider),
		guidepost.WithLanguage(language),
	)
	if err != nil {
		return err
	}
	if err := guide.Reload(ctx); err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}

	answer, err := guide.Ask(ctx, q, "")
	if errors.Is(err, guidepost.ErrEmptyCorpus) {
		return fmt.Errorf("%w: run `guidepost load` first", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, answer.Text)
	return nil
}

func watchCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := guidepost.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	pipeline, err := newPipeline(db, cfg)
	if err != nil {
		return err
	}
	defer pipeline.Loader().Release()

	stats, err := pipeline.Sync(ctx)
	if err != nil {
		return fmt.Errorf("initial sync failed: %w", err)
	}
	slog.Info("initial sync complete", "parsed", stats.Parsed, "skipped", stats.Skipped, "removed", stats.Removed)

	watcher, err := ingestion.NewWatcher(pipeline,
		ingestion.WithDebounce(c.Duration("debounce")),
		ingestion.WithOnSync(func(stats ingestion.SyncStats) {
			if !stats.Changed() {
				slog.Debug("corpus unchanged")
				return
			}
			slog.Info("corpus synced", "parsed", stats.Parsed, "removed", stats.Removed, "records", stats.Records)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.DataDir, err)
	}
	defer watcher.Close()

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", cfg.DataDir)
	return watcher.Run(ctx)
}

// traceMonitor logs each assembly stage.
type traceMonitor struct {
	logger *slog.Logger
	start  time.Time
}

var _ search.AssemblyMonitor = (*traceMonitor)(nil)

func newTraceMonitor(logger *slog.Logger) *traceMonitor {
	return &traceMonitor{logger: logger.With("component", "trace")}
}

func (m *traceMonitor) Start(question string) {
	m.start = time.Now()
	m.logger.Info("assembling context", "question", question)
}

func (m *traceMonitor) AfterQueryParsed(q *search.Query) {
	m.logger.Info("query parsed",
		"keywords", q.Meaningful,
		"expanded", q.Expanded,
		"locations", q.Locations,
		"specific", q.Intent.Specific,
		"targets", q.Intent.Targets,
		"food", q.Intent.Food,
		"place", q.Intent.Place,
		"event", q.Intent.Event)
}

func (m *traceMonitor) CollectionMatched(cat core.Category, key string, matched, kept int) {
	m.logger.Info("collection matched", "category", cat, "key", key, "matched", matched, "kept", kept)
}

func (m *traceMonitor) CollectionFallback(cat core.Category, key string, kept int) {
	m.logger.Info("collection fallback", "category", cat, "key", key, "kept", kept)
}

func (m *traceMonitor) Finish(result *search.Result) {
	m.logger.Info("context assembled", "records", result.Len(), "elapsed", time.Since(m.start))
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
