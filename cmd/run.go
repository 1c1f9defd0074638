package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/simplify/internal/app"
	"github.com/abhisek/simplify/internal/config"
	"github.com/abhisek/simplify/internal/hint"
	"github.com/abhisek/simplify/internal/llm"
	"github.com/abhisek/simplify/internal/problemgen"
	"github.com/abhisek/simplify/internal/store"
)

// runApp loads configuration, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	opts := app.Options{Config: cfg, Logger: logger}
	opts.SkipWelcome, _ = cmd.Flags().GetBool("skip-welcome")

	st, err := openStore(cfg)
	if err != nil {
		// Practice still works without the log.
		fmt.Fprintln(os.Stderr, "Practice log unavailable:", err)
		logger.Warn("practice log unavailable", "error", err)
	} else {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	deps, err := buildPractice(ctx, cfg, opts.EventRepo, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	opts.Generator = deps.generator
	opts.GeneratorName = deps.generatorName
	opts.Hinter = deps.hinter

	logger.Info("starting", "lang", cfg.Lang, "exercises", cfg.Exercises,
		"generator", deps.generatorName, "hints", cfg.Hints)
	return app.Run(opts)
}

type practiceDeps struct {
	generator     problemgen.Generator
	generatorName string
	hinter        hint.Hinter
	prefetcher    *problemgen.Prefetcher
}

// Close stops background exercise generation.
func (d *practiceDeps) Close() {
	if d.prefetcher != nil {
		d.prefetcher.Close()
	}
}

// buildPractice wires the exercise generator and hinter for cfg. When an
// LLM is requested but no provider can be built, it warns and falls back
// to the random generator and rule hints.
func buildPractice(ctx context.Context, cfg config.Config, repo store.EventRepo, logger *slog.Logger) (*practiceDeps, error) {
	random := problemgen.NewRandom()
	deps := &practiceDeps{
		generator:     random,
		generatorName: problemgen.SourceRandom,
	}
	switch cfg.Hints {
	case config.HintsRule, config.HintsLLM:
		deps.hinter = hint.RuleHinter{}
	}

	if !cfg.NeedsLLM() {
		return deps, nil
	}

	provider, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using random exercises and built-in hints.")
		logger.Warn("llm provider unavailable", "error", err)
		return deps, nil
	}
	logger.Info("llm provider ready", "model", provider.ModelID())

	if cfg.Generator == config.GeneratorLLM {
		primary := problemgen.NewLLM(provider, problemgen.DefaultConfig())
		deps.prefetcher = problemgen.NewPrefetcher(primary, random, cfg.Prefetch, logger)
		deps.generator = deps.prefetcher
		deps.generatorName = problemgen.SourceLLM
	}
	if cfg.Hints == config.HintsLLM {
		deps.hinter = hint.NewLLM(provider, hint.RuleHinter{})
	}
	return deps, nil
}
