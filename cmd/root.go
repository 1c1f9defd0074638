package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/simplify/internal/config"
	"github.com/abhisek/simplify/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Practice reducing fractions to lowest terms",
	Long: `Simplify is a terminal tutor for reducing fractions. Each exercise asks the
learner to pick a common divisor, divide both terms, and repeat until the
fraction is in lowest terms.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/simplify/config.toml)")
	pf.String("db", "", "Path to SQLite database file (overrides SIMPLIFY_DB env var)")
	pf.String("log-file", "", "Write a JSON debug log to this file")

	f := rootCmd.Flags()
	f.String("lang", "", "Feedback language (en or he)")
	f.Int("exercises", 0, "Exercises per session")
	f.Duration("advance-delay", 0, "Pause before the next exercise")
	f.String("generator", "", "Exercise source: random or llm")
	f.String("hints", "", "Hints: rule, llm or off")
	f.Int("prefetch", 0, "LLM exercises kept ready")
	f.Bool("skip-welcome", false, "Start on the home screen")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return config.DefaultConfigPath()
}

// loadConfig resolves defaults, the config file, SIMPLIFY_* variables and
// then any flags set on the command line, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return cfg, err
	}

	applyStringFlag(cmd, "lang", &cfg.Lang)
	applyIntFlag(cmd, "exercises", &cfg.Exercises)
	applyDurationFlag(cmd, "advance-delay", &cfg.AdvanceDelay)
	applyStringFlag(cmd, "generator", &cfg.Generator)
	applyStringFlag(cmd, "hints", &cfg.Hints)
	applyIntFlag(cmd, "prefetch", &cfg.Prefetch)
	applyStringFlag(cmd, "db", &cfg.DB)
	applyStringFlag(cmd, "log-file", &cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*target, _ = cmd.Flags().GetString(name)
	}
}

func applyIntFlag(cmd *cobra.Command, name string, target *int) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*target, _ = cmd.Flags().GetInt(name)
	}
}

func applyDurationFlag(cmd *cobra.Command, name string, target *time.Duration) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*target, _ = cmd.Flags().GetDuration(name)
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then SIMPLIFY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	cfg, err := config.Load(configPath(cmd))
	if err != nil {
		return "", err
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the practice log named by cfg.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DB
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// openStoreFromCmd opens the practice log for the inspection commands.
func openStoreFromCmd(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger returns a JSON logger writing to path, or a discarding logger
// when path is empty. The TUI owns the terminal, so nothing is logged to
// stderr while it runs.
func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}
