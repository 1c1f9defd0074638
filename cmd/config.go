package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/simplify/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		applyStringFlag(cmd, "db", &cfg.DB)
		applyStringFlag(cmd, "log-file", &cfg.LogFile)

		status := "not found, using defaults"
		if _, err := os.Stat(path); err == nil {
			status = "loaded"
		}
		fmt.Printf("Config file:    %s (%s)\n", path, status)
		fmt.Println()
		fmt.Printf("lang            %s\n", cfg.Lang)
		fmt.Printf("exercises       %d\n", cfg.Exercises)
		fmt.Printf("advance_delay   %s\n", cfg.AdvanceDelay)
		fmt.Printf("generator       %s\n", cfg.Generator)
		fmt.Printf("hints           %s\n", cfg.Hints)
		fmt.Printf("prefetch        %d\n", cfg.Prefetch)
		fmt.Printf("db              %s\n", orDefault(cfg.DB))
		fmt.Printf("log_file        %s\n", orDefault(cfg.LogFile))

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file with the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configPath(cmd)

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Println("Wrote", path)
		return nil
	},
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}
