package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/config"
)

var (
	dataDir    string
	outDir     string
	configFile string
	verbose    bool

	logger = slog.Default()
)

// main registers the analysis commands and exits with status 1 when a
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "tumorkit",
		Short:         "tumor growth and vasculature analysis toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tumorkit", "directory for saved fit runs")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", config.DefaultResults, "results directory for figures and tables")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list built-in presets (sweep, segments)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for group: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(
		growthCmd(),
		vesselsCmd(),
		curvesCmd(),
		permeabilityCmd(),
		metadataCmd(),
		runsCmd(),
		presetsCmd,
		initCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig returns the config file contents, or the defaults, with the
// persistent flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if cmd.Flags().Changed("out") || cfg.Results == "" {
		cfg.Results = outDir
	}
	return cfg, nil
}

// resultPath returns a file path under the results directory, creating
// the directory. An existing directory is reused.
func resultPath(cfg *config.Config, sub, name string) (string, error) {
	dir := filepath.Join(cfg.Results, sub)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// requireFile reports a missing input by name.
func requireFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}
	return nil
}
