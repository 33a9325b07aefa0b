// Command sbpath prints the Stern–Brocot ancestors of exact rationals.
//
//	sbpath "1.23e4 / 567"
//	sbpath --first 2 --last 3 --group 3.14159265358979
//	sbpath cf 2.5 29/11
//	sbpath rows --output yaml 355/113
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sternbrocot/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	first       int
	last        int
	showAll     bool
	group       bool
	concurrency int

	logger *zap.Logger
)

// rootCmd prints fraction, continued fraction and ancestor table per input.
var rootCmd = &cobra.Command{
	Use:   "sbpath [fraction...]",
	Short: "Best rational approximants on the Stern–Brocot path",
	Long: `sbpath parses each argument as an exact rational ("2.5", "1.23e4 / 567",
"-1/3"), reduces it and lists the nodes of the Stern–Brocot tree on the way
from 1/1 down to it: every best approximant from below and from above.

Long runs of same-direction moves are elided: --first rows are shown at the
start of a run and --last rows at its end. --all disables elision.

Put negative inputs after "--" so they are not read as flags:
  sbpath -- -1/3`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPath,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&configPath, "config", "sbpath.yaml", "YAML settings file")
	pf.IntVar(&first, "first", 1, "rows shown at the start of a long run (-1: all)")
	pf.IntVar(&last, "last", 2, "rows shown at the end of a long run, final row included (-1: all)")
	pf.BoolVar(&showAll, "all", false, "show every row, no elision")
	pf.BoolVar(&group, "group", false, "insert a space every three digits")
	pf.IntVar(&concurrency, "concurrency", 4, "inputs analyzed in parallel")

	rootCmd.AddCommand(cfCmd, runsCmd, rowsCmd)
}

// loadConfig merges the config file, environment and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("first") {
		cfg.Path.First = first
	}
	if flags.Changed("last") {
		cfg.Path.Last = last
	}
	if flags.Changed("group") {
		cfg.Path.Group = group
	}
	if flags.Changed("concurrency") {
		cfg.Limits.Concurrency = concurrency
	}
	if showAll {
		cfg.Path.First, cfg.Path.Last = -1, -1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("configuration",
		zap.String("file", configPath),
		zap.Int("first", cfg.Path.First),
		zap.Int("last", cfg.Path.Last),
		zap.Bool("group", cfg.Path.Group),
		zap.Int("max_run_length", cfg.Limits.MaxRunLength),
		zap.Int("concurrency", cfg.Limits.Concurrency),
	)

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
