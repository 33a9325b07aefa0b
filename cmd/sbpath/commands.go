package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sternbrocot/approx"
	"github.com/katalvlaran/sternbrocot/contfrac"
	"github.com/katalvlaran/sternbrocot/format"
	"github.com/katalvlaran/sternbrocot/rational"
	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// output selects the rows command encoding
var output string

// cfCmd prints only the continued fraction
var cfCmd = &cobra.Command{
	Use:   "cf [fraction...]",
	Short: "Print the continued fraction and gcd of each input",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCF,
}

// runsCmd prints the raw run descriptors
var runsCmd = &cobra.Command{
	Use:   "runs [fraction]",
	Short: "Print the straight descents (begin + i·diff) leading to the input",
	Args:  cobra.ExactArgs(1),
	RunE:  runRuns,
}

// rowsCmd prints ancestor rows as text or YAML
var rowsCmd = &cobra.Command{
	Use:   "rows [fraction...]",
	Short: "Print ancestor rows in a machine-readable form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRows,
}

func init() {
	rowsCmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or text")
}

// analyze runs the pipeline on args with the merged configuration.
func analyze(cmd *cobra.Command, args []string) ([]*approx.Result, bool, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, false, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	results, err := approx.AnalyzeAll(ctx, args, cfg.Limits.Concurrency, cfg.Options()...)
	if err != nil {
		logger.Warn("analysis failed", zap.Strings("inputs", args), zap.Error(err))
		return nil, false, err
	}
	logger.Debug("analysis done", zap.Int("inputs", len(args)), zap.Duration("elapsed", time.Since(start)))

	return results, cfg.Path.Group, nil
}

// runPath prints headline and table per input.
func runPath(cmd *cobra.Command, args []string) error {
	results, grouped, err := analyze(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s = %s\n", format.Fraction(res.Fraction, grouped), format.Terms(res.Expansion, grouped))
		fmt.Fprintln(w, format.Table(res.Rows, grouped))
	}

	return nil
}

// runCF prints the expansion of each parsed, unreduced input.
func runCF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, arg := range args {
		f, err := rational.ParseFraction(arg)
		if err != nil {
			logger.Warn("parse failed", zap.String("input", arg), zap.Error(err))
			return err
		}
		res := contfrac.Expand(f)
		fmt.Fprintf(w, "%s = %s  gcd %s\n",
			format.Fraction(f, cfg.Path.Group),
			format.Terms(res, cfg.Path.Group),
			format.GroupDigits(res.GCD, cfg.Path.Group))
	}

	return nil
}

// runRuns prints one run per line.
func runRuns(cmd *cobra.Command, args []string) error {
	f, err := rational.ParseFraction(args[0])
	if err != nil {
		logger.Warn("parse failed", zap.String("input", args[0]), zap.Error(err))
		return err
	}
	runs, err := sternbrocot.Ancestors(f)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, r := range runs {
		dir := "right"
		if i%2 == 1 {
			dir = "left"
		}
		fmt.Fprintf(w, "%d %-5s %s\n", i, dir, r)
	}

	return nil
}

// document is the YAML shape of one analyzed input.
type document struct {
	Input             string          `yaml:"input"`
	Fraction          string          `yaml:"fraction"`
	ContinuedFraction string          `yaml:"continued_fraction"`
	Rows              []format.Record `yaml:"rows"`
}

// runRows prints rows as YAML documents or tab-separated cells.
func runRows(cmd *cobra.Command, args []string) error {
	if output != "yaml" && output != "text" {
		return fmt.Errorf("unknown output format %q", output)
	}
	results, grouped, err := analyze(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if output == "text" {
		for _, res := range results {
			for _, cells := range format.Cells(res.Rows, grouped) {
				fmt.Fprintln(w, strings.Join(cells, "\t"))
			}
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, res := range results {
		doc := document{
			Input:             res.Input,
			Fraction:          res.Fraction.String(),
			ContinuedFraction: res.Expansion.String(),
			Rows:              format.Records(res.Rows),
		}
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode %q: %w", res.Input, err)
		}
	}

	return enc.Close()
}
