// Package approx chains parsing, continued-fraction expansion and
// Stern–Brocot enumeration into one call per input string.
package approx

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sternbrocot/contfrac"
	"github.com/katalvlaran/sternbrocot/rational"
	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// Result is everything a display needs for one input.
type Result struct {
	// Input is the text as given.
	Input string
	// Parsed is the exact, unreduced fraction read from Input.
	Parsed rational.Fraction
	// Fraction is Parsed divided by its gcd.
	Fraction rational.Fraction
	// Expansion is the continued fraction of Fraction; its GCD is 1.
	Expansion contfrac.Result
	// Rows are the ancestors of Fraction.
	Rows []sternbrocot.Row
}

// Analyze parses text, reduces it and enumerates its ancestors.
//
// Parse errors are returned unchanged (errors.Is works against the
// rational sentinels); no partial Result is returned on failure.
func Analyze(text string, opts ...sternbrocot.Option) (*Result, error) {
	parsed, err := rational.ParseFraction(text)
	if err != nil {
		return nil, err
	}

	frac := parsed.Reduce(contfrac.Expand(parsed).GCD)
	rows, err := sternbrocot.Enumerate(frac, opts...)
	if err != nil {
		return nil, fmt.Errorf("approx: %s: %w", frac, err)
	}

	return &Result{
		Input:     text,
		Parsed:    parsed,
		Fraction:  frac,
		Expansion: contfrac.Expand(frac),
		Rows:      rows,
	}, nil
}

// AnalyzeAll runs Analyze on every text with at most limit calls in flight.
// Results keep the order of texts. The first failure cancels the remaining
// work and is returned with the offending input.
func AnalyzeAll(ctx context.Context, texts []string, limit int, opts ...sternbrocot.Option) ([]*Result, error) {
	results := make([]*Result, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, text := range texts {
		i, text := i, text // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Analyze(text, opts...)
			if err != nil {
				return fmt.Errorf("input %d %q: %w", i, text, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
