package sternbrocot

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/sternbrocot/rational"
)

// Sentinel errors for path construction and enumeration.
var (
	// ErrNegativeRunLength is returned when decrementing the last
	// continued-fraction term would give a negative run length (0/1 and
	// negative integers have no canonical tree path).
	ErrNegativeRunLength = errors.New("sternbrocot: last continued-fraction term is below one")

	// ErrRunTooLong is returned when a run would materialize more interior
	// rows than the configured maximum.
	ErrRunTooLong = errors.New("sternbrocot: run exceeds maximum length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sternbrocot: invalid option supplied")
)

// Unlimited disables elision for a window: every interior row is shown.
const Unlimited = -1

// DefaultMaxRunLength caps the interior rows of one run when elision is off.
const DefaultMaxRunLength = 100_000

// Run is a straight descent in the tree: the nodes Begin + i·Diff for
// i ∈ [0, Length], added component-wise on numerator and denominator.
//
// Diff = 1/0 is the formal point at infinity used as the first direction.
type Run struct {
	Begin  rational.Fraction
	Diff   rational.Fraction
	Length *big.Int
}

// At returns the node i steps along the run.
func (r Run) At(i *big.Int) rational.Fraction {
	return Descend(r.Begin, r.Diff, i)
}

// String renders the run as "begin + i·diff, i ∈ [0, length]".
func (r Run) String() string {
	return fmt.Sprintf("%s + i·%s, i ∈ [0, %s]", r.Begin, r.Diff, r.Length)
}

// Side names which run-index column a CenterRow's index belongs to.
type Side int

const (
	// SideRight means the index counts right moves (even runs).
	SideRight Side = iota
	// SideLeft means the index counts left moves (odd runs).
	SideLeft
)

// String returns "right" or "left".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}

	return "right"
}

// Row is one line of the ancestor table. The concrete types are:
//
//	LeftRow, RightRow               interior node of a run
//	TurningLeftRow, TurningRightRow last node of a run, pivot into the next
//	CenterRow                       the target fraction itself
//	LessEllipsisRow                 elided right moves (lower bounds)
//	GreaterEllipsisRow              elided left moves (upper bounds)
type Row interface {
	isRow()
}

// LeftRow is a new lower bound reached by a right move.
type LeftRow struct {
	Left       rational.Fraction
	Depth      *big.Int
	RightIndex *big.Int
}

// RightRow is a new upper bound reached by a left move.
type RightRow struct {
	Right     rational.Fraction
	Depth     *big.Int
	LeftIndex *big.Int
}

// TurningLeftRow ends a run of left moves; the node becomes a lower bound
// and the right-move count restarts at 0.
type TurningLeftRow struct {
	Left       rational.Fraction
	Depth      *big.Int
	LeftIndex  *big.Int
	RightIndex *big.Int
}

// TurningRightRow ends a run of right moves; the node becomes an upper
// bound and the left-move count restarts at 0.
type TurningRightRow struct {
	Right      rational.Fraction
	Depth      *big.Int
	LeftIndex  *big.Int
	RightIndex *big.Int
}

// CenterRow is the target fraction. Index belongs to the column named by Side.
type CenterRow struct {
	Center rational.Fraction
	Depth  *big.Int
	Side   Side
	Index  *big.Int
}

// LessEllipsisRow stands for elided lower bounds.
type LessEllipsisRow struct{}

// GreaterEllipsisRow stands for elided upper bounds.
type GreaterEllipsisRow struct{}

func (LeftRow) isRow()            {}
func (RightRow) isRow()           {}
func (TurningLeftRow) isRow()     {}
func (TurningRightRow) isRow()    {}
func (CenterRow) isRow()          {}
func (LessEllipsisRow) isRow()    {}
func (GreaterEllipsisRow) isRow() {}

// Option configures Enumerate via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the enumeration window policy.
type Options struct {
	// FirstWindow is how many leading interior rows of a long run are shown.
	// Unlimited disables elision.
	FirstWindow int

	// LastWindow is how many trailing rows of a long run are shown,
	// counting the run's final (turning or center) row. Unlimited disables elision.
	LastWindow int

	// MaxRunLength bounds the interior rows one run may materialize.
	MaxRunLength int

	err error
}

// DefaultOptions shows everything, capped at DefaultMaxRunLength rows per run.
func DefaultOptions() Options {
	return Options{
		FirstWindow:  Unlimited,
		LastWindow:   Unlimited,
		MaxRunLength: DefaultMaxRunLength,
	}
}

// WithFirstWindow sets FirstWindow.
//
//	n >= 0:        show n leading interior rows
//	n == Unlimited: no elision
//	n < Unlimited: ErrOptionViolation
func WithFirstWindow(n int) Option {
	return func(o *Options) {
		if n < Unlimited {
			o.err = fmt.Errorf("%w: FirstWindow cannot be %d", ErrOptionViolation, n)

			return
		}
		o.FirstWindow = n
	}
}

// WithLastWindow sets LastWindow; same domain as WithFirstWindow.
func WithLastWindow(n int) Option {
	return func(o *Options) {
		if n < Unlimited {
			o.err = fmt.Errorf("%w: LastWindow cannot be %d", ErrOptionViolation, n)

			return
		}
		o.LastWindow = n
	}
}

// WithWindows sets both windows at once.
func WithWindows(first, last int) Option {
	return func(o *Options) {
		WithFirstWindow(first)(o)
		WithLastWindow(last)(o)
	}
}

// WithMaxRunLength sets MaxRunLength; n must be positive.
func WithMaxRunLength(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRunLength must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxRunLength = n
	}
}
