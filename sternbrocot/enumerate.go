package sternbrocot

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/sternbrocot/rational"
)

// enumerator holds the mutable state of one Enumerate call.
type enumerator struct {
	opts  Options
	depth *big.Int
	rows  []Row
}

// Enumerate lists the best approximants on the Stern–Brocot path to f.
//
// Rows, in order:
//   - the root 1/1 as LeftRow when the first run is nonempty (the bounds
//     0/1 and 1/0 are implicit and never emitted);
//   - for run i, interior steps 1..length−1 as LeftRow (even i, right moves)
//     or RightRow (odd i, left moves), with depth = depth_i + step;
//   - the run's last node as TurningRightRow/TurningLeftRow, or CenterRow
//     for the last run.
//
// Window policy per run, with L = length:
//
//	lo = min(FirstWindow, L−1)
//	hi = max(L − LastWindow + 1, 1)
//	lo >= hi−1: emit 1..L−1
//	otherwise:  emit 1..lo, one ellipsis row, hi..L−1
//
// so a long run shows FirstWindow interior rows, an ellipsis, then
// LastWindow rows including its final row.
//
// The root 1/1 alone yields a single CenterRow at depth 0.
//
// Errors: ErrOptionViolation, ErrNegativeRunLength (see Ancestors),
// ErrRunTooLong when a run would emit more than MaxRunLength interior rows.
func Enumerate(f rational.Fraction, opts ...Option) ([]Row, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	runs, err := Ancestors(f)
	if err != nil {
		return nil, err
	}

	if len(runs) == 1 && runs[0].Length.Sign() == 0 {
		return []Row{CenterRow{
			Center: rational.NewFraction(1, 1),
			Depth:  new(big.Int),
			Side:   SideRight,
			Index:  new(big.Int),
		}}, nil
	}

	e := &enumerator{opts: o, depth: new(big.Int)}
	if runs[0].Length.Sign() != 0 {
		e.rows = append(e.rows, LeftRow{
			Left:       rational.NewFraction(1, 1),
			Depth:      new(big.Int),
			RightIndex: new(big.Int),
		})
	}

	for i, run := range runs {
		rightward := i%2 == 0
		if err := e.interior(run, rightward); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		e.final(run, rightward, i == len(runs)-1)
		e.depth = new(big.Int).Add(e.depth, run.Length)
	}

	return e.rows, nil
}

// interior emits the steps strictly between a run's endpoints.
func (e *enumerator) interior(run Run, rightward bool) error {
	last := new(big.Int).Sub(run.Length, bigOne) // L−1
	if last.Sign() <= 0 {
		return nil
	}

	lo := new(big.Int).Set(last)
	if e.opts.FirstWindow != Unlimited {
		if w := big.NewInt(int64(e.opts.FirstWindow)); w.Cmp(lo) < 0 {
			lo = w
		}
	}
	hi := big.NewInt(1)
	if e.opts.LastWindow != Unlimited {
		// L − LastWindow + 1, clamped to [1, L]
		hi.Sub(run.Length, big.NewInt(int64(e.opts.LastWindow)))
		hi.Add(hi, bigOne)
		if hi.Cmp(bigOne) < 0 {
			hi.SetInt64(1)
		}
		if hi.Cmp(run.Length) > 0 {
			hi.Set(run.Length)
		}
	}

	elide := lo.Cmp(new(big.Int).Sub(hi, bigOne)) < 0
	emitted := last
	if elide {
		// lo + (L−1 − hi + 1)
		emitted = new(big.Int).Sub(run.Length, hi)
		emitted.Add(emitted, lo)
	}
	if emitted.Cmp(big.NewInt(int64(e.opts.MaxRunLength))) > 0 {
		return fmt.Errorf("%w: %s rows, max %d", ErrRunTooLong, emitted, e.opts.MaxRunLength)
	}

	if !elide {
		e.steps(run, rightward, bigOne, last)

		return nil
	}
	e.steps(run, rightward, bigOne, lo)
	if rightward {
		e.rows = append(e.rows, LessEllipsisRow{})
	} else {
		e.rows = append(e.rows, GreaterEllipsisRow{})
	}
	e.steps(run, rightward, hi, last)

	return nil
}

// steps emits interior rows for i in [from, to].
func (e *enumerator) steps(run Run, rightward bool, from, to *big.Int) {
	for i := new(big.Int).Set(from); i.Cmp(to) <= 0; i.Add(i, bigOne) {
		node := run.At(i)
		depth := new(big.Int).Add(e.depth, i)
		idx := new(big.Int).Set(i)
		if rightward {
			e.rows = append(e.rows, LeftRow{Left: node, Depth: depth, RightIndex: idx})
		} else {
			e.rows = append(e.rows, RightRow{Right: node, Depth: depth, LeftIndex: idx})
		}
	}
}

// final emits the node at i = L: the target for the last run, a turning row otherwise.
func (e *enumerator) final(run Run, rightward, last bool) {
	node := run.At(run.Length)
	depth := new(big.Int).Add(e.depth, run.Length)
	idx := new(big.Int).Set(run.Length)

	switch {
	case last:
		side := SideRight
		if !rightward {
			side = SideLeft
		}
		e.rows = append(e.rows, CenterRow{Center: node, Depth: depth, Side: side, Index: idx})
	case rightward:
		e.rows = append(e.rows, TurningRightRow{Right: node, Depth: depth, RightIndex: idx, LeftIndex: new(big.Int)})
	default:
		e.rows = append(e.rows, TurningLeftRow{Left: node, Depth: depth, LeftIndex: idx, RightIndex: new(big.Int)})
	}
}
