package sternbrocot

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/sternbrocot/contfrac"
	"github.com/katalvlaran/sternbrocot/rational"
)

var bigOne = big.NewInt(1)

// Descend returns begin + length·diff, component-wise:
//
//	num = begin.num + diff.num·length
//	den = begin.den + diff.den·length
//
// Every node on a straight run is such a combination of the run's start
// and direction.
func Descend(begin, diff rational.Fraction, length *big.Int) rational.Fraction {
	num := new(big.Int).Mul(diff.Num, length)
	num.Add(num, begin.Num)
	den := new(big.Int).Mul(diff.Den, length)
	den.Add(den, begin.Den)

	return rational.Fraction{Num: num, Den: den}
}

// Ancestors converts f into the runs of its Stern–Brocot path.
//
// Algorithm:
//  1. Expand f into [a0; a1, …, ak] and replace ak by ak − 1.
//  2. begin = 1/1, diff = 1/0.
//  3. For each term length: emit Run{begin, diff, length}, then
//     begin, diff = Descend(begin, diff, length), Descend(begin, diff, length−1).
//
// Even-indexed runs move right, odd-indexed runs move left.
//
// f.Den must be nonzero. Returns ErrNegativeRunLength when ak − 1 < 0,
// which happens for 0 and for negative integers.
func Ancestors(f rational.Fraction) ([]Run, error) {
	terms := contfrac.Expand(f).Terms
	lastIdx := len(terms) - 1
	last := new(big.Int).Sub(terms[lastIdx], bigOne)
	if last.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s has last term %s", ErrNegativeRunLength, f, terms[lastIdx])
	}

	begin := rational.NewFraction(1, 1)
	diff := rational.NewFraction(1, 0)
	runs := make([]Run, 0, len(terms))
	for i, length := range terms {
		if i == lastIdx {
			length = last
		}
		runs = append(runs, Run{Begin: begin, Diff: diff, Length: length})
		begin, diff = Descend(begin, diff, length), Descend(begin, diff, new(big.Int).Sub(length, bigOne))
	}

	return runs, nil
}
