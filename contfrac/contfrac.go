package contfrac

import (
	"errors"
	"math/big"
	"strings"

	"github.com/katalvlaran/sternbrocot/rational"
)

// ErrEmptyTerms is returned by Evaluate for an empty term sequence.
var ErrEmptyTerms = errors.New("contfrac: empty term sequence")

// Result is the continued fraction [a0; a1, …, ak] of a fraction together
// with the gcd of its numerator and denominator.
type Result struct {
	Terms []*big.Int
	GCD   *big.Int
}

// String renders the expansion as "[a0; a1, a2]", or "[a0]" for integers.
func (r Result) String() string {
	if len(r.Terms) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(r.Terms[0].String())
	for i, t := range r.Terms[1:] {
		if i == 0 {
			sb.WriteString("; ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString("]")

	return sb.String()
}

// Expand computes the continued fraction of f and the gcd of f.Num, f.Den.
//
// f.Den must be nonzero; rational.ParseFraction guarantees it. A zero
// denominator is a programming error and panics.
//
// Returns gcd = |num| at termination: the last nonzero remainder, or |f.Num|
// when f is already an integer.
func Expand(f rational.Fraction) Result {
	if f.Den.Sign() == 0 {
		panic("contfrac: zero denominator")
	}

	a := new(big.Int).Set(f.Num)
	b := new(big.Int).Set(f.Den)
	var terms []*big.Int
	for b.Sign() != 0 {
		q, r := FloorDivMod(a, b)
		terms = append(terms, q)
		a, b = b, r
	}

	return Result{Terms: terms, GCD: a.Abs(a)}
}

// FloorDivMod returns q = ⌊a/b⌋ and r = a − q·b, so r is zero or has the
// sign of b. b must be nonzero.
//
// big.Int.DivMod is Euclidean (r ≥ 0) and QuoRem truncates toward zero;
// neither matches floor division for negative divisors, so QuoRem is
// corrected by one step when the remainder's sign disagrees with b.
func FloorDivMod(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}

	return q, r
}

// Convergents returns the successive convergents h_n/k_n of terms using
//
//	h_n = a_n·h_{n−1} + h_{n−2},  h_{−1} = 1, h_{−2} = 0
//	k_n = a_n·k_{n−1} + k_{n−2},  k_{−1} = 0, k_{−2} = 1
//
// For the expansion of a fraction f, the last convergent is f reduced.
func Convergents(terms []*big.Int) []rational.Fraction {
	out := make([]rational.Fraction, 0, len(terms))
	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)
	for _, a := range terms {
		h := new(big.Int).Mul(a, h1)
		h.Add(h, h2)
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k2)
		out = append(out, rational.Fraction{Num: h, Den: k})
		h1, h2 = h, h1
		k1, k2 = k, k1
	}

	return out
}

// Evaluate folds terms back into a fraction (the last convergent).
func Evaluate(terms []*big.Int) (rational.Fraction, error) {
	if len(terms) == 0 {
		return rational.Fraction{}, ErrEmptyTerms
	}
	c := Convergents(terms)

	return c[len(c)-1], nil
}
