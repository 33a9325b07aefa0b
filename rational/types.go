package rational

import (
	"errors"
	"math/big"
)

// Sentinel errors for parsing.
var (
	// ErrMalformedNumber indicates a token that does not match the number grammar.
	ErrMalformedNumber = errors.New("rational: malformed number")

	// ErrZeroDenominator indicates a denominator that parses to zero.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrMalformedFraction indicates bad fraction syntax or a side that failed to parse.
	ErrMalformedFraction = errors.New("rational: malformed fraction")

	// ErrExponentRange indicates a power of ten too large to materialize.
	ErrExponentRange = errors.New("rational: exponent out of range")
)

// MaxExponent bounds |numExp - denExp| in ParseFraction. A larger
// difference would require a power of ten with more than MaxExponent digits.
const MaxExponent = 100_000

// IntegerTimesPower is the exact value Mantissa × 10^Exponent.
//
// Values returned by ParseNumber are normalized: zero is {0, 0} and a
// nonzero Mantissa is never divisible by 10.
type IntegerTimesPower struct {
	Mantissa *big.Int
	Exponent *big.Int
}

// IsZero reports whether the value is numerically zero.
func (p IntegerTimesPower) IsZero() bool {
	return p.Mantissa == nil || p.Mantissa.Sign() == 0
}

// Rat returns the exact value as a *big.Rat.
func (p IntegerTimesPower) Rat() *big.Rat {
	r := new(big.Rat).SetInt(p.Mantissa)
	if p.Exponent.Sign() == 0 {
		return r
	}
	scale := pow10(new(big.Int).Abs(p.Exponent))
	if p.Exponent.Sign() > 0 {
		return r.Mul(r, new(big.Rat).SetInt(scale))
	}
	return r.Quo(r, new(big.Rat).SetInt(scale))
}

// Fraction is an integer pair Num/Den.
//
// Fractions are treated as immutable values: no function in this module
// mutates the big.Int behind a Fraction it did not allocate itself.
// Den = 0 is only meaningful as a direction vector (1/0 is the point at
// infinity of the Stern–Brocot tree).
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

// NewFraction builds a Fraction from machine integers. It does not reduce.
func NewFraction(num, den int64) Fraction {
	return Fraction{Num: big.NewInt(num), Den: big.NewInt(den)}
}

// Frac builds a Fraction from copies of num and den.
func Frac(num, den *big.Int) Fraction {
	return Fraction{Num: new(big.Int).Set(num), Den: new(big.Int).Set(den)}
}

// String renders the fraction as "num/den".
func (f Fraction) String() string {
	return f.Num.String() + "/" + f.Den.String()
}

// Equal reports component-wise equality; 2/4 and 1/2 are not Equal.
func (f Fraction) Equal(o Fraction) bool {
	return f.Num.Cmp(o.Num) == 0 && f.Den.Cmp(o.Den) == 0
}

// Reduce divides both components by g. g must divide both exactly and be nonzero.
func (f Fraction) Reduce(g *big.Int) Fraction {
	return Fraction{
		Num: new(big.Int).Quo(f.Num, g),
		Den: new(big.Int).Quo(f.Den, g),
	}
}

// Rat returns the value as a *big.Rat. Den must be nonzero.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac(f.Num, f.Den)
}

// pow10 returns 10^e for e >= 0.
func pow10(e *big.Int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), e, nil)
}
