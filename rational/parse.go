package rational

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"
)

// numberPattern matches a whitespace-free number token.
//
// Groups:
//
//	1 sign
//	2 digits before '.' in the {former}.{latter} form (may be empty)
//	3 digits after '.'  in the {former}.{latter} form
//	4 digits of the {integer}.? form
//	5 signed exponent digits
var numberPattern = regexp.MustCompile(`^([+-]?)(?:([0-9]*)\.([0-9]+)|([0-9]+)\.?)(?:[eE]([+-]?[0-9]+))?$`)

var (
	bigTen = big.NewInt(10)
	bigOne = big.NewInt(1)
)

// ParseNumber parses a signed decimal or scientific-notation token into a
// normalized Mantissa × 10^Exponent.
//
// Algorithm:
//  1. Strip all whitespace and match the grammar.
//  2. Concatenate the integer and fractional digits into the mantissa,
//     exponent = −(number of fractional digits).
//  3. Zero mantissa → {0, 0} immediately (sign and exponent are dropped).
//  4. Strip trailing zeros, incrementing the exponent once per digit.
//  5. Apply the sign and add the exponent suffix.
//
// Returns ErrMalformedNumber on any grammar mismatch.
func ParseNumber(text string) (IntegerTimesPower, error) {
	s := stripSpace(text)
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return IntegerTimesPower{}, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}
	sign, former, latter, integer, suffix := m[1], m[2], m[3], m[4], m[5]

	mantissa := new(big.Int)
	exponent := new(big.Int)
	digits := integer
	if latter != "" {
		digits = former + latter
		exponent.SetInt64(-int64(len(latter)))
	}
	if _, ok := mantissa.SetString(digits, 10); !ok {
		return IntegerTimesPower{}, fmt.Errorf("%w: %q", ErrMalformedNumber, text)
	}

	if mantissa.Sign() == 0 {
		return IntegerTimesPower{Mantissa: new(big.Int), Exponent: new(big.Int)}, nil
	}

	// normalize
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(mantissa, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		mantissa.Set(q)
		exponent.Add(exponent, bigOne)
	}

	if sign == "-" {
		mantissa.Neg(mantissa)
	}
	if suffix != "" {
		e, ok := new(big.Int).SetString(suffix, 10)
		if !ok {
			return IntegerTimesPower{}, fmt.Errorf("%w: exponent %q", ErrMalformedNumber, suffix)
		}
		exponent.Add(exponent, e)
	}

	return IntegerTimesPower{Mantissa: mantissa, Exponent: exponent}, nil
}

// ParseFraction parses "numerator[/denominator]" into an exact, possibly
// unreduced Fraction with a positive denominator.
//
// Both sides are parsed with ParseNumber; the denominator defaults to "1".
// A zero numerator yields the canonical 0/1 whatever the denominator's
// magnitude. Otherwise, with e = numExp − denExp:
//
//	e >= 0: num = numMantissa × 10^e, den = denMantissa
//	e <  0: num = numMantissa,        den = denMantissa × 10^−e
//
// after moving the denominator's sign onto the numerator.
//
// Errors:
//   - ErrMalformedFraction (wrapping the side's ErrMalformedNumber) when
//     there is more than one '/' or either side fails.
//   - ErrZeroDenominator when the denominator is zero.
//   - ErrExponentRange when |e| > MaxExponent.
func ParseFraction(text string) (Fraction, error) {
	parts := strings.Split(text, "/")
	if len(parts) > 2 {
		return Fraction{}, fmt.Errorf("%w: more than one '/' in %q", ErrMalformedFraction, text)
	}
	denText := "1"
	if len(parts) == 2 {
		denText = parts[1]
	}

	num, err := ParseNumber(parts[0])
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: numerator: %w", ErrMalformedFraction, err)
	}
	den, err := ParseNumber(denText)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: denominator: %w", ErrMalformedFraction, err)
	}

	if den.IsZero() {
		return Fraction{}, fmt.Errorf("%w: %q", ErrZeroDenominator, text)
	}
	if num.IsZero() {
		return NewFraction(0, 1), nil
	}

	e := new(big.Int).Sub(num.Exponent, den.Exponent)
	if new(big.Int).Abs(e).Cmp(big.NewInt(MaxExponent)) > 0 {
		return Fraction{}, fmt.Errorf("%w: 10^%s", ErrExponentRange, e)
	}

	numMantissa := new(big.Int).Set(num.Mantissa)
	denMantissa := new(big.Int).Set(den.Mantissa)
	if denMantissa.Sign() < 0 {
		numMantissa.Neg(numMantissa)
		denMantissa.Neg(denMantissa)
	}

	if e.Sign() >= 0 {
		return Fraction{Num: numMantissa.Mul(numMantissa, pow10(e)), Den: denMantissa}, nil
	}

	return Fraction{Num: numMantissa, Den: denMantissa.Mul(denMantissa, pow10(e.Neg(e)))}, nil
}

// stripSpace removes every Unicode whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
