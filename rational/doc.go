// Package rational turns free-form decimal text into exact integer fractions.
//
// 🚀 What does it parse?
//
//	A number token is an optional sign, a decimal mantissa and an optional
//	exponent:
//	  • "12", "12.", "0012.500", ".5", "-3.25e-4", "1E+9"
//	  • whitespace anywhere inside the token is ignored: " 1 010. 01 "
//
//	A fraction is one or two number tokens separated by a single '/':
//	  • "2.5"          → 25/10
//	  • "1.23e4 / 567" → 12300/567
//	  • "-1/-2"        → 1/2 (the sign always ends up on the numerator)
//
// ✨ Guarantees:
//   - exact: values are math/big integers, no floating point anywhere
//   - normalized mantissas: a nonzero IntegerTimesPower mantissa is never a
//     multiple of 10, and zero is always {0, 0}
//   - positive denominators: ParseFraction never returns Den <= 0
//   - unreduced: ParseFraction does not divide by the gcd; see contfrac.Expand
//
// ⚙️ Usage:
//
//	f, err := rational.ParseFraction("0010.3e-10")
//	if err != nil {
//	  // errors.Is(err, rational.ErrMalformedFraction) etc.
//	}
//	fmt.Println(f) // 103/100000000000
//
// Errors:
//   - ErrMalformedNumber   — grammar mismatch, empty token, bad exponent.
//   - ErrZeroDenominator   — the denominator is numerically zero.
//   - ErrMalformedFraction — more than one '/', or a side failed to parse.
//   - ErrExponentRange     — the combined exponent is beyond MaxExponent.
package rational
