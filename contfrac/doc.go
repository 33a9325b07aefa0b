// Package contfrac expands exact fractions into simple continued fractions.
//
// The expansion is the Euclidean algorithm with floor division:
//
//	while den ≠ 0:
//	  q, r = floor(num / den), num − q·den
//	  emit q
//	  num, den = den, r
//
// Floor division (quotient toward −∞, remainder carrying the divisor's sign)
// keeps every term after the first positive, so negative fractions expand
// correctly: −1/2 = [−1; 2], not [0; −2].
//
// The final |num| is the gcd of the input pair, which lets callers reduce
// the unreduced output of rational.ParseFraction.
//
// Complexity: O(k) big-integer divisions, k ≤ ~2.08·log10(den) + 2.
package contfrac
