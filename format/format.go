// Package format renders fractions, continued fractions and ancestor rows
// for terminal display.
package format

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/sternbrocot/contfrac"
	"github.com/katalvlaran/sternbrocot/rational"
)

// Separator is inserted between digit groups.
const Separator = " "

// GroupDigits renders n in base 10, inserting Separator every three digits
// from the least significant end when group is true. The sign is kept in
// front of the first group.
//
//	GroupDigits(1234567, true)  → "1 234 567"
//	GroupDigits(-1234, true)    → "-1 234"
//	GroupDigits(1234567, false) → "1234567"
func GroupDigits(n *big.Int, group bool) string {
	s := n.String()
	if !group {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	head := len(s) % 3
	parts := make([]string, 0, len(s)/3+1)
	if head > 0 {
		parts = append(parts, s[:head])
	}
	for i := head; i < len(s); i += 3 {
		parts = append(parts, s[i:i+3])
	}

	return sign + strings.Join(parts, Separator)
}

// Fraction renders f as "num / den".
func Fraction(f rational.Fraction, group bool) string {
	return GroupDigits(f.Num, group) + " / " + GroupDigits(f.Den, group)
}

// Terms renders a continued fraction as "[a0; a1, a2]".
func Terms(res contfrac.Result, group bool) string {
	if len(res.Terms) == 0 {
		return "[]"
	}
	rest := make([]string, 0, len(res.Terms)-1)
	for _, t := range res.Terms[1:] {
		rest = append(rest, GroupDigits(t, group))
	}
	head := GroupDigits(res.Terms[0], group)
	if len(rest) == 0 {
		return "[" + head + "]"
	}

	return "[" + head + "; " + strings.Join(rest, ", ") + "]"
}
