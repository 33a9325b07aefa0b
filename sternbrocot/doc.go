// Package sternbrocot walks the Stern–Brocot tree from its root 1/1 down to
// a rational and lists the best approximants met on the way.
//
// 🚀 What is the Stern–Brocot tree?
//
//	Every positive rational sits at exactly one node of an infinite binary
//	search tree whose nodes are mediants of their two nearest ancestors:
//
//	                 1/1
//	           ┌──────┴──────┐
//	          1/2           2/1
//	        ┌──┴──┐       ┌──┴──┐
//	       1/3   2/3     3/2   3/1
//
//	The path to p/q is read off its continued fraction [a0; a1, …, ak]:
//	a0 moves right, a1 moves left, a2 right, …, with ak decremented by one
//	so the path is the canonical one.
//
// ✨ Two layers:
//   - Ancestors turns a fraction into Runs: straight descents
//     begin + i·diff, i ∈ [0, length], one per continued-fraction term.
//   - Enumerate expands the runs into display rows (lower/upper bound,
//     depth, left/right run index), eliding the middle of long runs with a
//     single ellipsis row.
//
// ⚙️ Usage:
//
//	rows, err := sternbrocot.Enumerate(f,
//	  sternbrocot.WithFirstWindow(1),
//	  sternbrocot.WithLastWindow(2),
//	)
//	for _, r := range rows {
//	  switch r := r.(type) {
//	  case sternbrocot.CenterRow:
//	    fmt.Println("target", r.Center, "at depth", r.Depth)
//	  ...
//	  }
//	}
//
// Negative fractions are walked "as is": floor division gives them a
// negative first term, so depths and indices may go negative. Nothing is
// clamped.
//
// Complexity: O(k + rows) big-integer operations, k = number of terms.
package sternbrocot
