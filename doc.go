// Package sbpath is the module root of the Stern–Brocot path toolkit: exact
// rational parsing, continued fractions and the best rational approximants
// met on the way down the Stern–Brocot tree.
//
// 🚀 What is in here?
//
//	rational/    — "2.5", "1.23e4 / 567", "-1/3" parsed into exact fractions
//	contfrac/    — floor-division Euclid: [a0; a1, …, ak], gcd, convergents
//	sternbrocot/ — runs of the Stern–Brocot path and their display rows
//	approx/      — parse → reduce → enumerate, one input or many in parallel
//	format/      — digit grouping, bordered tables, flat YAML records
//	config/      — YAML settings with SBPATH_* environment overrides
//	cmd/sbpath/  — the command-line front end
//
// Quick example:
//
//	3/5 = [0; 1, 1, 2]
//
//	    1/1
//	   ╱
//	 1/2
//	   ╲
//	   2/3
//	   ╱
//	 3/5
//
//	go install github.com/katalvlaran/sternbrocot/cmd/sbpath@latest
package sbpath
