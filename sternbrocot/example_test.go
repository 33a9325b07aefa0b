package sternbrocot_test

import (
	"fmt"

	"github.com/katalvlaran/sternbrocot/rational"
	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// ExampleAncestors prints the straight descents leading to 29/11.
func ExampleAncestors() {
	runs, err := sternbrocot.Ancestors(rational.NewFraction(29, 11))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range runs {
		fmt.Println(r)
	}
	// Output:
	// 1/1 + i·1/0, i ∈ [0, 2]
	// 3/1 + i·2/1, i ∈ [0, 1]
	// 5/2 + i·3/1, i ∈ [0, 1]
	// 8/3 + i·5/2, i ∈ [0, 1]
	// 13/5 + i·8/3, i ∈ [0, 2]
}

// ExampleEnumerate walks to 1/10 showing one leading and two trailing rows.
func ExampleEnumerate() {
	rows, err := sternbrocot.Enumerate(rational.NewFraction(1, 10), sternbrocot.WithWindows(1, 2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range rows {
		switch r := r.(type) {
		case sternbrocot.LeftRow:
			fmt.Printf("lower %s depth %s\n", r.Left, r.Depth)
		case sternbrocot.RightRow:
			fmt.Printf("upper %s depth %s\n", r.Right, r.Depth)
		case sternbrocot.TurningLeftRow:
			fmt.Printf("lower %s depth %s (turn)\n", r.Left, r.Depth)
		case sternbrocot.TurningRightRow:
			fmt.Printf("upper %s depth %s (turn)\n", r.Right, r.Depth)
		case sternbrocot.GreaterEllipsisRow, sternbrocot.LessEllipsisRow:
			fmt.Println("...")
		case sternbrocot.CenterRow:
			fmt.Printf("target %s depth %s\n", r.Center, r.Depth)
		}
	}
	// Output:
	// upper 1/1 depth 0 (turn)
	// upper 1/2 depth 1
	// ...
	// upper 1/9 depth 8
	// target 1/10 depth 9
}
