package format

import (
	"math/big"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/sternbrocot/rational"
	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// Headers names the table columns.
var Headers = []string{"Lower", "Upper", "Depth", "Left", "Right"}

// Ellipsis marks an elided stretch of a run.
const Ellipsis = "⋮"

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	headerStyle = cellStyle.Bold(true)
	centerStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("212"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Cells converts rows into the five table columns. The first line is the
// implicit 0/1 and 1/0 bounds of the tree, which Enumerate never emits.
// A CenterRow fills both bound columns.
func Cells(rows []sternbrocot.Row, group bool) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, []string{
		Fraction(rational.NewFraction(0, 1), group),
		Fraction(rational.NewFraction(1, 0), group),
		"", "", "",
	})

	num := func(n *big.Int) string { return GroupDigits(n, group) }
	for _, r := range rows {
		switch r := r.(type) {
		case sternbrocot.LeftRow:
			out = append(out, []string{Fraction(r.Left, group), "", num(r.Depth), "", num(r.RightIndex)})
		case sternbrocot.RightRow:
			out = append(out, []string{"", Fraction(r.Right, group), num(r.Depth), num(r.LeftIndex), ""})
		case sternbrocot.TurningLeftRow:
			out = append(out, []string{Fraction(r.Left, group), "", num(r.Depth), num(r.LeftIndex), num(r.RightIndex)})
		case sternbrocot.TurningRightRow:
			out = append(out, []string{"", Fraction(r.Right, group), num(r.Depth), num(r.LeftIndex), num(r.RightIndex)})
		case sternbrocot.CenterRow:
			c := Fraction(r.Center, group)
			if r.Side == sternbrocot.SideLeft {
				out = append(out, []string{c, c, num(r.Depth), num(r.Index), ""})
			} else {
				out = append(out, []string{c, c, num(r.Depth), "", num(r.Index)})
			}
		case sternbrocot.LessEllipsisRow:
			out = append(out, []string{Ellipsis, "", "", "", ""})
		case sternbrocot.GreaterEllipsisRow:
			out = append(out, []string{"", Ellipsis, "", "", ""})
		}
	}

	return out
}

// Table renders rows as a bordered terminal table.
func Table(rows []sternbrocot.Row, group bool) string {
	cells := Cells(rows, group)
	center := make(map[int]bool)
	for i, r := range rows {
		if _, ok := r.(sternbrocot.CenterRow); ok {
			center[i+1] = true // +1 for the bounds line
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		Rows(cells...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case center[row]:
				return centerStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
