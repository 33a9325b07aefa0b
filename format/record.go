package format

import (
	"github.com/katalvlaran/sternbrocot/sternbrocot"
)

// Record is a flat, serializable view of one row. Empty fields are
// columns the row leaves blank.
type Record struct {
	Kind       string `yaml:"kind"`
	Lower      string `yaml:"lower,omitempty"`
	Upper      string `yaml:"upper,omitempty"`
	Center     string `yaml:"center,omitempty"`
	Depth      string `yaml:"depth,omitempty"`
	LeftIndex  string `yaml:"left_index,omitempty"`
	RightIndex string `yaml:"right_index,omitempty"`
}

// Row kinds used in Record.Kind.
const (
	KindLeft            = "left"
	KindRight           = "right"
	KindTurningLeft     = "turning_left"
	KindTurningRight    = "turning_right"
	KindCenter          = "center"
	KindLessEllipsis    = "less_ellipsis"
	KindGreaterEllipsis = "greater_ellipsis"
)

// Records converts rows into Records. Fractions are written as "num/den".
func Records(rows []sternbrocot.Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		switch r := r.(type) {
		case sternbrocot.LeftRow:
			out = append(out, Record{Kind: KindLeft, Lower: r.Left.String(), Depth: r.Depth.String(), RightIndex: r.RightIndex.String()})
		case sternbrocot.RightRow:
			out = append(out, Record{Kind: KindRight, Upper: r.Right.String(), Depth: r.Depth.String(), LeftIndex: r.LeftIndex.String()})
		case sternbrocot.TurningLeftRow:
			out = append(out, Record{
				Kind: KindTurningLeft, Lower: r.Left.String(), Depth: r.Depth.String(),
				LeftIndex: r.LeftIndex.String(), RightIndex: r.RightIndex.String(),
			})
		case sternbrocot.TurningRightRow:
			out = append(out, Record{
				Kind: KindTurningRight, Upper: r.Right.String(), Depth: r.Depth.String(),
				LeftIndex: r.LeftIndex.String(), RightIndex: r.RightIndex.String(),
			})
		case sternbrocot.CenterRow:
			rec := Record{Kind: KindCenter, Center: r.Center.String(), Depth: r.Depth.String()}
			if r.Side == sternbrocot.SideLeft {
				rec.LeftIndex = r.Index.String()
			} else {
				rec.RightIndex = r.Index.String()
			}
			out = append(out, rec)
		case sternbrocot.LessEllipsisRow:
			out = append(out, Record{Kind: KindLessEllipsis})
		case sternbrocot.GreaterEllipsisRow:
			out = append(out, Record{Kind: KindGreaterEllipsis})
		}
	}

	return out
}
