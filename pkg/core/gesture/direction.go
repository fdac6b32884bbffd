package gesture

import (
	"strings"

	"github.com/matzehuels/panels/pkg/errors"
)

// Direction is the main axis of a panel group.
type Direction string

// Supported directions.
const (
	Row           Direction = "row"
	Column        Direction = "column"
	RowReverse    Direction = "row-reverse"
	ColumnReverse Direction = "column-reverse"
)

// Directions lists every valid direction.
var Directions = []Direction{Row, Column, RowReverse, ColumnReverse}

// ParseDirection parses a direction name, case-insensitively. The empty
// string yields [Row].
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return Row, nil
	}
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Directions {
		if d == known {
			return d, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unknown direction %q (want row, column, row-reverse or column-reverse)", s)
}

// IsHorizontal reports whether panels are laid out left to right (or right
// to left).
func (d Direction) IsHorizontal() bool {
	return strings.HasPrefix(string(d), "row")
}

// IsReverse reports whether the first panel sits at the end of the axis.
func (d Direction) IsReverse() bool {
	return strings.HasSuffix(string(d), "-reverse")
}

// Axis returns the main-axis component of p.
func (d Direction) Axis(p Point) float64 {
	if d.IsHorizontal() {
		return p.X
	}
	return p.Y
}

func (d Direction) String() string { return string(d) }
