package ast

import (
	"fmt"
	"go/token"
)

// Positioner allows finding the location in the original expression text.
// The easiest way to be a Positioner is to embed a Range
type Positioner interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// Range represents a range of positions in the expression text.
// Positions are zero-based byte offsets.
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

// Pos returns the starting position of the range.
func (r Range) Pos() token.Pos { return r.PosStart }

// End returns the ending position of the range.
func (r Range) End() token.Pos { return r.PosEnd }

// String returns a string representation of the range.
func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%d", r.PosStart)
	}
	return fmt.Sprintf("%d..%d", r.PosStart, r.PosEnd)
}

// RangeOf returns the Range spanned by a node.
func RangeOf(p Positioner) Range {
	return Range{PosStart: p.Pos(), PosEnd: p.End()}
}
