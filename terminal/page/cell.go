package page

import (
	"strings"

	styleid "github.com/hnimtadd/termwrap/terminal/style/id"
)

// Cell is a single fixed-width slot of a row. The zero value is an unset
// cell: never written by the program, as opposed to a printed blank.
type Cell struct {
	// A single codepoint. Zero means the cell is unset.
	ContentCP uint32

	// The wide property of this cell, for wide characters. Characters in a
	// terminal grid can only be 1 or 2 cells wide. A wide character is always
	// next to a spacer.
	Wide Wide

	// The style ID to use for this cell within the style table. Zero
	// is always the default style so no lookup is required.
	StyleID styleid.ID
}

func (c Cell) Codepoint() uint32 {
	return c.ContentCP
}

// The width in grid cells that this cell takes up.
func (c Cell) Width() int {
	switch c.Wide {
	case WideNarrow, WideSpacerHead, WideSpacerTail:
		return 1
	case WideWide:
		return 2
	default:
		panic("unknown cell wide")
	}
}

// IsEmpty reports whether the cell is unset.
func (c Cell) IsEmpty() bool {
	return c.ContentCP == 0
}

// Returns true if this cell represents a cell with text to render.
//
// Spacer cells never have text: their content lives in the neighbouring
// wide cell.
func (c Cell) HasText() bool {
	return c.ContentCP != 0 && !c.Wide.IsSpacer()
}

// Returns true if the set of cells has text in it.
func HasTextAny(cells []Cell) bool {
	for _, cell := range cells {
		if cell.HasText() {
			return true
		}
	}
	return false
}

// CellsString renders cells as text. Spacer cells are skipped since their
// wide character already accounts for them, and unset cells between written
// ones become spaces.
func CellsString(cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, cell := range cells {
		switch {
		case cell.Wide.IsSpacer():
			continue
		case cell.IsEmpty():
			sb.WriteByte(' ')
		default:
			sb.WriteRune(rune(cell.ContentCP))
		}
	}
	return sb.String()
}
