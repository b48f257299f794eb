// Package wraparound reads, erases and addresses logical lines of a
// scrollback buffer.
//
// A logical line is a row that is not wrapped followed by every wrapped row
// after it. Buffer positions (point.Screen) address stored rows; wraparound
// positions (point.Wraparound) address logical lines as if each were laid
// out on a single row of unbounded width, so they survive a change of width.
package wraparound

import (
	"fmt"

	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/point"
)

// ErrOutOfRange is returned for a start position outside the buffer.
var ErrOutOfRange = fmt.Errorf("wraparound: position out of range")

type (
	// Lines is read access to the rows of a buffer, scrollback included.
	Lines interface {
		LineCount() int
		// Line returns the row at index row. Callers only ask for rows in
		// [0, LineCount).
		Line(row int) *page.Row
		Cols() int
	}

	// Eraser is a buffer whose cells can be unset.
	Eraser interface {
		Lines
		// DisplayOffset is the buffer row at the top of the viewport.
		DisplayOffset() int
		// EraseInBufferLine unsets cells [start, end) of the row y rows below
		// the top of the viewport. y may fall outside the viewport.
		EraseInBufferLine(y, start, end int)
	}

	// Terminal is a buffer with a cursor that output can be fed through.
	Terminal interface {
		Eraser
		// The cursor relative to the top of the viewport.
		CursorPoint() point.Viewport
		SetCursorPoint(p point.Viewport)
		Feed(data []byte)
		FeedText(text string)
	}
)

func checkStart(b Lines, start point.Screen) error {
	if start.Y < 0 || start.Y >= b.LineCount() || start.X < 0 || start.X > b.Cols() {
		return fmt.Errorf("%w: %s of %d rows", ErrOutOfRange, start, b.LineCount())
	}
	return nil
}

// isWrapped reports whether row continues the logical line of the row
// before it. Row 0 never does.
func isWrapped(b Lines, row int) bool {
	return row > 0 && b.Line(row).IsWrapped()
}

// WrappedLine returns the cells of the logical line from start onwards: the
// rest of the start row followed by every wrapped row after it. Unset cells
// at the end are dropped, unset cells in between are kept.
//
// start.X may equal the width, in which case only the following wrapped
// rows contribute. The result never aliases the buffer.
func WrappedLine(b Lines, start point.Screen) ([]page.Cell, error) {
	if err := checkStart(b, start); err != nil {
		return nil, err
	}

	var cells []page.Cell
	cells = append(cells, b.Line(start.Y).Cells[start.X:]...)
	for row := start.Y + 1; row < b.LineCount() && isWrapped(b, row); row++ {
		cells = append(cells, b.Line(row).Cells...)
	}

	end := len(cells)
	for end > 0 && cells[end-1].IsEmpty() {
		end--
	}
	return cells[:end], nil
}

// EraseWrappedLine unsets the logical line from start onwards: the rest of
// the start row and all of every wrapped row after it. Wrap flags are left
// as they are.
func EraseWrappedLine(b Eraser, start point.Screen) error {
	if err := checkStart(b, start); err != nil {
		return err
	}

	cols := b.Cols()
	offset := b.DisplayOffset()
	b.EraseInBufferLine(start.Y-offset, start.X, cols)
	for row := start.Y + 1; row < b.LineCount() && isWrapped(b, row); row++ {
		b.EraseInBufferLine(row-offset, 0, cols)
	}
	return nil
}
