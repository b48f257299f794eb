package terminal

import (
	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/point"
)

// LineCount returns the number of stored rows, scrollback included.
func (t *Terminal) LineCount() int {
	return len(t.lines)
}

// Line returns the buffer row at index row, nil when out of range.
func (t *Terminal) Line(row int) *page.Row {
	if row < 0 || row >= len(t.lines) {
		return nil
	}
	return t.lines[row]
}

func (t *Terminal) Cols() int {
	return t.cols
}

// DisplayOffset is the buffer row shown at the top of the viewport.
func (t *Terminal) DisplayOffset() int {
	return t.yDisp
}

// EraseInBufferLine unsets the cells [start, end) of viewport row y.
func (t *Terminal) EraseInBufferLine(y, start, end int) {
	abs := t.yDisp + y
	row := t.Line(abs)
	if row == nil {
		t.logger.Warn("erase outside of buffer", "row", y, "offset", t.yDisp)
		return
	}
	row.Clear(start, end)
	t.markDirty(abs)
}

// CursorPoint returns the cursor relative to the viewport. A cursor waiting
// to wrap reports the column just past the last one.
func (t *Terminal) CursorPoint() point.Viewport {
	x := t.Cursor.X
	if t.Cursor.PendingWrap {
		x++
	}
	return point.Viewport{
		X: x,
		Y: t.YBase() + t.Cursor.Y - t.yDisp,
	}
}

// SetCursorPoint moves the cursor to a viewport position. The position is
// clamped to the active screen.
func (t *Terminal) SetCursorPoint(p point.Viewport) {
	t.Cursor.PendingWrap = false
	t.Cursor.Y = clamp(t.yDisp+p.Y-t.YBase(), 0, t.rows-1)
	t.Cursor.X = clamp(p.X, 0, t.cols-1)
}
