package wraparound

import (
	"github.com/hnimtadd/termwrap/terminal/point"
)

// CursorPosition returns the cursor as a buffer position.
func CursorPosition(t Terminal) point.Screen {
	c := t.CursorPoint()
	return point.Screen{X: c.X, Y: t.DisplayOffset() + c.Y}
}

// SetCursorPosition moves the cursor to a buffer position.
func SetCursorPosition(t Terminal, p point.Screen) {
	t.SetCursorPoint(point.Viewport{X: p.X, Y: p.Y - t.DisplayOffset()})
}

// Feed writes data to t and makes sure the cursor does not stay past the
// last column afterwards.
//
// A terminal that fills a row up to the edge leaves the cursor there until
// the next character decides whether the row wraps. Feed forces the wrap
// with a space, then clears that space and any stale continuation rows and
// puts the cursor at the start of the new row. repaired reports whether
// that happened.
func Feed(t Terminal, data []byte) (repaired bool, err error) {
	t.Feed(data)

	before := CursorPosition(t)
	if before.X < t.Cols() {
		return false, nil
	}

	t.FeedText(" ")
	start := point.Screen{X: 0, Y: CursorPosition(t).Y}
	if start.Y <= before.Y {
		// The space did not wrap, so start is the row just written.
		return false, nil
	}
	if err := EraseWrappedLine(t, start); err != nil {
		return false, err
	}
	SetCursorPosition(t, start)
	return true, nil
}
