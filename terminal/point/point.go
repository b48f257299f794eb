package point

import "fmt"

// The possible reference locations for a point. "(42, 80)" in the context
// of a terminal could mean multiple things, so every position type carries
// the space it lives in and they never convert into each other implicitly.
type Tag int

const (
	// Top-left is the first row currently shown. Y changes whenever the
	// display offset changes. This is the space the cursor lives in.
	TagViewport Tag = iota

	// Top-left is the first row ever stored in the buffer (the furthest
	// back in the scrollback). Each row is a physical, fixed-width row as
	// stored, some of them flagged as wrapped continuations.
	TagScreen

	// Same top-left as TagScreen, but Y counts logical lines instead of
	// physical rows and X indexes into the full, unwrapped content of the
	// logical line. X may exceed the terminal width.
	TagWraparound
)

func (t Tag) String() string {
	switch t {
	case TagViewport:
		return "viewport"
	case TagScreen:
		return "screen"
	case TagWraparound:
		return "wraparound"
	default:
		return "unknown"
	}
}

// Viewport is a position relative to the first visible row.
type Viewport struct {
	X, Y int
}

// Screen is a scroll-invariant buffer position: Y indexes a physically
// stored row, X a cell inside that fixed-width row.
type Screen struct {
	X, Y int
}

// Wraparound is a scroll-invariant, wraparound-invariant position: Y indexes
// a logical line, X a cell inside the logical line's full content.
type Wraparound struct {
	X, Y int
}

func (Viewport) Tag() Tag   { return TagViewport }
func (Screen) Tag() Tag     { return TagScreen }
func (Wraparound) Tag() Tag { return TagWraparound }

func (p Viewport) String() string   { return format(p.Tag(), p.X, p.Y) }
func (p Screen) String() string     { return format(p.Tag(), p.X, p.Y) }
func (p Wraparound) String() string { return format(p.Tag(), p.X, p.Y) }

func format(tag Tag, x, y int) string {
	return fmt.Sprintf("%s(%d, %d)", tag, x, y)
}
