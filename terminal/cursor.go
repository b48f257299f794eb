package terminal

import (
	"github.com/hnimtadd/termwrap/terminal/style"
	styleid "github.com/hnimtadd/termwrap/terminal/style/id"
)

// The cursor position and style.
type Cursor struct {
	// Column on the active screen, always within [0, cols).
	X int
	// Row on the active screen, always within [0, rows). The active screen
	// starts at YBase in the buffer.
	Y int

	// Set once a character was printed in the last column. The next
	// printable character wraps to the following row before it is written.
	PendingWrap bool

	// The current active style. This is the concrete style value that
	// should be kept up to date. The style ID to use for cell writing
	// is below.
	Style style.Style

	// The interned ID of Style, written into every printed cell.
	StyleID styleid.ID
}
