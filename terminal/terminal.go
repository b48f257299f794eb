package terminal

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/charmbracelet/x/ansi"
	"github.com/hnimtadd/termwrap/logger"
	"github.com/hnimtadd/termwrap/terminal/core"
	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/sequences/csi"
	"github.com/hnimtadd/termwrap/terminal/stream"
	"github.com/hnimtadd/termwrap/terminal/style"
	"github.com/hnimtadd/termwrap/terminal/tabstops"
	"github.com/hnimtadd/termwrap/terminal/utils"
	dw "github.com/mattn/go-runewidth"
)

const (
	DefaultCols          = 80
	DefaultRows          = 24
	DefaultMaxScrollback = 10000
)

type (
	Options struct {
		Cols int // The number of columns in the terminal
		Rows int // The number of rows in the terminal

		// How many rows are kept above the active screen once they scroll
		// off. Zero selects DefaultMaxScrollback, a negative value keeps
		// none.
		MaxScrollback int

		// The default mode state. When the terminal gets a reset, it will
		// revert back to this state. Nil selects core.ModePacked.
		Modes map[core.Mode]bool

		Logger logger.Logger
	}

	// Terminal is a grid of rows with scrollback. The buffer holds every
	// stored row, oldest first; the active screen is its last rows entries
	// and the viewport is the rows entries starting at the display offset.
	Terminal struct {
		lines []*page.Row

		// The size of the terminal
		rows, cols int

		maxScrollback int

		// Buffer row shown at the top of the viewport.
		yDisp int

		Cursor Cursor
		Modes  *core.ModeState

		styles *style.Table

		// Where the tabstops are.
		tabstops *tabstops.Tabstops

		// Viewport rows changed since the last ClearDirty.
		dirty *bitset.BitSet

		stream *stream.Stream

		logger logger.Logger
	}
)

func NewTerminal(opts Options) *Terminal {
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	switch {
	case opts.MaxScrollback == 0:
		opts.MaxScrollback = DefaultMaxScrollback
	case opts.MaxScrollback < 0:
		opts.MaxScrollback = 0
	}
	if opts.Modes == nil {
		opts.Modes = core.ModePacked
	}

	t := &Terminal{
		rows:          opts.Rows,
		cols:          opts.Cols,
		maxScrollback: opts.MaxScrollback,
		Modes:         core.NewModeState(opts.Modes, opts.Modes),
		styles:        style.NewTable(),
		tabstops: tabstops.NewTabstops(
			opts.Cols,
			tabstops.TABSTOP_INTERVAL,
		),
		dirty:  bitset.New(uint(opts.Rows)),
		logger: logger.OrDefault(opts.Logger),
	}
	t.lines = t.blankScreen()
	t.stream = stream.NewStream(t, t.logger)
	return t
}

func (t *Terminal) blankScreen() []*page.Row {
	lines := make([]*page.Row, t.rows)
	for i := range lines {
		lines[i] = page.NewRow(t.cols)
	}
	return lines
}

// Feed parses data and applies it to the grid. Escape sequences and UTF-8
// codepoints split across calls are completed by the next call.
func (t *Terminal) Feed(data []byte) {
	t.stream.NextSlice(data)
}

// FeedText writes text as a whole. It does not complete an escape sequence
// or codepoint left unfinished by Feed; that one continues with the next
// Feed call.
func (t *Terminal) FeedText(text string) {
	t.stream.Interject([]byte(text))
}

// YBase is the buffer row of the top of the active screen.
func (t *Terminal) YBase() int {
	return len(t.lines) - t.rows
}

func (t *Terminal) Rows() int {
	return t.rows
}

// Style returns the style a cell was written with.
func (t *Terminal) Style(cell page.Cell) style.Style {
	return t.styles.Get(cell.StyleID)
}

func (t *Terminal) activeRow(y int) *page.Row {
	return t.lines[t.YBase()+y]
}

func (t *Terminal) cursorRow() *page.Row {
	return t.activeRow(t.Cursor.Y)
}

// Print writes c at the cursor and advances it.
func (t *Terminal) Print(c uint32) {
	width := 1
	if c > 0xFF {
		width = dw.RuneWidth(rune(c))
	}
	if width == 0 {
		// Zero width characters (combining marks, ZWJ, ...) are dropped
		// since cells hold a single codepoint.
		t.logger.Debug("dropping zero width character", "codepoint", c)
		return
	}
	width = min(width, 2)

	wraparound := t.Modes.Get(core.ModeWraparound)
	if t.Cursor.PendingWrap {
		// The mode may have been turned off after the wrap became pending.
		if wraparound {
			t.printWrap()
		} else {
			t.Cursor.PendingWrap = false
		}
	}

	if t.Modes.Get(core.ModeInsert) && t.Cursor.X+width < t.cols {
		t.InsertBlanks(width)
	}

	switch {
	case width == 1 || t.cols < 2:
		t.printCell(c, page.WideNarrow)

	default:
		if t.Cursor.X == t.cols-1 {
			// A wide character never straddles two rows. Without
			// wraparound there is no room for it at all.
			if !wraparound {
				return
			}
			t.printCell(0, page.WideSpacerHead)
			t.printWrap()
		}
		t.printCell(c, page.WideWide)
		t.Cursor.X++
		t.printCell(0, page.WideSpacerTail)
	}

	if t.Cursor.X == t.cols-1 {
		t.Cursor.PendingWrap = wraparound
		return
	}
	t.Cursor.X++
}

// printWrap soft wraps the cursor row into the next one.
func (t *Terminal) printWrap() {
	t.cursorRow().Wrap = true
	t.markDirty(t.YBase() + t.Cursor.Y)
	t.Index()
	t.Cursor.X = 0
	t.cursorRow().WrapContinuation = true
	t.markDirty(t.YBase() + t.Cursor.Y)
}

func (t *Terminal) printCell(c uint32, wide page.Wide) {
	row := t.cursorRow()
	x := t.Cursor.X

	// Overwriting half of a wide character leaves the other half orphaned.
	switch row.Cells[x].Wide {
	case page.WideWide:
		if wide != page.WideWide && x+1 < t.cols {
			row.Cells[x+1] = page.Cell{}
		}
	case page.WideSpacerTail:
		if x > 0 {
			row.Cells[x-1] = page.Cell{}
		}
	}

	row.Cells[x] = page.Cell{
		ContentCP: c,
		Wide:      wide,
		StyleID:   t.Cursor.StyleID,
	}
	if t.Cursor.StyleID != 0 {
		row.Styled = true
	}
	t.markDirty(t.YBase() + t.Cursor.Y)
}

// InsertBlanks shifts the cells from the cursor to the right by count,
// dropping whatever falls off the edge, and unsets the gap.
func (t *Terminal) InsertBlanks(count int) {
	row := t.cursorRow()
	x := t.Cursor.X
	count = min(count, t.cols-x)
	copy(row.Cells[x+count:], row.Cells[x:t.cols-count])
	row.Clear(x, x+count)
	t.markDirty(t.YBase() + t.Cursor.Y)
}

// Backspace moves the cursor back a column (but not less than 0).
func (t *Terminal) Backspace() {
	t.SetCursorLeft(1)
}

// CarriageReturn moves cursor to first column of current line
func (t *Terminal) CarriageReturn() {
	// Always reset pending wrap state
	t.Cursor.PendingWrap = false
	t.Cursor.X = 0
}

func (t *Terminal) LineFeed() {
	t.Index()
	if t.Modes.Get(core.ModeLineFeed) {
		t.CarriageReturn()
	}
}

// Index moves the cursor down one row, scrolling the active screen up into
// the scrollback when the cursor is on the bottom row.
func (t *Terminal) Index() {
	t.Cursor.PendingWrap = false
	if t.Cursor.Y < t.rows-1 {
		t.Cursor.Y++
		return
	}
	t.scrollUp()
}

func (t *Terminal) scrollUp() {
	following := t.yDisp == t.YBase()
	t.lines = append(t.lines, page.NewRow(t.cols))

	evicted := 0
	for len(t.lines) > t.rows+t.maxScrollback {
		t.lines[0] = nil
		t.lines = t.lines[1:]
		evicted++
	}
	if evicted > 0 {
		// The oldest row may have been the middle of a logical line whose
		// head is gone. It starts a logical line of its own now.
		t.lines[0].WrapContinuation = false
	}

	if following {
		t.yDisp = t.YBase()
	} else {
		t.yDisp = max(t.yDisp-evicted, 0)
	}
	t.markAllDirty()
}

// ReverseIndex moves the cursor up one row, scrolling the active screen down
// when the cursor is on the top row. The bottom row is dropped.
func (t *Terminal) ReverseIndex() {
	t.Cursor.PendingWrap = false
	if t.Cursor.Y > 0 {
		t.Cursor.Y--
		return
	}

	base := t.YBase()
	copy(t.lines[base+1:], t.lines[base:len(t.lines)-1])
	t.lines[base] = page.NewRow(t.cols)
	if t.rows > 1 {
		t.lines[base+1].WrapContinuation = false
	}
	if base > 0 {
		t.lines[base-1].Wrap = false
	}
	t.lines[len(t.lines)-1].Wrap = false
	t.markAllDirty()
}

func (t *Terminal) NextLine() {
	t.Index()
	t.CarriageReturn()
}

func (t *Terminal) TabSet() {
	t.tabstops.Set(t.Cursor.X)
}

func (t *Terminal) TabClear(mode csi.TBCMode) {
	switch mode {
	case csi.TBCModeCurrent:
		t.tabstops.Unset(t.Cursor.X)
	case csi.TBCModeAll:
		t.tabstops.Reset(0)
	default:
		t.logger.Warn("unimplemented tab clear", "mode", mode)
	}
}

// SetCursorPos moves the cursor to the 1-based row and col of the active
// screen, clamped to its bounds.
func (t *Terminal) SetCursorPos(row, col int) {
	t.Cursor.PendingWrap = false
	t.Cursor.Y = clamp(row-1, 0, t.rows-1)
	t.Cursor.X = clamp(col-1, 0, t.cols-1)
}

func (t *Terminal) SetCursorRow(row int) {
	t.SetCursorPos(row, t.Cursor.X+1)
}

func (t *Terminal) SetCursorCol(col int) {
	t.SetCursorPos(t.Cursor.Y+1, col)
}

func (t *Terminal) SetCursorUp(offset int, carriage bool) {
	t.Cursor.PendingWrap = false
	t.Cursor.Y = max(t.Cursor.Y-max(offset, 1), 0)
	if carriage {
		t.Cursor.X = 0
	}
}

func (t *Terminal) SetCursorDown(offset int, carriage bool) {
	t.Cursor.PendingWrap = false
	t.Cursor.Y = min(t.Cursor.Y+max(offset, 1), t.rows-1)
	if carriage {
		t.Cursor.X = 0
	}
}

func (t *Terminal) SetCursorLeft(offset int) {
	t.Cursor.PendingWrap = false
	t.Cursor.X = max(t.Cursor.X-max(offset, 1), 0)
}

func (t *Terminal) SetCursorRight(offset int) {
	t.Cursor.PendingWrap = false
	t.Cursor.X = min(t.Cursor.X+max(offset, 1), t.cols-1)
}

func (t *Terminal) SetCursorTabRight(repeated int) {
	t.Cursor.PendingWrap = false
	for range max(repeated, 1) {
		t.Cursor.X = t.tabstops.Next(t.Cursor.X)
	}
}

func (t *Terminal) SetCursorTabLeft(repeated int) {
	t.Cursor.PendingWrap = false
	for range max(repeated, 1) {
		t.Cursor.X = t.tabstops.Prev(t.Cursor.X)
	}
}

// EraseInLine implements handler.EditorHandler.
func (t *Terminal) EraseInLine(mode csi.ELMode) {
	row := t.cursorRow()
	// Get our start/end positions depending on the mode.
	var start, end int
	switch mode {
	case csi.ELModeRight:
		start = t.Cursor.X

		// If our X is a wide spacer tail, then we need to erase the previous
		// cell too, as we don't want to split a multi-cell character.
		if start > 0 && row.Cells[start].Wide == page.WideSpacerTail {
			start--
		}
		end = t.cols
		// Nothing is left to continue onto the next row.
		row.Wrap = false
	case csi.ELModeLeft:
		start = 0
		end = t.Cursor.X + 1

		// Same as above, a wide character under the cursor goes as a whole.
		if end < t.cols && row.Cells[end-1].Wide == page.WideWide {
			end++
		}
	case csi.ELModeAll:
		start = 0
		end = t.cols
		row.Wrap = false
	default:
		t.logger.Warn("unimplemented erase line", "mode", mode)
		return
	}

	t.Cursor.PendingWrap = false
	row.Clear(start, end)
	t.markDirty(t.YBase() + t.Cursor.Y)
}

func (t *Terminal) EraseInDisplay(mode csi.EDMode) {
	base := t.YBase()
	switch mode {
	case csi.EDModeComplete:
		// Delete all lines in the screen
		for y := range t.rows {
			t.activeRow(y).Reset()
		}
		if base > 0 {
			t.lines[base-1].Wrap = false
		}
		t.Cursor.PendingWrap = false
		t.markAllDirty()

	case csi.EDModeBelow:
		// All lines to the right (including the cursor)
		t.EraseInLine(csi.ELModeRight)

		// All lines below
		for y := t.Cursor.Y + 1; y < t.rows; y++ {
			t.activeRow(y).Reset()
		}
		t.markAllDirty()
		utils.Assert(!t.Cursor.PendingWrap)

	case csi.EDModeAbove:
		// All lines to the left (including the cursor)
		t.EraseInLine(csi.ELModeLeft)

		// Erase all line above
		for y := range t.Cursor.Y {
			t.activeRow(y).Reset()
		}
		if t.Cursor.Y > 0 {
			t.cursorRow().WrapContinuation = false
		}
		if base > 0 {
			t.lines[base-1].Wrap = false
		}
		t.markAllDirty()
		utils.Assert(!t.Cursor.PendingWrap)

	case csi.EDModeScrollback:
		if base == 0 {
			return
		}
		clear(t.lines[:base])
		t.lines = t.lines[base:]
		t.lines[0].WrapContinuation = false
		t.yDisp = 0
		t.markAllDirty()

	default:
		t.logger.Warn("unimplemented erase display", "mode", mode)
	}
}

func (t *Terminal) SetGraphicsRendition(params ansi.Params) {
	if unknown := t.Cursor.Style.Apply(params); len(unknown) > 0 {
		t.logger.Debug("unknown graphics rendition", "params", unknown)
	}
	t.Cursor.StyleID = t.styles.Intern(t.Cursor.Style)
}

func (t *Terminal) SetMode(mode core.Mode, value bool) {
	t.Modes.Set(mode, value)
	if mode == core.ModeWraparound && !value {
		t.Cursor.PendingWrap = false
	}
}

// FullReset drops every row, the scrollback included, and returns modes,
// tabstops, styles and the cursor to their initial state.
func (t *Terminal) FullReset() {
	t.lines = t.blankScreen()
	t.yDisp = 0
	t.Cursor = Cursor{}
	t.Modes.Reset()
	t.styles = style.NewTable()
	t.tabstops.Reset(tabstops.TABSTOP_INTERVAL)
	t.stream.Reset()
	t.markAllDirty()
}

// ScrollDisplay moves the viewport by delta rows, negative values moving up
// into the scrollback. The offset is clamped to [0, YBase].
func (t *Terminal) ScrollDisplay(delta int) {
	yDisp := clamp(t.yDisp+delta, 0, t.YBase())
	if yDisp == t.yDisp {
		return
	}
	t.yDisp = yDisp
	t.markAllDirty()
}

// ScrollToBottom shows the active screen in the viewport.
func (t *Terminal) ScrollToBottom() {
	t.ScrollDisplay(t.YBase() - t.yDisp)
}

// markDirty flags the viewport row showing buffer row abs, if any.
func (t *Terminal) markDirty(abs int) {
	y := abs - t.yDisp
	if y < 0 || y >= t.rows {
		return
	}
	t.dirty.Set(uint(y))
}

func (t *Terminal) markAllDirty() {
	for y := range t.rows {
		t.dirty.Set(uint(y))
	}
}

func (t *Terminal) isDirty(y int) bool {
	return t.dirty.Test(uint(y))
}

// DirtyRows returns the viewport rows changed since the last ClearDirty, in
// ascending order.
func (t *Terminal) DirtyRows() []int {
	rows := make([]int, 0, t.dirty.Count())
	for i, ok := t.dirty.NextSet(0); ok; i, ok = t.dirty.NextSet(i + 1) {
		rows = append(rows, int(i))
	}
	return rows
}

func (t *Terminal) ClearDirty() {
	t.dirty.ClearAll()
}

// PlainString dumps the active screen as text, one line per row with
// trailing unset cells and trailing empty rows removed.
func (t *Terminal) PlainString() string {
	lines := make([]string, t.rows)
	for y := range t.rows {
		row := t.activeRow(y)
		lines[y] = page.CellsString(row.Cells[:row.ContentLen()])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
