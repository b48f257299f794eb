package termwrap

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/termwrap/logger"
	terminalPkg "github.com/hnimtadd/termwrap/terminal"
	"github.com/hnimtadd/termwrap/terminal/core"
	"github.com/hnimtadd/termwrap/terminal/wraparound"
)

var (
	ErrUpdateInProgress = fmt.Errorf("termwrap: update already in progress")
	ErrClosed           = fmt.Errorf("termwrap: terminal io closed")
)

// TerminalIO hosts a terminal for a view. Output fed through it keeps the
// cursor off the right edge, and the view is told which rows to redraw.
//
// It is not safe for concurrent use: a single owner drives every call.
type TerminalIO struct {
	// The terminal emulator internal state. This is the abstract "terminal"
	// that manages input, grid updating, etc. and is renderer-agnostic. It
	// just stores internal state about a grid.
	terminal *terminalPkg.Terminal

	// Nesting depth of FeedPrepare calls. Refreshes are held back while it
	// is above zero.
	depth int

	// Set while DispatchUpdates runs its callback.
	updating bool

	closed bool

	onRefresh func(dirty []int)
	onScroll  func(yDisp, lineCount int)

	// Scroll state last reported through onScroll.
	yDisp, lineCount int

	logger logger.Logger
}

type Options struct {
	Rows, Cols int

	// Rows kept above the screen, see terminal.Options.
	MaxScrollback int

	// OnRefresh is called with the viewport rows to redraw, in ascending
	// order.
	OnRefresh func(dirty []int)

	// OnScroll is called when the display offset or the number of stored
	// rows changed, so a scroller can follow.
	OnScroll func(yDisp, lineCount int)

	Logger logger.Logger
}

// Initialize the termio state.
func NewTerminalIO(opts Options) *TerminalIO {
	log := logger.OrDefault(opts.Logger)

	// Create a new terminal instance
	term := terminalPkg.NewTerminal(
		terminalPkg.Options{
			Rows:          opts.Rows,
			Cols:          opts.Cols,
			MaxScrollback: opts.MaxScrollback,
			Modes:         core.ModePacked,
			Logger:        log,
		},
	)
	return &TerminalIO{
		terminal:  term,
		onRefresh: opts.OnRefresh,
		onScroll:  opts.OnScroll,
		yDisp:     term.DisplayOffset(),
		lineCount: term.LineCount(),
		logger:    log,
	}
}

// Terminal returns the hosted terminal. Changes made through it outside of
// DispatchUpdates are only shown on the next refresh.
func (t *TerminalIO) Terminal() *terminalPkg.Terminal {
	return t.terminal
}

// proces output from the pty. This is the manual API that users can call
// with pty data
func (t *TerminalIO) ProcessOutput(buf []byte) (err error) {
	if t.closed {
		return ErrClosed
	}
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic in ProcessOutput",
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic in ProcessOutput: %v", r)
		}
	}()

	repaired, err := wraparound.Feed(t.terminal, buf)
	if err != nil {
		return fmt.Errorf("process output: %w", err)
	}
	if repaired {
		t.logger.Debug("moved cursor off the right edge",
			"cursor", wraparound.CursorPosition(t.terminal))
	}
	if t.depth == 0 {
		t.refresh(false)
	}
	return nil
}

// Write implements io.Writer on top of ProcessOutput.
func (t *TerminalIO) Write(p []byte) (n int, err error) {
	if err := t.ProcessOutput(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// FeedPrepare holds back refreshes until the matching FeedFinish. Calls
// nest.
func (t *TerminalIO) FeedPrepare() {
	t.depth++
}

// FeedFinish ends a FeedPrepare. The outermost one redraws every row
// changed since FeedPrepare with a single refresh.
func (t *TerminalIO) FeedFinish() {
	if t.depth == 0 {
		t.logger.Warn("FeedFinish without FeedPrepare")
		return
	}
	t.depth--
	if t.depth == 0 {
		t.refresh(true)
	}
}

// DispatchUpdates runs fn between FeedPrepare and FeedFinish so its changes
// reach the view as one refresh. FeedFinish runs even if fn panics; the
// panic is passed on afterwards.
//
// fn must not call DispatchUpdates again: the nested call returns
// ErrUpdateInProgress without running.
func (t *TerminalIO) DispatchUpdates(fn func(term *terminalPkg.Terminal)) error {
	if t.updating {
		return ErrUpdateInProgress
	}
	t.updating = true
	t.FeedPrepare()
	defer func() {
		t.updating = false
		t.FeedFinish()
	}()

	fn(t.terminal)
	return nil
}

// ResetToInitialState fully resets the terminal, scrollback included, and
// brings the scroller back in line.
func (t *TerminalIO) ResetToInitialState() {
	t.terminal.FullReset()
	if t.depth == 0 {
		t.refresh(true)
	}
	t.UpdateScroller()
}

// UpdateScroller reports the current scroll state to OnScroll.
func (t *TerminalIO) UpdateScroller() {
	t.yDisp = t.terminal.DisplayOffset()
	t.lineCount = t.terminal.LineCount()
	if t.onScroll != nil {
		t.onScroll(t.yDisp, t.lineCount)
	}
}

// ScrollDisplay moves the viewport by delta rows, negative values moving
// into the scrollback.
func (t *TerminalIO) ScrollDisplay(delta int) {
	t.terminal.ScrollDisplay(delta)
	if t.depth == 0 {
		t.refresh(false)
	}
}

func (t *TerminalIO) refresh(force bool) {
	dirty := t.terminal.DirtyRows()
	t.terminal.ClearDirty()
	if (force || len(dirty) > 0) && t.onRefresh != nil {
		t.onRefresh(dirty)
	}
	if t.terminal.DisplayOffset() != t.yDisp || t.terminal.LineCount() != t.lineCount {
		t.UpdateScroller()
	}
}

// Text returns the buffer content with one logical line per text line.
func (t *TerminalIO) Text() string {
	return wraparound.Text(t.terminal)
}

// DumpString returns the active screen as it is laid out.
func (t *TerminalIO) DumpString() string {
	return t.terminal.PlainString()
}

// Close stops the terminal io. Output processed afterwards is rejected.
func (t *TerminalIO) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	t.onRefresh = nil
	t.onScroll = nil
	return nil
}
