package handler

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/hnimtadd/termwrap/terminal/core"
	"github.com/hnimtadd/termwrap/terminal/sequences/csi"
)

type (
	PrintHandler interface {
		// Print writes a single codepoint at the cursor position.
		Print(c uint32)
	}

	FormatEffectorHandler interface {
		// NextLine move cursor to the first position of next line, if the
		// cursor is at the bottom of the screen, a scroll up is performed.
		NextLine()
		// Index moves cursor downward one line without changing the
		// column position. If the active position is at the bottom of the
		// screen, a scroll up is performed.
		Index()
		// ReverseIndex moves cursor upward one line without changing the
		// column position. If the active position is at the top of the screen,
		// a scroll down is performed.
		ReverseIndex()
		// TabSet sets one horizontal stop at the active position.
		TabSet()
		// TabClear clears the stop at the active position or every stop.
		TabClear(mode csi.TBCMode)
		// FullReset resets all attributes to their defaults.
		FullReset()
	}

	SGRHandler interface {
		SetGraphicsRendition(params ansi.Params)
	}

	VT100Handler interface {
		// SetMode sets the mode to the given value.
		SetMode(mode core.Mode, value bool)
	}

	// EditorHandler interface includes all cursor movement and content
	// related methods. Counts and coordinates are as received on the wire:
	// positions are 1-based and a zero count means one.
	EditorHandler interface {
		// EraseInLine erases chars in line with behavior depends on mode
		EraseInLine(mode csi.ELMode)
		// EraseInDisplay erases chars in display with behavior depends on mode
		EraseInDisplay(mode csi.EDMode)
		// LineFeed moves cursor down one line, and to the first column when
		// the line feed mode is set.
		LineFeed()
		// Backspace moves cursor to the left one character position,
		// unless it is at the left margin, in which case no action occurs.
		Backspace()
		// SetCursorRow moves cursor to row
		SetCursorRow(row int)
		// SetCursorCol moves cursor to col
		SetCursorCol(col int)
		// SetCursorPos moves cursor to row and col
		SetCursorPos(row, col int)
		// SetCursorUp moves cursor up by offset, carriage controls whether
		// the cursor stays in same col position or moves to col 0
		SetCursorUp(offset int, carriage bool)
		// SetCursorDown moves cursor down by offset, carriage controls whether
		// the cursor stays in same col position or moves to col 0
		SetCursorDown(offset int, carriage bool)
		// SetCursorLeft moves cursor left by offset, unless it is at
		// the left margin, in which case no actions occurs
		SetCursorLeft(offset int)
		// SetCursorRight moves cursor right by offset, unless it is at
		// the right margin, in which case no actions occurs
		SetCursorRight(offset int)
		// SetCursorTabRight move cursor to the repeated next tab stop,
		// or to the right margin if no further tab stops are present
		// on the line.
		SetCursorTabRight(repeated int)
		// SetCursorTabLeft move cursor to the repeated previous tab stop,
		// or to the left margin if no further tab stops are present
		// on the line.
		SetCursorTabLeft(repeated int)
		// CarriageReturn moves cursor to left margin of the current line.
		CarriageReturn()
	}
)
