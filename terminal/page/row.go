package page

type Row struct {
	// The cells of the row, always exactly as many as the terminal has
	// columns.
	Cells []Cell

	// Whether the row soft-wraps into the next one.
	Wrap bool

	// Whether the row is a continuation of the previous row's logical line.
	WrapContinuation bool

	// True if any of the cells in this row was written with a non-default
	// style. This can have false positives but never a false negative: it
	// is set the first time a style is used and only cleared by Reset.
	Styled bool
}

// NewRow returns a row of cols unset cells.
func NewRow(cols int) *Row {
	return &Row{Cells: make([]Cell, cols)}
}

// IsWrapped reports whether this row continues the previous row's logical
// line.
func (r *Row) IsWrapped() bool {
	return r.WrapContinuation
}

// Clear unsets the cells in [start, end). The range is clamped to the row.
func (r *Row) Clear(start, end int) {
	start = max(start, 0)
	end = min(end, len(r.Cells))
	if start >= end {
		return
	}
	clear(r.Cells[start:end])
}

// Reset unsets every cell and drops the wrap flags.
func (r *Row) Reset() {
	clear(r.Cells)
	r.Wrap = false
	r.WrapContinuation = false
	r.Styled = false
}

// ContentLen returns the index just past the last set cell, zero for a row
// that was never written.
func (r *Row) ContentLen() int {
	for i := len(r.Cells) - 1; i >= 0; i-- {
		if !r.Cells[i].IsEmpty() {
			return i + 1
		}
	}
	return 0
}
