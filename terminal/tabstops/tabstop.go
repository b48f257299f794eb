package tabstops

import (
	"github.com/bits-and-blooms/bitset"
)

// Default tabstop interval
const TABSTOP_INTERVAL = 8

// Tabstops tracks tabstop locations, one bit per column.
type Tabstops struct {
	cols  int
	stops *bitset.BitSet
}

// NewTabstops creates a new Tabstops for the given number of columns and interval.
func NewTabstops(cols int, interval int) *Tabstops {
	t := &Tabstops{
		cols:  cols,
		stops: bitset.New(uint(max(cols, 0))),
	}
	t.Reset(interval)
	return t
}

// Set sets the tabstop at a certain column (0-indexed). Columns outside
// the terminal are ignored.
func (t *Tabstops) Set(col int) {
	if col < 0 || col >= t.cols {
		return
	}
	t.stops.Set(uint(col))
}

// Unset unsets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Unset(col int) {
	if col < 0 || col >= t.cols {
		return
	}
	t.stops.Clear(uint(col))
}

// Get returns true if a tabstop is set at the given column.
func (t *Tabstops) Get(col int) bool {
	if col < 0 || col >= t.cols {
		return false
	}
	return t.stops.Test(uint(col))
}

// Next returns the first tabstop strictly right of col, or the last column
// when there is none.
func (t *Tabstops) Next(col int) int {
	if col+1 < t.cols {
		if next, ok := t.stops.NextSet(uint(max(col+1, 0))); ok && int(next) < t.cols {
			return int(next)
		}
	}
	return max(t.cols-1, 0)
}

// Prev returns the last tabstop strictly left of col, or column 0 when
// there is none.
func (t *Tabstops) Prev(col int) int {
	for i := min(col, t.cols) - 1; i > 0; i-- {
		if t.stops.Test(uint(i)) {
			return i
		}
	}
	return 0
}

// Reset unsets all tabstops and then sets initial tabstops at the given interval.
func (t *Tabstops) Reset(interval int) {
	t.stops.ClearAll()
	if interval > 0 {
		for i := interval; i < t.cols-1; i += interval {
			t.Set(i)
		}
	}
}
