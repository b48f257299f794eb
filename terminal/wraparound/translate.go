package wraparound

import (
	"github.com/hnimtadd/termwrap/terminal/point"
)

// ToWraparound converts a buffer position to a wraparound position. The
// second result is false when p.Y is not a stored row.
func ToWraparound(b Lines, p point.Screen) (point.Wraparound, bool) {
	if p.Y == 0 {
		return point.Wraparound{X: p.X, Y: 0}, true
	}
	if p.Y < 0 || p.Y >= b.LineCount() {
		return point.Wraparound{}, false
	}

	logicalRow, wrappedRun := 0, 0
	for row := 1; row <= p.Y; row++ {
		if b.Line(row).IsWrapped() {
			wrappedRun++
			continue
		}
		logicalRow++
		wrappedRun = 0
	}
	return point.Wraparound{X: p.X + wrappedRun*b.Cols(), Y: logicalRow}, true
}

// ToScreen converts a wraparound position back to a buffer position. The
// second result is false when the logical line does not exist or is not
// long enough to reach p.X.
func ToScreen(b Lines, p point.Wraparound) (point.Screen, bool) {
	cols := b.Cols()
	if p.X < 0 || p.Y < 0 || cols <= 0 {
		return point.Screen{}, false
	}

	count := b.LineCount()
	logicalRow := 0
	for row := range count {
		if row > 0 && !b.Line(row).IsWrapped() {
			logicalRow++
		}
		if logicalRow < p.Y {
			continue
		}
		if logicalRow > p.Y {
			break
		}

		extraRows := p.X / cols
		target := row + extraRows
		if target >= count {
			return point.Screen{}, false
		}
		// Every row up to the target must belong to the same line.
		for r := row + 1; r <= target; r++ {
			if !b.Line(r).IsWrapped() {
				return point.Screen{}, false
			}
		}
		return point.Screen{X: p.X % cols, Y: target}, true
	}
	return point.Screen{}, false
}

// LogicalLineStart returns the row that starts the logical line row belongs
// to.
func LogicalLineStart(b Lines, row int) (int, bool) {
	if row < 0 || row >= b.LineCount() {
		return 0, false
	}
	for isWrapped(b, row) {
		row--
	}
	return row, true
}
