package wraparound

import (
	"iter"
	"strings"

	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/point"
)

// All yields every logical line of b in order together with the
// wraparound position of its first cell.
func All(b Lines) iter.Seq2[point.Wraparound, []page.Cell] {
	return func(yield func(point.Wraparound, []page.Cell) bool) {
		logicalRow := 0
		for row := 0; row < b.LineCount(); row++ {
			if isWrapped(b, row) {
				continue
			}
			cells, err := WrappedLine(b, point.Screen{Y: row})
			if err != nil {
				return
			}
			if !yield(point.Wraparound{Y: logicalRow}, cells) {
				return
			}
			logicalRow++
		}
	}
}

// Text returns the content of b with one logical line per text line.
// Trailing empty lines are dropped.
func Text(b Lines) string {
	var lines []string
	for _, cells := range All(b) {
		lines = append(lines, page.CellsString(cells))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
