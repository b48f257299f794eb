package wraparound

import (
	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/point"
)

// fakeBuffer is a buffer built from row strings. In a row string '.' is an
// unset cell.
type fakeBuffer struct {
	rows   []*page.Row
	cols   int
	yDisp  int
	cursor point.Viewport
	// wraps makes FeedText move the cursor to the next row, as a
	// terminal with a pending wrap does.
	wraps bool

	erased []erasure
	fed    []string
}

type erasure struct {
	y, start, end int
}

type fakeRow struct {
	text    string
	wrapped bool
}

func line(text string) fakeRow {
	return fakeRow{text: text}
}

func wrapped(text string) fakeRow {
	return fakeRow{text: text, wrapped: true}
}

func newFakeBuffer(cols int, rows ...fakeRow) *fakeBuffer {
	b := &fakeBuffer{cols: cols}
	for _, r := range rows {
		row := page.NewRow(cols)
		for i, c := range []rune(r.text) {
			if c != '.' {
				row.Cells[i].ContentCP = uint32(c)
			}
		}
		row.WrapContinuation = r.wrapped
		b.rows = append(b.rows, row)
	}
	for i := 1; i < len(b.rows); i++ {
		b.rows[i-1].Wrap = b.rows[i].WrapContinuation
	}
	return b
}

func (b *fakeBuffer) LineCount() int         { return len(b.rows) }
func (b *fakeBuffer) Line(row int) *page.Row { return b.rows[row] }
func (b *fakeBuffer) Cols() int              { return b.cols }
func (b *fakeBuffer) DisplayOffset() int     { return b.yDisp }

func (b *fakeBuffer) EraseInBufferLine(y, start, end int) {
	b.erased = append(b.erased, erasure{y: y, start: start, end: end})
	b.rows[b.yDisp+y].Clear(start, end)
}

func (b *fakeBuffer) CursorPoint() point.Viewport     { return b.cursor }
func (b *fakeBuffer) SetCursorPoint(p point.Viewport) { b.cursor = p }
func (b *fakeBuffer) Feed(data []byte)                { b.fed = append(b.fed, string(data)) }

func (b *fakeBuffer) FeedText(text string) {
	b.fed = append(b.fed, text)
	if b.wraps {
		b.cursor = point.Viewport{X: len(text), Y: b.cursor.Y + 1}
	}
}

// rowText renders a row the way rows are written for newFakeBuffer.
func rowText(row *page.Row) string {
	out := make([]rune, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = '.'
		if !cell.IsEmpty() {
			out[i] = rune(cell.ContentCP)
		}
	}
	return string(out)
}

func cellsText(cells []page.Cell) string {
	return rowText(&page.Row{Cells: cells})
}
