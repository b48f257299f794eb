package wraparound

import (
	"testing"

	"github.com/hnimtadd/termwrap/terminal/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWraparound_RowZeroIdentity(t *testing.T) {
	b := threeRowLine()
	for _, col := range []int{0, 1, 3, 4, 17} {
		got, ok := ToWraparound(b, point.Screen{X: col, Y: 0})
		require.True(t, ok)
		assert.Equal(t, point.Wraparound{X: col, Y: 0}, got)
	}
}

func TestToWraparound(t *testing.T) {
	tests := []struct {
		in   point.Screen
		want point.Wraparound
	}{
		{in: point.Screen{X: 2, Y: 1}, want: point.Wraparound{X: 2, Y: 1}},
		{in: point.Screen{X: 2, Y: 2}, want: point.Wraparound{X: 6, Y: 1}},
		{in: point.Screen{X: 1, Y: 3}, want: point.Wraparound{X: 9, Y: 1}},
		{in: point.Screen{X: 3, Y: 4}, want: point.Wraparound{X: 3, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := ToWraparound(threeRowLine(), tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToWraparound_OutOfRange(t *testing.T) {
	b := threeRowLine()

	_, ok := ToWraparound(b, point.Screen{X: 0, Y: -1})
	assert.False(t, ok)
	_, ok = ToWraparound(b, point.Screen{X: 0, Y: b.LineCount()})
	assert.False(t, ok)
}

func TestToScreen(t *testing.T) {
	tests := []struct {
		in   point.Wraparound
		want point.Screen
	}{
		{in: point.Wraparound{X: 3, Y: 0}, want: point.Screen{X: 3, Y: 0}},
		{in: point.Wraparound{X: 2, Y: 1}, want: point.Screen{X: 2, Y: 1}},
		{in: point.Wraparound{X: 6, Y: 1}, want: point.Screen{X: 2, Y: 2}},
		{in: point.Wraparound{X: 9, Y: 1}, want: point.Screen{X: 1, Y: 3}},
		{in: point.Wraparound{X: 0, Y: 2}, want: point.Screen{X: 0, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got, ok := ToScreen(threeRowLine(), tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToScreen_NoMapping(t *testing.T) {
	tests := []struct {
		name string
		in   point.Wraparound
	}{
		{name: "past the wrapped extent", in: point.Wraparound{X: 12, Y: 1}},
		{name: "single row line", in: point.Wraparound{X: 4, Y: 0}},
		{name: "past the buffer", in: point.Wraparound{X: 4, Y: 2}},
		{name: "missing logical row", in: point.Wraparound{X: 0, Y: 3}},
		{name: "negative column", in: point.Wraparound{X: -1, Y: 1}},
		{name: "negative row", in: point.Wraparound{X: 0, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ToScreen(threeRowLine(), tt.in)
			assert.False(t, ok)
		})
	}
}

func TestToScreen_DoesNotReachIntoTheNextLine(t *testing.T) {
	// Row 2 is wrapped but continues row 1, not row 0.
	b := newFakeBuffer(4, line("AAAA"), line("BBBB"), wrapped("CCCC"))

	_, ok := ToScreen(b, point.Wraparound{X: 8, Y: 0})
	assert.False(t, ok)

	got, ok := ToScreen(b, point.Wraparound{X: 5, Y: 1})
	require.True(t, ok)
	assert.Equal(t, point.Screen{X: 1, Y: 2}, got)
}

func TestTranslator_RoundTrip(t *testing.T) {
	b := newFakeBuffer(3,
		line("abc"),
		wrapped("def"),
		line("g.."),
		line("hij"),
		wrapped("klm"),
		wrapped("n.."),
		line("..."),
		wrapped("..."),
	)

	for row := range b.LineCount() {
		for col := range b.Cols() {
			p := point.Screen{X: col, Y: row}
			inv, ok := ToWraparound(b, p)
			require.True(t, ok, p.String())

			back, ok := ToScreen(b, inv)
			require.True(t, ok, inv.String())
			assert.Equal(t, p, back)
		}
	}
}

func TestLogicalLineStart(t *testing.T) {
	b := threeRowLine()

	for row, want := range []int{0, 1, 1, 1, 4} {
		got, ok := LogicalLineStart(b, row)
		require.True(t, ok)
		assert.Equal(t, want, got, "row %d", row)
	}

	_, ok := LogicalLineStart(b, -1)
	assert.False(t, ok)
	_, ok = LogicalLineStart(b, 5)
	assert.False(t, ok)
}
