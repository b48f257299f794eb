package style

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	styleid "github.com/hnimtadd/termwrap/terminal/style/id"
	"github.com/stretchr/testify/assert"
)

func TestColorString(t *testing.T) {
	cNone := Color{Type: ColorTypeNone}
	assert.Equal(t, "Color.none", cNone.String())

	cPalette := Color{Type: ColorTypePalette, Palette: 5}
	assert.Equal(t, "Color.palette{{ 5 }}", cPalette.String())

	cRGB := Color{Type: ColorTypeRGB, RGB: RGB{R: 1, G: 2, B: 3}}
	assert.Equal(t, "Color.rgb{{ 1, 2, 3 }}", cRGB.String())
}

func TestStyle_Hash(t *testing.T) {
	a := Style{Bold: true, ForegroundColor: paletteColor(1)}
	b := Style{Bold: true, ForegroundColor: paletteColor(1)}
	c := Style{Bold: true, ForegroundColor: paletteColor(2)}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestTable_Intern(t *testing.T) {
	table := NewTable()
	assert.Equal(t, styleid.DefaultID, table.Intern(Style{}))

	bold := Style{Bold: true}
	id := table.Intern(bold)
	assert.NotEqual(t, styleid.DefaultID, id)
	assert.Equal(t, id, table.Intern(Style{Bold: true}), "same style, same id")
	assert.Equal(t, bold, table.Get(id))
	assert.Equal(t, 2, table.Len())

	other := table.Intern(Style{Italic: true})
	assert.NotEqual(t, id, other)
	assert.Equal(t, Style{}, table.Get(styleid.ID(99)))
}

func TestTable_InternHashCollision(t *testing.T) {
	table := NewTable()
	bold := Style{Bold: true}
	italic := Style{Italic: true}
	boldID := table.Intern(bold)

	// File italic under bold's hash as if the two collided.
	table.ids[italic.Hash()] = []styleid.ID{boldID}

	italicID := table.Intern(italic)
	assert.NotEqual(t, boldID, italicID)
	assert.Equal(t, italic, table.Get(italicID))
	assert.Equal(t, bold, table.Get(boldID))
	assert.Equal(t, italicID, table.Intern(italic))
}

func TestStyle_Apply(t *testing.T) {
	tests := []struct {
		name   string
		start  Style
		params []int
		want   Style
	}{
		{
			name:   "bold and red",
			params: []int{1, 31},
			want:   Style{Bold: true, ForegroundColor: paletteColor(1)},
		},
		{
			name:   "reset",
			start:  Style{Bold: true, Underline: true},
			params: []int{0},
			want:   Style{},
		},
		{
			name:   "bright background",
			params: []int{102},
			want:   Style{BackgroundColor: paletteColor(10)},
		},
		{
			name:   "256 colors",
			params: []int{38, 5, 196, 4},
			want:   Style{ForegroundColor: paletteColor(196), Underline: true},
		},
		{
			name:   "true color background",
			params: []int{48, 2, 10, 20, 30},
			want: Style{BackgroundColor: Color{
				Type: ColorTypeRGB,
				RGB:  RGB{R: 10, G: 20, B: 30},
			}},
		},
		{
			name:   "turn attributes off",
			start:  Style{Bold: true, Italic: true, Inverse: true, ForegroundColor: paletteColor(3)},
			params: []int{22, 23, 27, 39},
			want:   Style{},
		},
		{
			name:   "underline off via sub parameter",
			start:  Style{Underline: true},
			params: []int{ansi.Parameter(4, true), 0},
			want:   Style{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			unknown := s.Apply(ansi.ToParams(tt.params))
			assert.Empty(t, unknown)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStyle_ApplyEmptyResets(t *testing.T) {
	s := Style{Bold: true}
	s.Apply(nil)
	assert.True(t, s.IsDefault())
}

func TestStyle_ApplyReportsUnknown(t *testing.T) {
	var s Style
	unknown := s.Apply(ansi.ToParams([]int{1, 73}))
	assert.Equal(t, []int{73}, unknown)
	assert.True(t, s.Bold)
}
