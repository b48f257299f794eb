package style

import (
	"github.com/charmbracelet/x/ansi"
)

// Apply updates the style with the attributes of a Select Graphic Rendition
// sequence. Unknown attributes are returned so the caller can log them.
func (s *Style) Apply(params ansi.Params) (unknown []int) {
	if len(params) == 0 {
		s.Reset()
		return nil
	}

	for i := 0; i < len(params); i++ {
		p, hasMore, _ := params.Param(i, 0)
		switch {
		case p == 0:
			s.Reset()
		case p == 1:
			s.Bold = true
		case p == 2:
			s.Faint = true
		case p == 3:
			s.Italic = true
		case p == 4:
			// 4:0 turns underline off, any other sub-style turns it on.
			s.Underline = true
			if hasMore {
				i++
				sub, _, _ := params.Param(i, 1)
				s.Underline = sub != 0
			}
		case p == 5 || p == 6:
			s.Blink = true
		case p == 7:
			s.Inverse = true
		case p == 8:
			s.Invisible = true
		case p == 9:
			s.Strikethrough = true
		case p == 21:
			s.Underline = true
		case p == 22:
			s.Bold = false
			s.Faint = false
		case p == 23:
			s.Italic = false
		case p == 24:
			s.Underline = false
		case p == 25:
			s.Blink = false
		case p == 27:
			s.Inverse = false
		case p == 28:
			s.Invisible = false
		case p == 29:
			s.Strikethrough = false
		case p >= 30 && p <= 37:
			s.ForegroundColor = paletteColor(p - 30)
		case p == 38:
			var c Color
			c, i = extendedColor(params, i)
			s.ForegroundColor = c
		case p == 39:
			s.ForegroundColor = Color{}
		case p >= 40 && p <= 47:
			s.BackgroundColor = paletteColor(p - 40)
		case p == 48:
			var c Color
			c, i = extendedColor(params, i)
			s.BackgroundColor = c
		case p == 49:
			s.BackgroundColor = Color{}
		case p >= 90 && p <= 97:
			s.ForegroundColor = paletteColor(p - 90 + 8)
		case p >= 100 && p <= 107:
			s.BackgroundColor = paletteColor(p - 100 + 8)
		default:
			unknown = append(unknown, p)
		}
	}
	return unknown
}

func paletteColor(index int) Color {
	return Color{Type: ColorTypePalette, Palette: uint8(index)}
}

// extendedColor parses "38;5;n" / "38;2;r;g;b" (and their colon forms)
// starting at the 38/48 parameter index i. It returns the color and the
// index of the last consumed parameter.
func extendedColor(params ansi.Params, i int) (Color, int) {
	kind, _, ok := params.Param(i+1, 0)
	if !ok {
		return Color{}, i
	}
	switch kind {
	case 5:
		index, _, ok := params.Param(i+2, 0)
		if !ok {
			return Color{}, i + 1
		}
		return paletteColor(index & 0xff), i + 2
	case 2:
		r, _, _ := params.Param(i+2, 0)
		g, _, _ := params.Param(i+3, 0)
		b, _, ok := params.Param(i+4, 0)
		if !ok {
			return Color{}, min(i+4, len(params)-1)
		}
		return Color{
			Type: ColorTypeRGB,
			RGB:  RGB{R: uint8(r), G: uint8(g), B: uint8(b)},
		}, i + 4
	default:
		return Color{}, i + 1
	}
}
