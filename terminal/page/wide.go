package page

type Wide int

const (
	// Not a wide character, cell width 1
	WideNarrow Wide = iota

	// WideWide character, cell width 2
	WideWide

	// Spacer after wide character. Do not render
	WideSpacerTail

	// Spacer at the end of a soft-wrapped row to indicate that a wide
	// character is continued on the next row. Do not render.
	WideSpacerHead
)

// IsSpacer reports whether a cell with this property only holds room for a
// neighbouring wide character.
func (w Wide) IsSpacer() bool {
	return w == WideSpacerTail || w == WideSpacerHead
}
