package style

import (
	styleid "github.com/hnimtadd/termwrap/terminal/style/id"
)

// Table interns styles so cells only carry a small ID. The default style is
// always styleid.DefaultID and never stored.
type Table struct {
	// IDs by style hash. Colliding styles share a bucket.
	ids    map[uint64][]styleid.ID
	styles []Style
}

func NewTable() *Table {
	return &Table{
		ids:    make(map[uint64][]styleid.ID),
		styles: []Style{{}},
	}
}

// Intern returns the ID for s, adding it to the table on first use.
func (t *Table) Intern(s Style) styleid.ID {
	if s.IsDefault() {
		return styleid.DefaultID
	}
	hash := s.Hash()
	for _, id := range t.ids[hash] {
		if t.styles[id] == s {
			return id
		}
	}
	id := styleid.ID(len(t.styles))
	t.styles = append(t.styles, s)
	t.ids[hash] = append(t.ids[hash], id)
	return id
}

// Get returns the style behind id. Unknown IDs resolve to the default style.
func (t *Table) Get(id styleid.ID) Style {
	if int(id) >= len(t.styles) {
		return Style{}
	}
	return t.styles[id]
}

// Len returns the number of interned styles, the default one included.
func (t *Table) Len() int {
	return len(t.styles)
}
