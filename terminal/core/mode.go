package core

import (
	"maps"
	"slices"
)

// A settable terminal mode.
type Mode struct {
	Name  string
	Value int
	/// True if this is an ANSI mode, false for a DEC private mode.
	Ansi    bool
	Default bool
}

func entryForMode(name string, value int, ansi bool, defaultMode bool) Mode {
	return Mode{
		Name:    name,
		Value:   value,
		Ansi:    ansi,
		Default: defaultMode,
	}
}

var (
	// ansi modes
	ModeInsert   = entryForMode("insert", 4, true, false)     // IRM
	ModeLineFeed = entryForMode("line feed", 20, true, false) // LNM

	// DEC modes
	ModeWraparound = entryForMode("wraparound", 7, false, true) // DECAWM

	// The full list of available entries. For documentation on these modes, see
	// how they are used in the VT100 and ECMA-48 standards.
	entries = []Mode{
		ModeInsert,
		ModeLineFeed,
		ModeWraparound,
	}
)

// A Packed map of all settable modes with their default values. This
// shouldn't be used directly but rather through the ModeState struct.
var ModePacked = func() map[Mode]bool {
	packed := make(map[Mode]bool, len(entries))
	for _, m := range entries {
		packed[m] = m.Default
	}
	return packed
}()

type ModeState struct {
	// The values of current modes
	values map[Mode]bool
	// The default values of modes, restored by Reset
	defaults map[Mode]bool
}

// NewModeState copies both maps, so later Set calls never leak into the
// defaults a Reset goes back to.
func NewModeState(values map[Mode]bool, def map[Mode]bool) *ModeState {
	state := &ModeState{
		values:   maps.Clone(values),
		defaults: maps.Clone(def),
	}
	if state.values == nil {
		state.values = make(map[Mode]bool)
	}
	if state.defaults == nil {
		state.defaults = make(map[Mode]bool)
	}
	return state
}

func (s *ModeState) Set(m Mode, value bool) {
	s.values[m] = value
}

func (s *ModeState) Get(m Mode) bool {
	return s.values[m]
}

func (s *ModeState) Reset() {
	s.values = maps.Clone(s.defaults)
}

func ModeFromInt(input int, ansi bool) *Mode {
	for entry := range slices.Values(entries) {
		if entry.Value == input && entry.Ansi == ansi {
			return &entry
		}
	}
	return nil
}
