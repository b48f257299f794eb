package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ModeState(t *testing.T) {
	state := NewModeState(nil, nil)

	assert.False(t, state.Get(ModeInsert), "Expected ModeInsert to be false by default")

	state.Set(ModeInsert, true)
	assert.True(t, state.Get(ModeInsert), "Expected ModeInsert to be set to true")

	state.Set(ModeInsert, false)
	assert.False(t, state.Get(ModeInsert), "Expected ModeInsert to be set to false")
}

func Test_ModeStateResetRestoresDefaults(t *testing.T) {
	state := NewModeState(ModePacked, ModePacked)
	assert.True(t, state.Get(ModeWraparound))

	state.Set(ModeWraparound, false)
	assert.False(t, state.Get(ModeWraparound))
	assert.True(t, ModePacked[ModeWraparound], "packed defaults must not change")

	state.Reset()
	assert.True(t, state.Get(ModeWraparound))
}

func TestModeFromInput(t *testing.T) {
	mode := ModeFromInt(4, true)
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeInsert)

	mode = ModeFromInt(7, false)
	assert.NotNil(t, mode)
	assert.True(t, *mode == ModeWraparound)

	assert.Nil(t, ModeFromInt(7, true))
}
