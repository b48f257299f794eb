package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithValue(t, "failed assertion", func() { Assert(false) })
	assert.PanicsWithValue(t, "row out of range", func() { Assert(false, "row out of range") })
}

func TestAssertf(t *testing.T) {
	assert.NotPanics(t, func() { Assertf(true, "unused %d", 1) })
	assert.PanicsWithValue(t, "row 7 out of range", func() { Assertf(false, "row %d out of range", 7) })
}
