package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Advance(t *testing.T) {
	state := NewState([]string{"--json", "file"})

	assert.Equal(t, 0, state.Pos())
	assert.Equal(t, "--json", state.CurrentArg())
	assert.True(t, state.HasNext())

	next, ok := state.Peek()
	assert.True(t, ok)
	assert.Equal(t, "file", next)

	assert.True(t, state.Advance())
	assert.Equal(t, "file", state.CurrentArg())
	assert.False(t, state.HasNext())

	_, ok = state.Peek()
	assert.False(t, ok)

	assert.False(t, state.Advance())
	assert.Equal(t, "", state.CurrentArg())
	assert.Equal(t, 2, state.Pos())
	assert.False(t, state.Advance(), "advancing an exhausted cursor should be a no-op")
	assert.Equal(t, 2, state.Pos())
}

func TestState_Remaining(t *testing.T) {
	args := []string{"prog", "--json", "a", "b"}

	assert.Equal(t, []string{"--json", "a", "b"}, NewStateAt(args, 1).Remaining())
	assert.Equal(t, []string{"b"}, NewStateAt(args, 3).Remaining())
	assert.Equal(t, []string{}, NewStateAt(args, 4).Remaining())
	assert.Equal(t, []string{}, NewStateAt(args, 10).Remaining(), "position should be clamped to the end")
	assert.Equal(t, args, NewStateAt(args, -3).Remaining(), "negative position should be clamped to the start")
}

func TestState_Len(t *testing.T) {
	assert.Equal(t, 2, NewState([]string{"a", "b"}).Len())
	assert.Equal(t, 0, NewState(nil).Len())
}

func TestState_Empty(t *testing.T) {
	state := NewState(nil)

	assert.Equal(t, "", state.CurrentArg())
	assert.False(t, state.Advance())
	assert.Equal(t, []string{}, state.Remaining())
}
