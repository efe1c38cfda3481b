package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionPairFiresOnceAndResets(t *testing.T) {
	var s Selection

	ev, _ := s.Toggle("Root")
	assert.Equal(t, EventSelected, ev)
	assert.Equal(t, []string{"Root"}, s.Picked())

	ev, pair := s.Toggle("Babar")
	assert.Equal(t, EventReady, ev)
	assert.Equal(t, [2]string{"Root", "Babar"}, pair)
	assert.Zero(t, s.Len())

	ev, _ = s.Toggle("Rashid")
	assert.Equal(t, EventSelected, ev)
	assert.Equal(t, 1, s.Len())
}

func TestSelectionToggleOffRemoves(t *testing.T) {
	var s Selection

	s.Toggle("Root")
	ev, pair := s.Toggle("Root")
	assert.Equal(t, EventDeselected, ev)
	assert.Equal(t, [2]string{}, pair)
	assert.Zero(t, s.Len())

	// deselecting and picking again still needs two distinct players
	s.Toggle("Root")
	ev, _ = s.Toggle("Root")
	assert.Equal(t, EventDeselected, ev)

	s.Toggle("Root")
	ev, pair = s.Toggle("Stokes")
	assert.Equal(t, EventReady, ev)
	assert.Equal(t, [2]string{"Root", "Stokes"}, pair)
}

func TestSelectionPickedIsACopy(t *testing.T) {
	var s Selection
	s.Toggle("A")
	got := s.Picked()
	got[0] = "mutated"
	assert.Equal(t, []string{"A"}, s.Picked())
}

func TestSelectionReset(t *testing.T) {
	var s Selection
	s.Toggle("A")
	s.Reset()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Picked())
}

func TestSelectionEventString(t *testing.T) {
	assert.Equal(t, "selected", EventSelected.String())
	assert.Equal(t, "deselected", EventDeselected.String())
	assert.Equal(t, "ready", EventReady.String())
	assert.Equal(t, "unknown", SelectionEvent(42).String())
}

func TestSelectionRemove(t *testing.T) {
	var s Selection
	s.Toggle("Root")

	assert.False(t, s.Remove("Babar"))
	assert.True(t, s.Remove("Root"))
	assert.Zero(t, s.Len())

	ev, _ := s.Toggle("Babar")
	assert.Equal(t, EventSelected, ev)
}
