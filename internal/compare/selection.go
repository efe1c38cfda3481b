package compare

import "slices"

type SelectionEvent int

const (
	// EventSelected means one player is picked and a second is awaited.
	EventSelected SelectionEvent = iota
	// EventDeselected means a picked player was toggled off.
	EventDeselected
	// EventReady means a second player was picked. The pair is returned and
	// the selection starts over.
	EventReady
)

func (e SelectionEvent) String() string {
	switch e {
	case EventSelected:
		return "selected"
	case EventDeselected:
		return "deselected"
	case EventReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Selection holds at most two player names picked for a head-to-head. The
// zero value is an empty selection. It is not safe for concurrent use; the
// owner serialises access.
type Selection struct {
	picked []string
}

// Toggle adds name, or removes it when already picked. When the second name
// lands the pair is returned with EventReady and the selection is cleared.
func (s *Selection) Toggle(name string) (SelectionEvent, [2]string) {
	if i := slices.Index(s.picked, name); i >= 0 {
		s.picked = slices.Delete(s.picked, i, i+1)
		return EventDeselected, [2]string{}
	}

	s.picked = append(s.picked, name)
	if len(s.picked) < 2 {
		return EventSelected, [2]string{}
	}

	pair := [2]string{s.picked[0], s.picked[1]}
	s.picked = nil
	return EventReady, pair
}

// Picked returns a copy of the names currently selected.
func (s *Selection) Picked() []string {
	return slices.Clone(s.picked)
}

// Remove drops name without emitting an event. It reports whether name was
// picked.
func (s *Selection) Remove(name string) bool {
	i := slices.Index(s.picked, name)
	if i < 0 {
		return false
	}
	s.picked = slices.Delete(s.picked, i, i+1)
	return true
}

func (s *Selection) Len() int {
	return len(s.picked)
}

func (s *Selection) Reset() {
	s.picked = nil
}
