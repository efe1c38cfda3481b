package catalog

import (
	"strings"
	"sync/atomic"
	"time"

	"cricket-roster/internal/domain"
)

// Snapshot is an immutable view of the catalog. Callers must not modify the
// slice returned by Players.
type Snapshot struct {
	Source   string
	LoadedAt time.Time

	players []domain.Player
	index   map[string]int
}

func NewSnapshot(source string, players []domain.Player) *Snapshot {
	index := make(map[string]int, len(players))
	for i, p := range players {
		if _, ok := index[p.Name]; !ok {
			index[p.Name] = i
		}
	}
	return &Snapshot{
		Source:   source,
		LoadedAt: time.Now().UTC(),
		players:  players,
		index:    index,
	}
}

func (s *Snapshot) Players() []domain.Player {
	return s.players
}

func (s *Snapshot) Len() int {
	return len(s.players)
}

// Find looks a player up by exact name, falling back to a case-insensitive
// match in catalog order.
func (s *Snapshot) Find(name string) (domain.Player, bool) {
	if i, ok := s.index[name]; ok {
		return s.players[i], true
	}
	for _, p := range s.players {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return domain.Player{}, false
}

// Store publishes the current snapshot. Reads never block a reload.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot("", nil))
	return s
}

func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap installs next and returns the snapshot it replaced.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	return s.current.Swap(next)
}
