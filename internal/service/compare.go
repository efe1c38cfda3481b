package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cricket-roster/internal/catalog"
	"cricket-roster/internal/compare"
	"cricket-roster/internal/constants"
	"cricket-roster/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type selectionSession struct {
	selection compare.Selection
	lastSeen  time.Time
}

// ToggleResult describes a selection after one toggle. Report is set only
// when the toggle completed a pair.
type ToggleResult struct {
	SessionID string
	Event     compare.SelectionEvent
	Picked    []string
	Report    *domain.ComparisonReport
}

type CompareService struct {
	store  *catalog.Store
	logger zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*selectionSession
	now      func() time.Time
}

func NewCompareService(store *catalog.Store, logger zerolog.Logger) *CompareService {
	return &CompareService{
		store:    store,
		logger:   logger,
		sessions: make(map[string]*selectionSession),
		now:      time.Now,
	}
}

func (s *CompareService) Compare(ctx context.Context, nameA, nameB string) (domain.ComparisonReport, error) {
	return s.compare(s.store.Current(), nameA, nameB)
}

// Toggle flips name in the session's selection. An empty sessionID starts a
// new session. Unknown names leave the selection untouched.
func (s *CompareService) Toggle(ctx context.Context, sessionID, name string) (*ToggleResult, error) {
	snap := s.store.Current()
	player, ok := snap.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &selectionSession{}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = now

	// picks made against an older catalog may no longer resolve
	for _, picked := range sess.selection.Picked() {
		if _, ok := snap.Find(picked); !ok {
			sess.selection.Remove(picked)
			s.logger.Debug().Str("session", sessionID).Str("player", picked).Msg("stale pick dropped")
		}
	}

	event, pair := sess.selection.Toggle(player.Name)
	result := &ToggleResult{
		SessionID: sessionID,
		Event:     event,
		Picked:    sess.selection.Picked(),
	}

	s.logger.Debug().Str("session", sessionID).Str("player", player.Name).Stringer("event", event).Msg("selection toggled")

	if event != compare.EventReady {
		return result, nil
	}

	report, err := s.compare(snap, pair[0], pair[1])
	if err != nil {
		return nil, err
	}
	result.Report = &report
	return result, nil
}

// Selection returns the names currently picked in a session.
func (s *CompareService) Selection(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sessionID]; ok {
		return sess.selection.Picked()
	}
	return nil
}

func (s *CompareService) compare(snap *catalog.Snapshot, nameA, nameB string) (domain.ComparisonReport, error) {
	a, ok := snap.Find(nameA)
	if !ok {
		return domain.ComparisonReport{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, nameA)
	}
	b, ok := snap.Find(nameB)
	if !ok {
		return domain.ComparisonReport{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, nameB)
	}
	if a.Name == b.Name {
		return domain.ComparisonReport{}, ErrSamePlayer
	}
	return compare.Compare(a, b), nil
}

func (s *CompareService) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > constants.SelectionSessionTTL {
			delete(s.sessions, id)
		}
	}
}
