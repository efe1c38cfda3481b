package service

import (
	"context"

	"cricket-roster/internal/catalog"
	"cricket-roster/internal/config"
	"cricket-roster/internal/domain"
	"cricket-roster/internal/lineup"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type LineupService struct {
	store  *catalog.Store
	rules  lineup.Rules
	logger zerolog.Logger
}

func NewLineupService(cfg *config.Config, store *catalog.Store, logger zerolog.Logger) *LineupService {
	rules := lineup.DefaultRules()
	if cfg.LineupEnforceMax {
		rules = lineup.StrictRules()
	}
	return &LineupService{store: store, rules: rules, logger: logger}
}

func (s *LineupService) Build(ctx context.Context, f domain.Format) (domain.Lineup, error) {
	if err := ctx.Err(); err != nil {
		return domain.Lineup{}, err
	}
	return s.build(s.store.Current(), f), nil
}

// BuildAll builds a lineup for every format from the same snapshot, in
// domain.Formats order.
func (s *LineupService) BuildAll(ctx context.Context) ([]domain.Lineup, error) {
	snap := s.store.Current()
	lineups := make([]domain.Lineup, len(domain.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range domain.Formats {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lineups[i] = s.build(snap, f)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lineups, nil
}

func (s *LineupService) build(snap *catalog.Snapshot, f domain.Format) domain.Lineup {
	l := lineup.BuildWith(snap.Players(), f, s.rules)

	counts := lineup.RoleCounts(l)
	s.logger.Debug().
		Str("format", string(f)).
		Int("size", len(l.Players)).
		Int("batsmen", counts[domain.RoleBatsman]).
		Int("bowlers", counts[domain.RoleBowler]).
		Int("allrounders", counts[domain.RoleAllRounder]).
		Str("captain", l.Captain).
		Msg("lineup built")

	return l
}
