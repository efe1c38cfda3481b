package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"cricket-roster/internal/catalog"
	"cricket-roster/internal/domain"

	"github.com/rs/zerolog"
)

// FilterAll disables the role or country filter.
const FilterAll = "all"

type SortField string

const (
	SortNone    SortField = "none"
	SortMatches SortField = "matches"
	SortRuns    SortField = "runs"
	SortWickets SortField = "wickets"
)

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return SortNone, nil
	case SortNone, SortMatches, SortRuns, SortWickets:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
}

type PlayerFilter struct {
	Role    string
	Country string
	Name    string
	Format  domain.Format
	SortBy  SortField
}

type RosterService struct {
	store  *catalog.Store
	loader *catalog.Loader
	logger zerolog.Logger
}

func NewRosterService(store *catalog.Store, loader *catalog.Loader, logger zerolog.Logger) *RosterService {
	return &RosterService{store: store, loader: loader, logger: logger}
}

// ListPlayers returns the players matching filter in catalog order, or sorted
// descending by the chosen stat. Players without stats for the format are
// left out.
func (s *RosterService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]domain.Player, error) {
	if filter.Format == "" {
		filter.Format = domain.FormatTest
	}
	if _, ok := domain.ParseFormat(string(filter.Format)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filter.Format)
	}
	if filter.SortBy == "" {
		filter.SortBy = SortNone
	}

	name := strings.ToLower(filter.Name)
	snap := s.store.Current()

	result := make([]domain.Player, 0, snap.Len())
	for _, p := range snap.Players() {
		if !matchesAll(filter.Role, string(p.Role)) || !matchesAll(filter.Country, p.Country) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if !p.HasStats(filter.Format) {
			continue
		}
		result = append(result, p)
	}

	if key := statKey(filter.SortBy); key != nil {
		slices.SortStableFunc(result, func(a, b domain.Player) int {
			return cmp.Compare(key(b.StatsFor(filter.Format)), key(a.StatsFor(filter.Format)))
		})
	}

	s.logger.Debug().
		Str("format", string(filter.Format)).
		Str("sort", string(filter.SortBy)).
		Int("matched", len(result)).
		Int("catalog", snap.Len()).
		Msg("players listed")

	return result, nil
}

// Countries lists each country once, in the order it first appears.
func (s *RosterService) Countries(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, p := range s.store.Current().Players() {
		if _, ok := seen[p.Country]; ok {
			continue
		}
		seen[p.Country] = struct{}{}
		countries = append(countries, p.Country)
	}
	return countries
}

func (s *RosterService) Reload(ctx context.Context) (*catalog.Snapshot, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload catalog: %w", err)
	}
	s.logger.Info().Str("source", snap.Source).Int("players", snap.Len()).Msg("catalog reloaded")
	return snap, nil
}

func (s *RosterService) Imports(ctx context.Context) ([]domain.CatalogImport, error) {
	return s.loader.History(ctx)
}

func (s *RosterService) Snapshot() *catalog.Snapshot {
	return s.store.Current()
}

func matchesAll(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

func statKey(f SortField) func(domain.FormatStats) int {
	switch f {
	case SortMatches:
		return func(s domain.FormatStats) int { return s.Matches }
	case SortRuns:
		return func(s domain.FormatStats) int { return s.Runs }
	case SortWickets:
		return func(s domain.FormatStats) int { return s.Wickets }
	default:
		return nil
	}
}
