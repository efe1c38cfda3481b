package lineup

import (
	"cmp"
	"slices"

	"cricket-roster/internal/domain"
	"cricket-roster/internal/scoring"
)

// Build picks the best lineup for a format with the default rules.
func Build(players []domain.Player, f domain.Format) domain.Lineup {
	return BuildWith(players, f, DefaultRules())
}

// BuildWith seeds the lineup with the top players of each quota role, then
// fills the remaining slots greedily by overall score. Catalog order breaks
// score ties. The catalog is never modified.
func BuildWith(players []domain.Player, f domain.Format, rules Rules) domain.Lineup {
	size := rules.TeamSize
	if size <= 0 {
		size = TeamSize
	}

	sortedOverall := scoring.ScoreAll(players, f)
	sortByScore(sortedOverall)

	byRole := make(map[domain.Role][]domain.ScoredPlayer)
	for _, sp := range sortedOverall {
		if _, ok := rules.quotaFor(sp.Player.Role); ok {
			byRole[sp.Player.Role] = append(byRole[sp.Player.Role], sp)
		}
	}

	team := make([]domain.ScoredPlayer, 0, size)
	taken := make(map[string]struct{}, size)
	counts := make(map[domain.Role]int)

	add := func(sp domain.ScoredPlayer) {
		team = append(team, sp)
		taken[sp.Player.Name] = struct{}{}
		counts[sp.Player.Role]++
	}

	for _, q := range rules.Quotas {
		for _, sp := range take(byRole[q.Role], q.MinRequired) {
			add(sp)
		}
	}

	for _, sp := range sortedOverall {
		if len(team) >= size {
			break
		}
		if _, ok := taken[sp.Player.Name]; ok {
			continue
		}
		if rules.EnforceMaximums && rules.atMaximum(counts, sp.Player.Role) {
			continue
		}
		add(sp)
	}

	if len(team) > size {
		team = team[:size]
	}
	sortByScore(team)

	l := domain.Lineup{Format: f, Players: team}
	if len(team) > 0 {
		l.Captain = team[0].Player.Name
	}
	if len(team) > 1 {
		l.ViceCaptain = team[1].Player.Name
	}
	return l
}

// RoleCounts tallies a lineup by role; unknown roles are counted as other.
func RoleCounts(l domain.Lineup) map[domain.Role]int {
	counts := make(map[domain.Role]int)
	for _, sp := range l.Players {
		switch sp.Player.Role {
		case domain.RoleBatsman, domain.RoleBowler, domain.RoleAllRounder:
			counts[sp.Player.Role]++
		default:
			counts[domain.RoleOther]++
		}
	}
	return counts
}

func (r Rules) atMaximum(counts map[domain.Role]int, role domain.Role) bool {
	q, ok := r.quotaFor(role)
	if !ok || q.MaxAllowed <= 0 {
		return false
	}
	return counts[role] >= q.MaxAllowed
}

func take(s []domain.ScoredPlayer, n int) []domain.ScoredPlayer {
	if n <= 0 {
		return nil
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func sortByScore(s []domain.ScoredPlayer) {
	slices.SortStableFunc(s, func(a, b domain.ScoredPlayer) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
