package scoring

import "cricket-roster/internal/domain"

// Score rates a player for one format with the role-specific heuristic.
// Products are converted explicitly so the compiler cannot fuse them into
// multiply-add instructions; the values must match across architectures.
func Score(p domain.Player, f domain.Format) float64 {
	s := p.StatsFor(f)
	matches := float64(s.Matches)
	runs := float64(s.Runs)
	wickets := float64(s.Wickets)

	switch p.Role {
	case domain.RoleBatsman:
		return runs + float64(matches*0.5)
	case domain.RoleBowler:
		return float64(wickets*12) + float64(matches*0.5)
	case domain.RoleAllRounder:
		return float64(runs*0.6) + float64(wickets*9) + float64(matches*0.3)
	default:
		return runs + float64(wickets*10)
	}
}

// ScoreAll scores a catalog in catalog order.
func ScoreAll(players []domain.Player, f domain.Format) []domain.ScoredPlayer {
	scored := make([]domain.ScoredPlayer, len(players))
	for i, p := range players {
		scored[i] = domain.ScoredPlayer{Player: p, Score: Score(p, f)}
	}
	return scored
}
