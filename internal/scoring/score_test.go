package scoring

import (
	"testing"

	"cricket-roster/internal/domain"

	"github.com/stretchr/testify/assert"
)

func player(name string, role domain.Role, stats map[domain.Format]domain.FormatStats) domain.Player {
	return domain.Player{Name: name, Role: role, Stats: stats}
}

func TestScoreByRole(t *testing.T) {
	odi := func(m, r, w int) map[domain.Format]domain.FormatStats {
		return map[domain.Format]domain.FormatStats{domain.FormatODI: {Matches: m, Runs: r, Wickets: w}}
	}

	tests := []struct {
		name string
		p    domain.Player
		want float64
	}{
		{"batsman", player("X", domain.RoleBatsman, odi(10, 500, 0)), 505},
		{"bowler", player("Y", domain.RoleBowler, odi(10, 0, 20)), 245},
		{"allrounder", player("Z", domain.RoleAllRounder, odi(10, 100, 5)), 108},
		{"other", player("W", domain.RoleOther, odi(10, 100, 5)), 150},
		{"unknown role", player("K", domain.Role("wicketkeeper"), odi(10, 100, 5)), 150},
		{"empty role", player("E", "", odi(3, 7, 1)), 17},
		{"bowler runs ignored", player("B", domain.RoleBowler, odi(1, 999, 0)), 0.5},
		{"batsman wickets ignored", player("R", domain.RoleBatsman, odi(2, 0, 50)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.p, domain.FormatODI))
		})
	}
}

func TestScoreMissingStats(t *testing.T) {
	empty := player("A", domain.RoleAllRounder, map[domain.Format]domain.FormatStats{})
	for _, f := range domain.Formats {
		assert.Zero(t, Score(empty, f))
	}

	noStats := player("N", domain.RoleBatsman, nil)
	assert.Zero(t, Score(noStats, domain.FormatTest))

	withODI := player("O", domain.RoleBatsman, map[domain.Format]domain.FormatStats{domain.FormatODI: {Matches: 4, Runs: 40}})
	assert.Zero(t, Score(withODI, domain.FormatTest))
	assert.Zero(t, Score(withODI, domain.Format("hundred")))
}

func TestScoreDeterministic(t *testing.T) {
	p := player("D", domain.RoleAllRounder, map[domain.Format]domain.FormatStats{
		domain.FormatT20: {Matches: 133, Runs: 2781, Wickets: 97},
	})
	first := Score(p, domain.FormatT20)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Score(p, domain.FormatT20))
	}
}

func TestScoreAllKeepsOrder(t *testing.T) {
	players := []domain.Player{
		player("low", domain.RoleBatsman, map[domain.Format]domain.FormatStats{domain.FormatTest: {Runs: 1}}),
		player("high", domain.RoleBatsman, map[domain.Format]domain.FormatStats{domain.FormatTest: {Runs: 100}}),
	}

	scored := ScoreAll(players, domain.FormatTest)
	assert.Len(t, scored, 2)
	assert.Equal(t, "low", scored[0].Player.Name)
	assert.Equal(t, 1.0, scored[0].Score)
	assert.Equal(t, "high", scored[1].Player.Name)
	assert.Equal(t, 100.0, scored[1].Score)

	assert.Empty(t, ScoreAll(nil, domain.FormatTest))
}
