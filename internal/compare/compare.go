package compare

import "cricket-roster/internal/domain"

// Compare lines up two players' raw stats format by format and marks which
// side leads on each field. Missing formats compare as all-zero.
func Compare(a, b domain.Player) domain.ComparisonReport {
	report := domain.ComparisonReport{
		PlayerA: a.Name,
		PlayerB: b.Name,
		Formats: make([]domain.FormatComparison, 0, len(domain.Formats)),
	}

	for _, f := range domain.Formats {
		sa, sb := a.StatsFor(f), b.StatsFor(f)
		report.Formats = append(report.Formats, domain.FormatComparison{
			Format:  f,
			A:       sa,
			B:       sb,
			Matches: field(sa.Matches, sb.Matches),
			Runs:    field(sa.Runs, sb.Runs),
			Wickets: field(sa.Wickets, sb.Wickets),
		})
	}

	return report
}

func field(a, b int) domain.FieldComparison {
	fc := domain.FieldComparison{A: a, B: b, Favored: domain.SideTie}
	switch {
	case a > b:
		fc.Favored = domain.SideA
	case b > a:
		fc.Favored = domain.SideB
	}
	return fc
}
