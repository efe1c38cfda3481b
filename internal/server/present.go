package server

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"cricket-roster/internal/domain"
)

const flagBaseURL = "https://flagcdn.com/w20/"

var countryCodes = map[string]string{
	"India":        "in",
	"Australia":    "au",
	"England":      "gb-eng",
	"Pakistan":     "pk",
	"New Zealand":  "nz",
	"Afghanistan":  "af",
	"South Africa": "za",
}

// FlagURL falls back to the United Nations flag for unmapped countries.
func FlagURL(country string) string {
	code, ok := countryCodes[country]
	if !ok {
		code = "un"
	}
	return flagBaseURL + code + ".png"
}

// Capitalize upper-cases the first letter only.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RoundScore rounds half up, so -2.5 becomes -2.
func RoundScore(score float64) float64 {
	return math.Floor(score + 0.5)
}

func toPlayerView(p domain.Player, f domain.Format) PlayerView {
	stats := p.StatsFor(f)
	return PlayerView{
		Name:      p.Name,
		Country:   p.Country,
		Role:      string(p.Role),
		RoleLabel: Capitalize(string(p.Role)),
		Image:     p.Image,
		FlagURL:   FlagURL(p.Country),
		Stats: StatsView{
			Matches: stats.Matches,
			Runs:    stats.Runs,
			Wickets: stats.Wickets,
		},
	}
}

func toLineupView(l domain.Lineup) LineupView {
	view := LineupView{
		Format:      string(l.Format),
		Players:     make([]LineupPlayerView, len(l.Players)),
		Captain:     l.Captain,
		ViceCaptain: l.ViceCaptain,
	}
	for i, sp := range l.Players {
		view.Players[i] = LineupPlayerView{
			PlayerView:  toPlayerView(sp.Player, l.Format),
			Score:       RoundScore(sp.Score),
			Captain:     i == 0,
			ViceCaptain: i == 1,
		}
	}
	return view
}

func toComparisonView(r domain.ComparisonReport) ComparisonView {
	view := ComparisonView{
		PlayerA: r.PlayerA,
		PlayerB: r.PlayerB,
		Formats: make([]FormatComparisonView, len(r.Formats)),
	}
	for i, fc := range r.Formats {
		view.Formats[i] = FormatComparisonView{
			Format:  strings.ToUpper(string(fc.Format)),
			Matches: toFieldView(fc.Matches),
			Runs:    toFieldView(fc.Runs),
			Wickets: toFieldView(fc.Wickets),
		}
	}
	return view
}

func toFieldView(c domain.FieldComparison) FieldView {
	return FieldView{A: c.A, B: c.B, Favored: string(c.Favored)}
}

func toImportView(rec domain.CatalogImport) CatalogImportView {
	return CatalogImportView{
		ID:          rec.ID,
		Source:      rec.Source,
		PlayerCount: rec.PlayerCount,
		ImportedAt:  rec.ImportedAt.Format(time.RFC3339),
	}
}
