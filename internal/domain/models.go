package domain

import (
	"strings"
	"time"
)

type Format string

const (
	FormatTest Format = "test"
	FormatODI  Format = "odi"
	FormatT20  Format = "t20"
)

// Formats is the fixed display and comparison order.
var Formats = []Format{FormatTest, FormatODI, FormatT20}

func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatTest, FormatODI, FormatT20:
		return f, true
	default:
		return f, false
	}
}

// Role is kept as the raw catalog value. Anything other than the three
// specialist roles scores with the generic formula.
type Role string

const (
	RoleBatsman    Role = "batsman"
	RoleBowler     Role = "bowler"
	RoleAllRounder Role = "allrounder"
	RoleOther      Role = "other"
)

type Player struct {
	Name    string                 `json:"name"`
	Country string                 `json:"country"`
	Role    Role                   `json:"role"`
	Image   string                 `json:"image,omitempty"`
	Stats   map[Format]FormatStats `json:"stats"`
}

// StatsFor never reports a missing entry; absent formats are all-zero.
func (p *Player) StatsFor(f Format) FormatStats {
	if p.Stats == nil {
		return FormatStats{}
	}
	return p.Stats[f]
}

func (p *Player) HasStats(f Format) bool {
	_, ok := p.Stats[f]
	return ok
}

type FormatStats struct {
	Matches int `json:"matches"`
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

type ScoredPlayer struct {
	Player Player
	Score  float64
}

// Lineup is ordered by descending score. Captain and ViceCaptain are empty
// when the lineup is too short to name them.
type Lineup struct {
	Format      Format
	Players     []ScoredPlayer
	Captain     string
	ViceCaptain string
}

type Side string

const (
	SideA   Side = "a"
	SideB   Side = "b"
	SideTie Side = "tie"
)

func (s Side) Flip() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return s
	}
}

type FieldComparison struct {
	A       int
	B       int
	Favored Side
}

type FormatComparison struct {
	Format  Format
	A       FormatStats
	B       FormatStats
	Matches FieldComparison
	Runs    FieldComparison
	Wickets FieldComparison
}

type ComparisonReport struct {
	PlayerA string
	PlayerB string
	Formats []FormatComparison
}

func (r ComparisonReport) For(f Format) (FormatComparison, bool) {
	for _, fc := range r.Formats {
		if fc.Format == f {
			return fc, true
		}
	}
	return FormatComparison{}, false
}

// Swap relabels the report as if the players had been passed the other way round.
func (r ComparisonReport) Swap() ComparisonReport {
	out := ComparisonReport{PlayerA: r.PlayerB, PlayerB: r.PlayerA}
	out.Formats = make([]FormatComparison, len(r.Formats))
	for i, fc := range r.Formats {
		out.Formats[i] = FormatComparison{
			Format:  fc.Format,
			A:       fc.B,
			B:       fc.A,
			Matches: fc.Matches.swap(),
			Runs:    fc.Runs.swap(),
			Wickets: fc.Wickets.swap(),
		}
	}
	return out
}

func (c FieldComparison) swap() FieldComparison {
	return FieldComparison{A: c.B, B: c.A, Favored: c.Favored.Flip()}
}

type CatalogImport struct {
	ID          string // nanoid
	Source      string // "url", "file", "embedded"
	PlayerCount int
	ImportedAt  time.Time
}
