package server

import (
	"testing"

	"cricket-roster/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFlagURL(t *testing.T) {
	assert.Equal(t, "https://flagcdn.com/w20/gb-eng.png", FlagURL("England"))
	assert.Equal(t, "https://flagcdn.com/w20/un.png", FlagURL("Atlantis"))
	assert.Equal(t, "https://flagcdn.com/w20/un.png", FlagURL(""))
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"batsman":    "Batsman",
		"allrounder": "Allrounder",
		"":           "",
		"Bowler":     "Bowler",
		"élite":      "Élite",
	}
	for in, want := range tests {
		assert.Equal(t, want, Capitalize(in), in)
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{5763.3, 5763},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundScore(tt.in), "%v", tt.in)
	}
}

func TestToLineupViewFlagsLeaders(t *testing.T) {
	view := toLineupView(domain.Lineup{
		Format: domain.FormatODI,
		Players: []domain.ScoredPlayer{
			{Player: domain.Player{Name: "A", Role: domain.RoleBowler}, Score: 10.4},
		},
		Captain: "A",
	})

	assert.Equal(t, "odi", view.Format)
	assert.Equal(t, "A", view.Captain)
	assert.Empty(t, view.ViceCaptain)
	assert.True(t, view.Players[0].Captain)
	assert.False(t, view.Players[0].ViceCaptain)
	assert.Equal(t, float64(10), view.Players[0].Score)
	assert.Equal(t, "Bowler", view.Players[0].RoleLabel)
}

func TestJSONCodec(t *testing.T) {
	var c JSONCodec
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&BuildLineupRequest{Format: "odi"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"format":"odi"}`, string(data))

	var req BuildLineupRequest
	assert.NoError(t, c.Unmarshal(nil, &req))
	assert.Empty(t, req.Format)
}
