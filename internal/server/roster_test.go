package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cricket-roster/internal/api"
	"cricket-roster/internal/catalog"
	"cricket-roster/internal/config"
	"cricket-roster/internal/database"
	"cricket-roster/internal/db"
	"cricket-roster/internal/repository"
	"cricket-roster/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *RosterServiceClient {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "roster.db")}
	sqlDB, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	q := db.New(sqlDB)
	store := catalog.NewStore()
	loader := catalog.NewLoader(
		cfg,
		api.NewCatalogClient(),
		repository.NewPlayerRepository(sqlDB, q, zerolog.Nop()),
		repository.NewCatalogImportRepository(sqlDB, q, zerolog.Nop()),
		store,
		zerolog.Nop(),
	)
	_, err = loader.Load(context.Background())
	require.NoError(t, err)

	srv := NewRosterServer(
		service.NewRosterService(store, loader, zerolog.Nop()),
		service.NewLineupService(cfg, store, zerolog.Nop()),
		service.NewCompareService(store, zerolog.Nop()),
	)

	mux := http.NewServeMux()
	mux.Handle(NewRosterServiceHandler(srv))
	hs := httptest.NewServer(mux)
	t.Cleanup(hs.Close)

	return NewRosterServiceClient(hs.Client(), hs.URL)
}

func TestListPlayersRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	res, err := client.ListPlayers(ctx, connect.NewRequest(&ListPlayersRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "test", res.Msg.Format)
	require.Len(t, res.Msg.Players, 18)

	first := res.Msg.Players[0]
	assert.Equal(t, "Virat Kohli", first.Name)
	assert.Equal(t, "Batsman", first.RoleLabel)
	assert.Equal(t, "https://flagcdn.com/w20/in.png", first.FlagURL)
	assert.Equal(t, StatsView{Matches: 113, Runs: 8848}, first.Stats)

	res, err = client.ListPlayers(ctx, connect.NewRequest(&ListPlayersRequest{Format: "T20", SortBy: "runs", Country: "all", Role: "all"}))
	require.NoError(t, err)
	assert.Len(t, res.Msg.Players, 17)
	assert.Equal(t, "Rohit Sharma", res.Msg.Players[0].Name)

	res, err = client.ListPlayers(ctx, connect.NewRequest(&ListPlayersRequest{Country: "Atlantis"}))
	require.NoError(t, err)
	assert.Empty(t, res.Msg.Players)
}

func TestListPlayersRPCInvalidArguments(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.ListPlayers(ctx, connect.NewRequest(&ListPlayersRequest{Format: "hundred"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.ListPlayers(ctx, connect.NewRequest(&ListPlayersRequest{SortBy: "average"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestListCountriesRPC(t *testing.T) {
	client := newTestClient(t)

	res, err := client.ListCountries(context.Background(), connect.NewRequest(&ListCountriesRequest{}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Countries, 7)
	assert.Equal(t, CountryView{Name: "India", FlagURL: "https://flagcdn.com/w20/in.png"}, res.Msg.Countries[0])
	assert.Equal(t, "South Africa", res.Msg.Countries[6].Name)
}

func TestBuildLineupRPC(t *testing.T) {
	client := newTestClient(t)

	res, err := client.BuildLineup(context.Background(), connect.NewRequest(&BuildLineupRequest{Format: "test"}))
	require.NoError(t, err)

	l := res.Msg.Lineup
	assert.Equal(t, "test", l.Format)
	require.Len(t, l.Players, 11)
	assert.Equal(t, "Joe Root", l.Captain)
	assert.Equal(t, "Steve Smith", l.ViceCaptain)
	assert.True(t, l.Players[0].Captain)
	assert.True(t, l.Players[1].ViceCaptain)
	assert.Equal(t, float64(11806), l.Players[0].Score)

	for i := 1; i < len(l.Players); i++ {
		assert.GreaterOrEqual(t, l.Players[i-1].Score, l.Players[i].Score)
	}
}

func TestBuildAllLineupsRPC(t *testing.T) {
	client := newTestClient(t)

	res, err := client.BuildAllLineups(context.Background(), connect.NewRequest(&BuildAllLineupsRequest{}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Lineups, 3)
	assert.Equal(t, []string{"test", "odi", "t20"}, []string{res.Msg.Lineups[0].Format, res.Msg.Lineups[1].Format, res.Msg.Lineups[2].Format})
	for _, l := range res.Msg.Lineups {
		assert.Len(t, l.Players, 11)
	}
}

func TestComparePlayersRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	res, err := client.ComparePlayers(ctx, connect.NewRequest(&ComparePlayersRequest{PlayerA: "Joe Root", PlayerB: "Ben Stokes"}))
	require.NoError(t, err)

	cmp := res.Msg.Comparison
	assert.Equal(t, "Joe Root", cmp.PlayerA)
	require.Len(t, cmp.Formats, 3)
	assert.Equal(t, "TEST", cmp.Formats[0].Format)
	assert.Equal(t, FieldView{A: 11736, B: 6508, Favored: "a"}, cmp.Formats[0].Runs)
	assert.Equal(t, FieldView{A: 65, B: 203, Favored: "b"}, cmp.Formats[0].Wickets)

	_, err = client.ComparePlayers(ctx, connect.NewRequest(&ComparePlayersRequest{PlayerA: "Joe Root", PlayerB: "Nobody"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestToggleSelectionRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first, err := client.ToggleSelection(ctx, connect.NewRequest(&ToggleSelectionRequest{Name: "Joe Root"}))
	require.NoError(t, err)
	session := first.Header().Get(SessionHeader)
	require.NotEmpty(t, session)
	assert.Equal(t, session, first.Msg.SessionID)
	assert.Equal(t, "selected", first.Msg.Event)
	assert.Equal(t, []string{"Joe Root"}, first.Msg.Picked)
	assert.Nil(t, first.Msg.Comparison)

	req := connect.NewRequest(&ToggleSelectionRequest{Name: "Kane Williamson"})
	req.Header().Set(SessionHeader, session)
	second, err := client.ToggleSelection(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ready", second.Msg.Event)
	assert.Empty(t, second.Msg.Picked)
	require.NotNil(t, second.Msg.Comparison)
	assert.Equal(t, "Joe Root", second.Msg.Comparison.PlayerA)
	assert.Equal(t, "Kane Williamson", second.Msg.Comparison.PlayerB)

	_, err = client.ToggleSelection(ctx, connect.NewRequest(&ToggleSelectionRequest{Name: "Nobody"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestReloadCatalogRPC(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	res, err := client.ReloadCatalog(ctx, connect.NewRequest(&ReloadCatalogRequest{}))
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceDatabase, res.Msg.Source)
	assert.Equal(t, 18, res.Msg.Players)
	assert.NotEmpty(t, res.Msg.LoadedAt)

	imports, err := client.ListCatalogImports(ctx, connect.NewRequest(&ListCatalogImportsRequest{}))
	require.NoError(t, err)
	require.Len(t, imports.Msg.Imports, 1)
	assert.Equal(t, catalog.SourceEmbedded, imports.Msg.Imports[0].Source)
	assert.Equal(t, 18, imports.Msg.Imports[0].PlayerCount)
}

func TestUnknownProcedure(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(NewRosterServiceHandler(&RosterServer{}))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/roster.v1.RosterService/Nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
