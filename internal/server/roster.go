package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cricket-roster/internal/domain"
	"cricket-roster/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type RosterServer struct {
	rosterSvc  *service.RosterService
	lineupSvc  *service.LineupService
	compareSvc *service.CompareService
}

func NewRosterServer(rosterSvc *service.RosterService, lineupSvc *service.LineupService, compareSvc *service.CompareService) *RosterServer {
	return &RosterServer{rosterSvc: rosterSvc, lineupSvc: lineupSvc, compareSvc: compareSvc}
}

var _ RosterServiceHandler = (*RosterServer)(nil)

func (s *RosterServer) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	format, err := parseFormat(req.Msg.Format)
	if err != nil {
		return nil, toConnectError(err)
	}
	sortBy, err := service.ParseSortField(req.Msg.SortBy)
	if err != nil {
		return nil, toConnectError(err)
	}

	players, err := s.rosterSvc.ListPlayers(ctx, service.PlayerFilter{
		Role:    req.Msg.Role,
		Country: req.Msg.Country,
		Name:    req.Msg.Name,
		Format:  format,
		SortBy:  sortBy,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	views := make([]PlayerView, len(players))
	for i, p := range players {
		views[i] = toPlayerView(p, format)
	}

	return connect.NewResponse(&ListPlayersResponse{Format: string(format), Players: views}), nil
}

func (s *RosterServer) ListCountries(ctx context.Context, req *connect.Request[ListCountriesRequest]) (*connect.Response[ListCountriesResponse], error) {
	countries := s.rosterSvc.Countries(ctx)

	views := make([]CountryView, len(countries))
	for i, c := range countries {
		views[i] = CountryView{Name: c, FlagURL: FlagURL(c)}
	}
	return connect.NewResponse(&ListCountriesResponse{Countries: views}), nil
}

func (s *RosterServer) BuildLineup(ctx context.Context, req *connect.Request[BuildLineupRequest]) (*connect.Response[BuildLineupResponse], error) {
	start := time.Now()
	defer func() {
		zerolog.Ctx(ctx).Debug().Dur("elapsed", time.Since(start)).Msg("BuildLineup done")
	}()

	format, err := parseFormat(req.Msg.Format)
	if err != nil {
		return nil, toConnectError(err)
	}

	l, err := s.lineupSvc.Build(ctx, format)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&BuildLineupResponse{Lineup: toLineupView(l)}), nil
}

func (s *RosterServer) BuildAllLineups(ctx context.Context, req *connect.Request[BuildAllLineupsRequest]) (*connect.Response[BuildAllLineupsResponse], error) {
	lineups, err := s.lineupSvc.BuildAll(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	views := make([]LineupView, len(lineups))
	for i, l := range lineups {
		views[i] = toLineupView(l)
	}
	return connect.NewResponse(&BuildAllLineupsResponse{Lineups: views}), nil
}

func (s *RosterServer) ComparePlayers(ctx context.Context, req *connect.Request[ComparePlayersRequest]) (*connect.Response[ComparePlayersResponse], error) {
	report, err := s.compareSvc.Compare(ctx, req.Msg.PlayerA, req.Msg.PlayerB)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ComparePlayersResponse{Comparison: toComparisonView(report)}), nil
}

func (s *RosterServer) ToggleSelection(ctx context.Context, req *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error) {
	result, err := s.compareSvc.Toggle(ctx, req.Header().Get(SessionHeader), req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	msg := &ToggleSelectionResponse{
		SessionID: result.SessionID,
		Event:     result.Event.String(),
		Picked:    result.Picked,
	}
	if msg.Picked == nil {
		msg.Picked = []string{}
	}
	if result.Report != nil {
		view := toComparisonView(*result.Report)
		msg.Comparison = &view
	}

	res := connect.NewResponse(msg)
	res.Header().Set(SessionHeader, result.SessionID)
	return res, nil
}

func (s *RosterServer) ReloadCatalog(ctx context.Context, req *connect.Request[ReloadCatalogRequest]) (*connect.Response[ReloadCatalogResponse], error) {
	snap, err := s.rosterSvc.Reload(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ReloadCatalogResponse{
		Source:   snap.Source,
		Players:  snap.Len(),
		LoadedAt: snap.LoadedAt.Format(time.RFC3339),
	}), nil
}

func (s *RosterServer) ListCatalogImports(ctx context.Context, req *connect.Request[ListCatalogImportsRequest]) (*connect.Response[ListCatalogImportsResponse], error) {
	imports, err := s.rosterSvc.Imports(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	views := make([]CatalogImportView, len(imports))
	for i, rec := range imports {
		views[i] = toImportView(rec)
	}
	return connect.NewResponse(&ListCatalogImportsResponse{Imports: views}), nil
}

func parseFormat(s string) (domain.Format, error) {
	if s == "" {
		return domain.FormatTest, nil
	}
	f, ok := domain.ParseFormat(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", service.ErrUnknownFormat, s)
	}
	return f, nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, service.ErrUnknownFormat),
		errors.Is(err, service.ErrUnknownSort),
		errors.Is(err, service.ErrSamePlayer):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
