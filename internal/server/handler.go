package server

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const RosterServiceName = "roster.v1.RosterService"

const (
	RosterServiceListPlayersProcedure        = "/roster.v1.RosterService/ListPlayers"
	RosterServiceListCountriesProcedure      = "/roster.v1.RosterService/ListCountries"
	RosterServiceBuildLineupProcedure        = "/roster.v1.RosterService/BuildLineup"
	RosterServiceBuildAllLineupsProcedure    = "/roster.v1.RosterService/BuildAllLineups"
	RosterServiceComparePlayersProcedure     = "/roster.v1.RosterService/ComparePlayers"
	RosterServiceToggleSelectionProcedure    = "/roster.v1.RosterService/ToggleSelection"
	RosterServiceReloadCatalogProcedure      = "/roster.v1.RosterService/ReloadCatalog"
	RosterServiceListCatalogImportsProcedure = "/roster.v1.RosterService/ListCatalogImports"
)

// SessionHeader carries the compare selection session between calls.
const SessionHeader = "X-Session-Id"

type RosterServiceHandler interface {
	ListPlayers(context.Context, *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error)
	ListCountries(context.Context, *connect.Request[ListCountriesRequest]) (*connect.Response[ListCountriesResponse], error)
	BuildLineup(context.Context, *connect.Request[BuildLineupRequest]) (*connect.Response[BuildLineupResponse], error)
	BuildAllLineups(context.Context, *connect.Request[BuildAllLineupsRequest]) (*connect.Response[BuildAllLineupsResponse], error)
	ComparePlayers(context.Context, *connect.Request[ComparePlayersRequest]) (*connect.Response[ComparePlayersResponse], error)
	ToggleSelection(context.Context, *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error)
	ReloadCatalog(context.Context, *connect.Request[ReloadCatalogRequest]) (*connect.Response[ReloadCatalogResponse], error)
	ListCatalogImports(context.Context, *connect.Request[ListCatalogImportsRequest]) (*connect.Response[ListCatalogImportsResponse], error)
}

// NewRosterServiceHandler returns the mount path and handler for svc. All
// procedures speak JSON through JSONCodec.
func NewRosterServiceHandler(svc RosterServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		RosterServiceListPlayersProcedure:        connect.NewUnaryHandler(RosterServiceListPlayersProcedure, svc.ListPlayers, opts...),
		RosterServiceListCountriesProcedure:      connect.NewUnaryHandler(RosterServiceListCountriesProcedure, svc.ListCountries, opts...),
		RosterServiceBuildLineupProcedure:        connect.NewUnaryHandler(RosterServiceBuildLineupProcedure, svc.BuildLineup, opts...),
		RosterServiceBuildAllLineupsProcedure:    connect.NewUnaryHandler(RosterServiceBuildAllLineupsProcedure, svc.BuildAllLineups, opts...),
		RosterServiceComparePlayersProcedure:     connect.NewUnaryHandler(RosterServiceComparePlayersProcedure, svc.ComparePlayers, opts...),
		RosterServiceToggleSelectionProcedure:    connect.NewUnaryHandler(RosterServiceToggleSelectionProcedure, svc.ToggleSelection, opts...),
		RosterServiceReloadCatalogProcedure:      connect.NewUnaryHandler(RosterServiceReloadCatalogProcedure, svc.ReloadCatalog, opts...),
		RosterServiceListCatalogImportsProcedure: connect.NewUnaryHandler(RosterServiceListCatalogImportsProcedure, svc.ListCatalogImports, opts...),
	}

	path := "/" + RosterServiceName + "/"
	return path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

type RosterServiceClient struct {
	listPlayers        *connect.Client[ListPlayersRequest, ListPlayersResponse]
	listCountries      *connect.Client[ListCountriesRequest, ListCountriesResponse]
	buildLineup        *connect.Client[BuildLineupRequest, BuildLineupResponse]
	buildAllLineups    *connect.Client[BuildAllLineupsRequest, BuildAllLineupsResponse]
	comparePlayers     *connect.Client[ComparePlayersRequest, ComparePlayersResponse]
	toggleSelection    *connect.Client[ToggleSelectionRequest, ToggleSelectionResponse]
	reloadCatalog      *connect.Client[ReloadCatalogRequest, ReloadCatalogResponse]
	listCatalogImports *connect.Client[ListCatalogImportsRequest, ListCatalogImportsResponse]
}

func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RosterServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &RosterServiceClient{
		listPlayers:        connect.NewClient[ListPlayersRequest, ListPlayersResponse](httpClient, baseURL+RosterServiceListPlayersProcedure, opts...),
		listCountries:      connect.NewClient[ListCountriesRequest, ListCountriesResponse](httpClient, baseURL+RosterServiceListCountriesProcedure, opts...),
		buildLineup:        connect.NewClient[BuildLineupRequest, BuildLineupResponse](httpClient, baseURL+RosterServiceBuildLineupProcedure, opts...),
		buildAllLineups:    connect.NewClient[BuildAllLineupsRequest, BuildAllLineupsResponse](httpClient, baseURL+RosterServiceBuildAllLineupsProcedure, opts...),
		comparePlayers:     connect.NewClient[ComparePlayersRequest, ComparePlayersResponse](httpClient, baseURL+RosterServiceComparePlayersProcedure, opts...),
		toggleSelection:    connect.NewClient[ToggleSelectionRequest, ToggleSelectionResponse](httpClient, baseURL+RosterServiceToggleSelectionProcedure, opts...),
		reloadCatalog:      connect.NewClient[ReloadCatalogRequest, ReloadCatalogResponse](httpClient, baseURL+RosterServiceReloadCatalogProcedure, opts...),
		listCatalogImports: connect.NewClient[ListCatalogImportsRequest, ListCatalogImportsResponse](httpClient, baseURL+RosterServiceListCatalogImportsProcedure, opts...),
	}
}

func (c *RosterServiceClient) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	return c.listPlayers.CallUnary(ctx, req)
}

func (c *RosterServiceClient) ListCountries(ctx context.Context, req *connect.Request[ListCountriesRequest]) (*connect.Response[ListCountriesResponse], error) {
	return c.listCountries.CallUnary(ctx, req)
}

func (c *RosterServiceClient) BuildLineup(ctx context.Context, req *connect.Request[BuildLineupRequest]) (*connect.Response[BuildLineupResponse], error) {
	return c.buildLineup.CallUnary(ctx, req)
}

func (c *RosterServiceClient) BuildAllLineups(ctx context.Context, req *connect.Request[BuildAllLineupsRequest]) (*connect.Response[BuildAllLineupsResponse], error) {
	return c.buildAllLineups.CallUnary(ctx, req)
}

func (c *RosterServiceClient) ComparePlayers(ctx context.Context, req *connect.Request[ComparePlayersRequest]) (*connect.Response[ComparePlayersResponse], error) {
	return c.comparePlayers.CallUnary(ctx, req)
}

func (c *RosterServiceClient) ToggleSelection(ctx context.Context, req *connect.Request[ToggleSelectionRequest]) (*connect.Response[ToggleSelectionResponse], error) {
	return c.toggleSelection.CallUnary(ctx, req)
}

func (c *RosterServiceClient) ReloadCatalog(ctx context.Context, req *connect.Request[ReloadCatalogRequest]) (*connect.Response[ReloadCatalogResponse], error) {
	return c.reloadCatalog.CallUnary(ctx, req)
}

func (c *RosterServiceClient) ListCatalogImports(ctx context.Context, req *connect.Request[ListCatalogImportsRequest]) (*connect.Response[ListCatalogImportsResponse], error) {
	return c.listCatalogImports.CallUnary(ctx, req)
}
