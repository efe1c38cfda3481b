package server

type StatsView struct {
	Matches int `json:"matches"`
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

type PlayerView struct {
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"roleLabel"`
	Image     string    `json:"image"`
	FlagURL   string    `json:"flagUrl"`
	Stats     StatsView `json:"stats"`
}

type ListPlayersRequest struct {
	Role    string `json:"role"`
	Country string `json:"country"`
	Name    string `json:"name"`
	Format  string `json:"format"`
	SortBy  string `json:"sortBy"`
}

type ListPlayersResponse struct {
	Format  string       `json:"format"`
	Players []PlayerView `json:"players"`
}

type ListCountriesRequest struct{}

type CountryView struct {
	Name    string `json:"name"`
	FlagURL string `json:"flagUrl"`
}

type ListCountriesResponse struct {
	Countries []CountryView `json:"countries"`
}

type LineupPlayerView struct {
	PlayerView
	Score       float64 `json:"score"`
	Captain     bool    `json:"captain"`
	ViceCaptain bool    `json:"viceCaptain"`
}

type LineupView struct {
	Format      string             `json:"format"`
	Players     []LineupPlayerView `json:"players"`
	Captain     string             `json:"captain"`
	ViceCaptain string             `json:"viceCaptain"`
}

type BuildLineupRequest struct {
	Format string `json:"format"`
}

type BuildLineupResponse struct {
	Lineup LineupView `json:"lineup"`
}

type BuildAllLineupsRequest struct{}

type BuildAllLineupsResponse struct {
	Lineups []LineupView `json:"lineups"`
}

type FieldView struct {
	A       int    `json:"a"`
	B       int    `json:"b"`
	Favored string `json:"favored"`
}

type FormatComparisonView struct {
	Format  string    `json:"format"`
	Matches FieldView `json:"matches"`
	Runs    FieldView `json:"runs"`
	Wickets FieldView `json:"wickets"`
}

type ComparisonView struct {
	PlayerA string                 `json:"playerA"`
	PlayerB string                 `json:"playerB"`
	Formats []FormatComparisonView `json:"formats"`
}

type ComparePlayersRequest struct {
	PlayerA string `json:"playerA"`
	PlayerB string `json:"playerB"`
}

type ComparePlayersResponse struct {
	Comparison ComparisonView `json:"comparison"`
}

type ToggleSelectionRequest struct {
	Name string `json:"name"`
}

type ToggleSelectionResponse struct {
	SessionID  string          `json:"sessionId"`
	Event      string          `json:"event"`
	Picked     []string        `json:"picked"`
	Comparison *ComparisonView `json:"comparison,omitempty"`
}

type CatalogImportView struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	PlayerCount int    `json:"playerCount"`
	ImportedAt  string `json:"importedAt"`
}

type ReloadCatalogRequest struct{}

type ReloadCatalogResponse struct {
	Source   string `json:"source"`
	Players  int    `json:"players"`
	LoadedAt string `json:"loadedAt"`
}

type ListCatalogImportsRequest struct{}

type ListCatalogImportsResponse struct {
	Imports []CatalogImportView `json:"imports"`
}
