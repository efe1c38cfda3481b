package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cricket-roster/internal/constants"
	"cricket-roster/internal/domain"
)

var (
	ErrInvalidCatalog  = errors.New("catalog must be a JSON array of players")
	ErrCatalogTooLarge = errors.New("catalog exceeds size limit")
)

// Decode reads a JSON array of players. Stat fields are coerced leniently by
// domain.FormatStats; a literal null decodes to an empty catalog.
func Decode(r io.Reader) ([]domain.Player, error) {
	data, err := io.ReadAll(io.LimitReader(r, constants.MaxCatalogBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(data) > constants.MaxCatalogBytes {
		return nil, ErrCatalogTooLarge
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []domain.Player{}, nil
	}
	if data[0] != '[' {
		return nil, ErrInvalidCatalog
	}

	var players []domain.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return players, nil
}

// Dedupe keeps the first player for each name and reports the names that
// were dropped, in the order they were seen.
func Dedupe(players []domain.Player) ([]domain.Player, []string) {
	seen := make(map[string]struct{}, len(players))
	out := make([]domain.Player, 0, len(players))
	var dropped []string

	for _, p := range players {
		if _, ok := seen[p.Name]; ok {
			dropped = append(dropped, p.Name)
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
	}
	return out, dropped
}
