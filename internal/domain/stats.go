package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON accepts the loosely typed stat records found in hand-edited
// catalogs: omitted or null fields, numeric strings and booleans. Anything
// that is not a number after coercion counts as 0.
func (s *FormatStats) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = FormatStats{}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// a scalar or array where an object belongs is treated as no stats
		*s = FormatStats{}
		return nil
	}

	*s = FormatStats{
		Matches: coerceInt(raw["matches"]),
		Runs:    coerceInt(raw["runs"]),
		Wickets: coerceInt(raw["wickets"]),
	}
	return nil
}

func coerceInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		t := strings.TrimSpace(x)
		if t == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}

	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}
