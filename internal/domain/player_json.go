package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// UnmarshalJSON never fails on a badly typed field. Text fields take strings
// as-is and numbers or booleans in their JSON spelling. Only object-valued
// format entries are kept, so `"test": null` or `"test": 0` means the player
// has no test record. A non-object entry decodes to the zero Player.
func (p *Player) UnmarshalJSON(data []byte) error {
	*p = Player{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	p.Name = coerceString(raw["name"])
	p.Country = coerceString(raw["country"])
	p.Role = Role(coerceString(raw["role"]))
	p.Image = coerceString(raw["image"])
	p.Stats = decodeStatsMap(raw["stats"])
	return nil
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func decodeStatsMap(raw json.RawMessage) map[Format]FormatStats {
	var entries map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	var stats map[Format]FormatStats
	for key, entry := range entries {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			continue
		}

		var fs FormatStats
		if err := json.Unmarshal(trimmed, &fs); err != nil {
			continue
		}
		if stats == nil {
			stats = make(map[Format]FormatStats)
		}
		stats[Format(key)] = fs
	}
	return stats
}
