package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestBuildFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Build(&buf, zerolog.WarnLevel, false)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Str("player", "Root").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "Root", entry["player"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "caller")
	assert.Contains(t, entry, "time")
}
