package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New reads LOG_LEVEL and LOG_PRETTY straight from the environment because the
// logger is needed before the config (and its .env file) is loaded.
func New() zerolog.Logger {
	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))
	return Build(os.Stdout, ParseLevel(os.Getenv("LOG_LEVEL")), pretty)
}

func Build(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}

// ParseLevel falls back to info for empty or unknown names.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

var Module = fx.Provide(New)
