package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// RootLogger is the logger every Pact package derives its context logger
// from. It never affects control flow: decoding and evaluation are pure
// functions, logging is a side channel for operators running the host.
var RootLogger zerolog.Logger = zerolog.New(
	zerolog.NewConsoleWriter(
		func(w *zerolog.ConsoleWriter) { w.Out = os.Stderr },
		func(w *zerolog.ConsoleWriter) { w.TimeFormat = "15:04:05.000" })).Level(levelFromEnv()).
	With().Timestamp().Logger()

// levelFromEnv reads PACT_LOG_LEVEL (e.g. "debug", "trace", "warn").
// An unset or unrecognised value falls back to zerolog.InfoLevel.
func levelFromEnv() zerolog.Level {
	raw := os.Getenv("PACT_LOG_LEVEL")
	if raw == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
