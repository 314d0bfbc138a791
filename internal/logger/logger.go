package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. It always writes to stderr so the
// interactive console on stdout stays clean; development gets the console
// writer, everything else structured JSON.
func New(environment string) zerolog.Logger {
	if environment == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(writer).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
