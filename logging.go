package analysis

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// The whole application shares one structured logger, initialized once. By
// default it writes human-readable lines to stderr; InitLogFile switches it
// to a JSON log file.
var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Log returns the process-wide logger.
func Log() *zerolog.Logger { return &logger }

// InitLogFile redirects the process-wide logger to the given file, creating
// it if needed. An empty path leaves the default stderr logger in place.
func InitLogFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %q: %w", path, err)
	}
	logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return nil
}
