package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. The service and
// API suites use it so assertion failures are not buried in request logs.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
