package badge

import (
	"log/slog"
	"sync/atomic"

	"seehuhn.de/go/badge/fonts"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures logging for badge and its sub-packages.
// By default nothing is logged; passing nil restores this.
//
// Log levels used:
//   - [slog.LevelDebug]: font selection, label geometry
//   - [slog.LevelInfo]: icon files written
//   - [slog.LevelWarn]: fallback to the built-in font
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
	fonts.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
