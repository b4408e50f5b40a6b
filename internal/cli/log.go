// Package cli implements the ribpatch command-line interface.
//
// The root command converts a scene file into a patch mesh:
//
//	ribpatch scene.rib scene.patch
//
// On success it prints "Converted <P> patches and <U> unique control points."
// to stdout. The inspect subcommand decodes and validates an existing mesh
// file and prints its statistics as a table.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which traces
// every directive and pipeline stage. Loggers are passed through
// context.Context.
//
// # Configuration
//
// Defaults for --format, --precision and --verbose can be read from a TOML
// file given with --config. Flags set on the command line win.
//
// # Exit Codes
//
// 0 on success, 2 for usage errors, 130 when interrupted, 1 otherwise.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a stderr-style logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one operation and logs it once finished.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and the elapsed time, rounded to
// the millisecond, appended as "elapsed".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
