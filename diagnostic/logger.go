package diagnostic

import (
	"context"
	"io"
	"log/slog"
)

// Logger reports diagnostics as structured warnings
type Logger struct {
	logger *slog.Logger
}

// Report logs d at warn level
func (l *Logger) Report(d *Diagnostic) {
	l.logger.LogAttrs(context.Background(), slog.LevelWarn, d.Message,
		slog.String("kind", string(d.Kind)),
		slog.String("value", d.Value),
		slog.String("archive", d.Archive),
		slog.String("entry", d.Entry),
	)
}

// NewLogger creates a logging sink, nil logger discards output
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = NopLogger()
	}
	return &Logger{logger: logger}
}

// NopLogger returns a logger that writes nowhere
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
