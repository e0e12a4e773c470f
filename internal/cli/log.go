package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with timestamps
// formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logAuditHooks logs auditor events at debug level.
type logAuditHooks struct {
	logger *log.Logger
}

func (h *logAuditHooks) OnAuditStart(kind, journal string) {
	h.logger.Debug("audit started", "kind", kind, "journal", journal)
}

func (h *logAuditHooks) OnAuditComplete(kind, journal string, issues int, d time.Duration) {
	h.logger.Debug("audit finished", "kind", kind, "journal", journal, "issues", issues,
		"took", d.Round(time.Microsecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHTTPHooks logs API traffic with the logger carried by the request
// context.
type logHTTPHooks struct{}

func (logHTTPHooks) OnRequest(ctx context.Context, method, path string) {
	loggerFromContext(ctx).Debug("request", "method", method, "path", path)
}

func (logHTTPHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	l := loggerFromContext(ctx)
	if status >= 500 {
		l.Error("response", "method", method, "path", path, "status", status, "duration", d)
		return
	}
	l.Info("response", "method", method, "path", path, "status", status, "duration", d)
}
