package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Scanned 120 targets (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// logHooks forwards scan and HTTP events to the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnScanStart(_ context.Context, targets, universe int) {
	h.logger.Debug("scan started", "targets", targets, "universe", universe)
}

func (h *logHooks) OnMatch(_ context.Context, original, flipped string) {
	h.logger.Debug("bitflip match", "original", original, "flipped", flipped)
}

func (h *logHooks) OnScanComplete(_ context.Context, matches int, d time.Duration) {
	h.logger.Debug("scan complete", "matches", matches, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnClassify(_ context.Context, flipped, original, outcome string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("classify", "flipped", flipped, "original", original, "outcome", outcome, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("classify", "flipped", flipped, "original", original, "outcome", outcome, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
