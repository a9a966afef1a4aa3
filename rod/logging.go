package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/rjoshi/ecourts"
)

// Ensure LoggingAccessor implements ecourts.PageAccessor.
var _ ecourts.PageAccessor = (*LoggingAccessor)(nil)

// LoggingAccessor wraps a PageAccessor with debug logging. Reads happen once
// per poll cycle, so they log at debug level.
type LoggingAccessor struct {
	next   ecourts.PageAccessor
	logger *slog.Logger
}

// NewLoggingAccessor creates a new LoggingAccessor.
func NewLoggingAccessor(next ecourts.PageAccessor, logger *slog.Logger) *LoggingAccessor {
	return &LoggingAccessor{next: next, logger: logger}
}

// MainHTML logs the read and delegates to the wrapped accessor.
func (a *LoggingAccessor) MainHTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		a.logger.Debug("main html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.MainHTML(ctx)
}

// FrameHTML logs the read and delegates to the wrapped accessor.
func (a *LoggingAccessor) FrameHTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		a.logger.Debug("frame html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.FrameHTML(ctx)
}
