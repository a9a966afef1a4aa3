// Package slog provides logging decorators for the root interfaces. Core
// packages stay logger-free; outcomes are logged at the seams.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rjoshi/ecourts"
)

// Ensure LoggingLocator implements ecourts.ResultLocator.
var _ ecourts.ResultLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a ResultLocator with outcome logging.
type LoggingLocator struct {
	next   ecourts.ResultLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next ecourts.ResultLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate logs the wait's outcome and delegates to the wrapped locator.
func (l *LoggingLocator) Locate(ctx context.Context, marker string) (source ecourts.ResultSource, html string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("locate results",
			"marker", marker,
			"source", string(source),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(ctx, marker)
}
