package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageconv"
)

// Ensure LoggingLoader implements pageconv.Loader.
var _ pageconv.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   pageconv.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next pageconv.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, name string) (data []byte, err error) {
	defer func(begin time.Time) {
		l.logger.Info("document loaded",
			"name", name,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, name)
}
