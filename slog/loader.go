package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qualoffer"
)

// Ensure LoggingLoader implements qualoffer.Loader.
var _ qualoffer.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging of which source was used.
type LoggingLoader struct {
	next   qualoffer.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next qualoffer.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the requested and used URLs.
func (l *LoggingLoader) Load(ctx context.Context, target string) (src *qualoffer.Source, err error) {
	defer func(begin time.Time) {
		used := ""
		if src != nil {
			used = src.URL
		}
		l.logger.Info("load",
			"requested", target,
			"used", used,
			"fallback", target != "" && src != nil && used != target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, target)
}
